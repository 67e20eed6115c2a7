/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"fmt"

	eventstore "github.com/wso2/identity-cohort-sync/internal/events/store"
	profileprovider "github.com/wso2/identity-cohort-sync/internal/profile/provider"
	rulesprovider "github.com/wso2/identity-cohort-sync/internal/rules/provider"
	rulesservice "github.com/wso2/identity-cohort-sync/internal/rules/service"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
)

type SyncServiceInterface interface {
	SyncUserProfile(userID string)
}

// SyncService runs the full pipeline for one profile change event:
// sanitize the profile, parse and render the rules, reconcile cohorts and
// record the outcome. It never propagates an error to the event pipeline;
// failures degrade to a logged no-op for the affected user.
//
// Concurrent syncs for the same user are not serialized; the storage
// operations are idempotent and last-write-wins is accepted.
type SyncService struct{}

// GetSyncService creates a new instance of SyncService.
func GetSyncService() SyncServiceInterface {

	return &SyncService{}
}

// SyncUserProfile synchronizes the cohort memberships of a single user.
func (ss *SyncService) SyncUserProfile(userID string) {

	logger := log.GetLogger()

	settingsService := rulesprovider.NewRulesProvider().GetSettingsService()
	settings, err := settingsService.GetSettings()
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load settings for syncing user: %s", userID), log.Error(err))
		return
	}
	if settings.MainRule == "" {
		logger.Debug("No cohort rules configured, skipping sync.")
		return
	}

	profileService := profileprovider.NewProfileProvider().GetProfileService()
	user, err := profileService.GetUser(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to fetch user for cohort sync: %s", userID), log.Error(err))
		return
	}

	profile := profileService.GetSanitizedProfile(user, settings.Placeholder)
	names := rulesservice.EvaluateProfile(profile, settings)

	result := GetReconcilerService().Reconcile(user, names, settings)

	if err := eventstore.AddSyncRecord(result); err != nil {
		logger.Error(fmt.Sprintf("Failed to record sync outcome for user: %s", userID), log.Error(err))
	}

	logger.Info(fmt.Sprintf("Cohort sync completed for user: %s", userID),
		log.Int("processed", len(result.Processed)),
		log.Int("created", len(result.Created)),
		log.Int("removed", len(result.Removed)),
		log.Bool("skipped", result.Skipped))
}
