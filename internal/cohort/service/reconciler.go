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
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-cohort-sync/internal/cohort/model"
	"github.com/wso2/identity-cohort-sync/internal/cohort/store"
	profilemodel "github.com/wso2/identity-cohort-sync/internal/profile/model"
	rulesmodel "github.com/wso2/identity-cohort-sync/internal/rules/model"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
)

// CohortStoreInterface is the slice of the host platform's group store the
// reconciler needs. The postgres-backed store satisfies it; tests swap in
// an in-memory one.
type CohortStoreInterface interface {
	ListCohorts(contextID int, component string) ([]model.Cohort, error)
	CreateCohort(cohort model.Cohort) error
	AddMembership(cohortID, userID string, addedAt int64) error
	RemoveMembership(cohortID, userID string) error
	IsMember(cohortID, userID string) (bool, error)
	GetManagedMemberships(userID, component string) ([]model.Cohort, error)
}

type ReconcilerServiceInterface interface {
	Reconcile(user *profilemodel.User, renderedNames []string, config rulesmodel.RuleConfiguration) model.SyncResult
}

// ReconcilerService maps rendered cohort names onto cohorts and
// memberships. Item-level storage failures degrade to no-ops for that item
// so one bad name never aborts the run.
type ReconcilerService struct {
	cohorts CohortStoreInterface
}

// GetReconcilerService creates a reconciler backed by the postgres cohort store.
func GetReconcilerService() ReconcilerServiceInterface {

	return &ReconcilerService{cohorts: store.NewCohortStore()}
}

// NewReconcilerService creates a reconciler backed by the given cohort store.
func NewReconcilerService(cohorts CohortStoreInterface) ReconcilerServiceInterface {

	return &ReconcilerService{cohorts: cohorts}
}

// Reconcile joins the user to a cohort for every rendered non-empty name,
// creating missing cohorts, and prunes stale managed memberships when
// unenrol is enabled. Guest, deleted, suspended and denylisted users are
// skipped entirely.
func (rs *ReconcilerService) Reconcile(user *profilemodel.User, renderedNames []string,
	config rulesmodel.RuleConfiguration) model.SyncResult {

	logger := log.GetLogger()
	now := time.Now().UTC()
	result := model.SyncResult{
		UserID:   user.UserID,
		Names:    renderedNames,
		SyncedAt: now.Unix(),
	}

	if user.Username == constants.GuestUsername || user.Deleted || user.Suspended {
		result.Skipped = true
		return result
	}
	if config.IsDenylisted(user.Username) {
		logger.Debug(fmt.Sprintf("User %s is denylisted, skipping cohort sync.", user.Username))
		result.Skipped = true
		return result
	}

	// With unenrol enabled only managed cohorts are candidates; otherwise
	// the user may also join pre-existing unmanaged cohorts.
	candidateComponent := ""
	if config.EnableUnenrol {
		candidateComponent = constants.ManagedComponent
	}
	candidates, err := rs.cohorts.ListCohorts(constants.SystemContextID, candidateComponent)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to list candidate cohorts for user: %s", user.UserID), log.Error(err))
		return result
	}

	processed := make(map[string]bool)
	for _, name := range renderedNames {
		if name == "" {
			continue
		}

		cohort, found := findByName(candidates, name)
		if !found {
			cohort = model.Cohort{
				CohortID:    uuid.New().String(),
				Name:        name,
				Description: fmt.Sprintf("Created automatically on %s", now.Format("2006-01-02")),
				ContextID:   constants.SystemContextID,
				CreatedAt:   now.Unix(),
			}
			if config.EnableUnenrol {
				cohort.Component = constants.ManagedComponent
			}
			if err := rs.cohorts.CreateCohort(cohort); err != nil {
				logger.Error(fmt.Sprintf("Failed to create cohort: %s", name), log.Error(err))
				continue
			}
			// Keep the new cohort in the candidate list so a second
			// template rendering the same name reuses it.
			candidates = append(candidates, cohort)
			result.Created = append(result.Created, cohort.CohortID)
		}

		if !processed[cohort.CohortID] {
			// Mark the cohort processed before joining: a transient join
			// failure must not leave it eligible for the unenrol post-pass.
			processed[cohort.CohortID] = true
			result.Processed = append(result.Processed, cohort.CohortID)

			if err := rs.join(cohort.CohortID, user.UserID, now.Unix()); err != nil {
				logger.Error(fmt.Sprintf("Failed to add user %s to cohort: %s", user.UserID, name),
					log.Error(err))
				continue
			}
			result.Joined = append(result.Joined, cohort.CohortID)
		}
	}

	if config.EnableUnenrol {
		result.Removed = rs.pruneStaleMemberships(user.UserID, processed)
	}

	return result
}

// join adds the membership when the user is not already a member. The
// insert itself is idempotent at the storage layer.
func (rs *ReconcilerService) join(cohortID, userID string, addedAt int64) error {

	isMember, err := rs.cohorts.IsMember(cohortID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return nil
	}
	return rs.cohorts.AddMembership(cohortID, userID, addedAt)
}

// pruneStaleMemberships removes the user from every managed cohort that
// this run did not process. Unmanaged cohorts are never touched.
func (rs *ReconcilerService) pruneStaleMemberships(userID string, processed map[string]bool) []string {

	logger := log.GetLogger()
	memberships, err := rs.cohorts.GetManagedMemberships(userID, constants.ManagedComponent)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to fetch managed memberships for user: %s", userID), log.Error(err))
		return nil
	}

	var removed []string
	for _, cohort := range memberships {
		if processed[cohort.CohortID] {
			continue
		}
		if err := rs.cohorts.RemoveMembership(cohort.CohortID, userID); err != nil {
			logger.Error(fmt.Sprintf("Failed to remove user %s from cohort: %s", userID, cohort.Name),
				log.Error(err))
			continue
		}
		removed = append(removed, cohort.CohortID)
	}
	return removed
}

func findByName(cohorts []model.Cohort, name string) (model.Cohort, bool) {
	for _, cohort := range cohorts {
		if cohort.Name == name {
			return cohort, true
		}
	}
	return model.Cohort{}, false
}
