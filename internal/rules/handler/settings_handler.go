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

package handler

import (
	"encoding/json"
	"net/http"

	profileprovider "github.com/wso2/identity-cohort-sync/internal/profile/provider"
	"github.com/wso2/identity-cohort-sync/internal/rules/model"
	"github.com/wso2/identity-cohort-sync/internal/rules/provider"
	"github.com/wso2/identity-cohort-sync/internal/rules/service"
	"github.com/wso2/identity-cohort-sync/internal/system/authn"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/utils"
)

type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler {

	return &SettingsHandler{}
}

// GetSettings returns the current cohort sync settings.
func (sh *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {

	if err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	settingsService := provider.NewRulesProvider().GetSettingsService()
	settings, err := settingsService.GetSettings()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, settings)
}

// UpdateSettings replaces the cohort sync settings.
func (sh *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {

	if err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var settings model.RuleConfiguration
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrInvalidSettingsPayload.Code,
			Message:     errors2.ErrInvalidSettingsPayload.Message,
			Description: utils.HandleDecodeError(err, "settings"),
		}, http.StatusBadRequest))
		return
	}

	settingsService := provider.NewRulesProvider().GetSettingsService()
	if err := settingsService.UpdateSettings(settings); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Preview dry-runs the rule pipeline for a user and returns the candidate
// cohort names without touching any cohort.
func (sh *SettingsHandler) Preview(w http.ResponseWriter, r *http.Request) {

	if err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrInvalidEventPayload.Code,
			Message:     errors2.ErrInvalidEventPayload.Message,
			Description: "Preview requests must carry a user_id.",
		}, http.StatusBadRequest))
		return
	}

	settingsService := provider.NewRulesProvider().GetSettingsService()
	settings, err := settingsService.GetSettings()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	profileService := profileprovider.NewProfileProvider().GetProfileService()
	user, err := profileService.GetUser(request.UserID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	profile := profileService.GetSanitizedProfile(user, settings.Placeholder)
	names := service.EvaluateProfile(profile, settings)

	utils.WriteJSONResponse(w, http.StatusOK, struct {
		UserID string   `json:"user_id"`
		Names  []string `json:"cohort_names"`
	}{
		UserID: request.UserID,
		Names:  names,
	})
}
