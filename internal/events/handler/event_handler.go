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
	"strconv"

	"github.com/wso2/identity-cohort-sync/internal/events/model"
	"github.com/wso2/identity-cohort-sync/internal/events/provider"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/utils"
	"github.com/wso2/identity-cohort-sync/internal/system/workers"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler {

	return &EventHandler{}
}

// AddEvent accepts a profile change event and schedules a cohort sync run.
func (eh *EventHandler) AddEvent(w http.ResponseWriter, r *http.Request) {

	var event model.ProfileChangeEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrInvalidEventPayload.Code,
			Message:     errors2.ErrInvalidEventPayload.Message,
			Description: utils.HandleDecodeError(err, "event"),
		}, http.StatusBadRequest))
		return
	}

	queue := &workers.SyncWorkerQueue{}
	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.AddEvent(event, queue); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// GetSyncRecords fetches the recent sync outcomes for a user.
func (eh *EventHandler) GetSyncRecords(w http.ResponseWriter, r *http.Request) {

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrMissingUserID.Code,
			Message:     errors2.ErrMissingUserID.Message,
			Description: "Sync record queries must carry a user_id parameter.",
		}, http.StatusBadRequest))
		return
	}

	limit := int64(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	records, err := eventsService.GetSyncRecords(userID, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, records)
}
