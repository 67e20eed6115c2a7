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
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	cohortmodel "github.com/wso2/identity-cohort-sync/internal/cohort/model"
	"github.com/wso2/identity-cohort-sync/internal/events/model"
	"github.com/wso2/identity-cohort-sync/internal/events/store"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
)

// EventQueue is implemented by the cohort sync worker in `workers`.
type EventQueue interface {
	Enqueue(event model.ProfileChangeEvent)
}

type EventsServiceInterface interface {
	AddEvent(event model.ProfileChangeEvent, queue EventQueue) error
	GetSyncRecords(userID string, limit int64) ([]cohortmodel.SyncResult, error)
}

// EventsService is the default implementation of the EventsServiceInterface.
type EventsService struct{}

// GetEventsService creates a new instance of EventsService.
func GetEventsService() EventsServiceInterface {

	return &EventsService{}
}

// AddEvent validates the profile change event, records it in the audit
// store and enqueues the user for cohort synchronization.
func (es *EventsService) AddEvent(event model.ProfileChangeEvent, queue EventQueue) error {

	logger := log.GetLogger()

	if err := validateEvent(&event); err != nil {
		logger.Debug(fmt.Sprintf("Rejected profile change event for user: %s", event.UserID), log.Error(err))
		return err
	}

	event.EventID = uuid.New().String()
	event.ReceivedAt = time.Now().UTC().Unix()

	if err := store.AddEvent(event); err != nil {
		logger.Debug(fmt.Sprintf("Failed to persist event with id: %s", event.EventID), log.Error(err))
		return err
	}

	queue.Enqueue(event)
	return nil
}

// GetSyncRecords returns the recent sync outcomes for a user.
func (es *EventsService) GetSyncRecords(userID string, limit int64) ([]cohortmodel.SyncResult, error) {

	return store.GetSyncRecords(userID, limit)
}

func validateEvent(event *model.ProfileChangeEvent) error {

	event.EventType = strings.ToLower(event.EventType)

	if event.UserID == "" || !constants.AllowedEventTypes[event.EventType] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrInvalidEventPayload.Code,
			Message:     errors2.ErrInvalidEventPayload.Message,
			Description: "Events must carry a user_id and a supported event_type.",
		}, http.StatusBadRequest)
	}
	return nil
}
