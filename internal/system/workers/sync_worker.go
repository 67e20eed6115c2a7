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

package workers

import (
	cohortprovider "github.com/wso2/identity-cohort-sync/internal/cohort/provider"
	"github.com/wso2/identity-cohort-sync/internal/events/model"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
)

var SyncQueue chan model.ProfileChangeEvent

// StartSyncWorker starts the single consumer goroutine draining the sync
// queue. One event is processed at a time; events for different users are
// independent and replaying an event is harmless.
func StartSyncWorker() {

	SyncQueue = make(chan model.ProfileChangeEvent, constants.DefaultQueueSize)

	go func() {
		for event := range SyncQueue {
			syncService := cohortprovider.NewCohortProvider().GetSyncService()
			syncService.SyncUserProfile(event.UserID)
		}
	}()
}

// EnqueueEventForSync schedules a cohort sync run for the event's user.
func EnqueueEventForSync(event model.ProfileChangeEvent) {
	if SyncQueue != nil {
		SyncQueue <- event
	}
}

// SyncWorkerQueue implements the events service EventQueue interface.
type SyncWorkerQueue struct{}

// Enqueue schedules the event on the sync queue.
func (q *SyncWorkerQueue) Enqueue(event model.ProfileChangeEvent) {
	EnqueueEventForSync(event)
}
