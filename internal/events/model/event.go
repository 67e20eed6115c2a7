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

package model

// ProfileChangeEvent is emitted by the host platform whenever a user
// profile is created or updated. One event triggers one cohort sync run.
type ProfileChangeEvent struct {
	EventID        string `json:"event_id,omitempty" bson:"event_id,omitempty"`
	UserID         string `json:"user_id" bson:"user_id"`
	EventType      string `json:"event_type" bson:"event_type"`
	EventTimestamp int64  `json:"event_timestamp,omitempty" bson:"event_timestamp,omitempty"`
	ReceivedAt     int64  `json:"received_at,omitempty" bson:"received_at,omitempty"`
}
