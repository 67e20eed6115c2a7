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

// Cohort is a named group of users in the host platform. Cohorts carrying
// the sync component tag are managed by this service and eligible for
// membership pruning; cohorts are never deleted.
type Cohort struct {
	CohortID    string `json:"cohort_id" bson:"cohort_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ContextID   int    `json:"context_id" bson:"context_id"`
	Component   string `json:"component,omitempty" bson:"component,omitempty"`
	CreatedAt   int64  `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Membership is a (cohort, user) pair.
type Membership struct {
	CohortID string `json:"cohort_id" bson:"cohort_id"`
	UserID   string `json:"user_id" bson:"user_id"`
	AddedAt  int64  `json:"added_at,omitempty" bson:"added_at,omitempty"`
}

// SyncResult summarizes one reconciliation run for a user.
type SyncResult struct {
	UserID    string   `json:"user_id" bson:"user_id"`
	Names     []string `json:"cohort_names" bson:"cohort_names"`
	Processed []string `json:"processed_cohort_ids" bson:"processed_cohort_ids"`
	Created   []string `json:"created_cohort_ids,omitempty" bson:"created_cohort_ids,omitempty"`
	Joined    []string `json:"joined_cohort_ids,omitempty" bson:"joined_cohort_ids,omitempty"`
	Removed   []string `json:"removed_cohort_ids,omitempty" bson:"removed_cohort_ids,omitempty"`
	Skipped   bool     `json:"skipped,omitempty" bson:"skipped,omitempty"`
	SyncedAt  int64    `json:"synced_at" bson:"synced_at"`
}
