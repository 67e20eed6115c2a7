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

package constants

const (
	ApiBasePath = "/cohort-sync"

	// ManagedComponent tags cohorts created by this service while unenrol is
	// enabled. Only cohorts carrying this tag are ever pruned.
	ManagedComponent = "cohort_sync"

	// SystemContextID is the host platform's system-wide context that owns
	// every cohort this service creates or joins.
	SystemContextID = 1

	// GuestUsername is the host platform's reserved anonymous account.
	GuestUsername = "guest"

	DefaultQueueSize = 1000
)

// Settings keys as persisted in the cohort_sync_settings table.
const (
	SettingMainRule       = "mainrule_fld"
	SettingPlaceholder    = "secondrule_fld"
	SettingReplacePairs   = "replace_arr"
	SettingDelimiter      = "delim"
	SettingDontTouchUsers = "donttouchusers"
	SettingEnableUnenrol  = "enableunenrol"
)

// Delimiter names accepted in the delim setting.
const (
	DelimiterCRLF = "CR+LF"
	DelimiterCR   = "CR"
	DelimiterLF   = "LF"
)

// DelimiterBytes maps the persisted delimiter name to its literal separator.
var DelimiterBytes = map[string]string{
	DelimiterCRLF: "\r\n",
	DelimiterCR:   "\r",
	DelimiterLF:   "\n",
}

const (
	DefaultPlaceholder = "n/a"
	DefaultDelimiter   = DelimiterCRLF
)

// MongoDB collections for the audit trail.
const (
	EventCollection      = "profile_change_events"
	SyncRecordCollection = "cohort_sync_records"
)

// Profile change event types accepted by the intake endpoint.
var AllowedEventTypes = map[string]bool{
	"user_created": true,
	"user_updated": true,
}
