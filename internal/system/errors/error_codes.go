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

package errors

const errorPrefix = "CHS-"

var (
	// Server error codes

	GET_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while fetching cohort sync settings.",
	}

	UPDATE_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while updating cohort sync settings.",
	}

	GET_USER = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching user profile.",
	}

	LIST_COHORTS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while listing cohorts.",
	}

	CREATE_COHORT = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while creating cohort.",
	}

	ADD_MEMBERSHIP = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while adding cohort membership.",
	}

	REMOVE_MEMBERSHIP = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while removing cohort membership.",
	}

	GET_MEMBERSHIPS = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching cohort memberships.",
	}

	ADD_EVENT = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while persisting profile change event.",
	}

	ADD_SYNC_RECORD = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while persisting sync audit record.",
	}

	GET_SYNC_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while fetching sync audit records.",
	}

	// Client error codes

	ErrInvalidEventPayload = ErrorMessage{
		Code:        errorPrefix + "10001",
		Message:     "Invalid profile change event.",
		Description: "The event payload is missing required fields.",
	}

	ErrUserNotFound = ErrorMessage{
		Code:        errorPrefix + "10002",
		Message:     "User not found.",
		Description: "No user exists for the given identifier.",
	}

	ErrInvalidSettingsPayload = ErrorMessage{
		Code:        errorPrefix + "10003",
		Message:     "Invalid cohort sync settings.",
		Description: "The settings payload could not be parsed.",
	}

	ErrInvalidDelimiter = ErrorMessage{
		Code:        errorPrefix + "10004",
		Message:     "Invalid delimiter.",
		Description: "Delimiter must be one of CR+LF, CR or LF.",
	}

	ErrMissingUserID = ErrorMessage{
		Code:        errorPrefix + "10006",
		Message:     "Missing user identifier.",
		Description: "The request must carry a user_id.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "10005",
		Message:     "Unauthorized request.",
		Description: "The request could not be authenticated.",
	}
)
