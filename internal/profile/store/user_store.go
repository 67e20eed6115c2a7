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

package store

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"

	"github.com/wso2/identity-cohort-sync/internal/profile/model"
	"github.com/wso2/identity-cohort-sync/internal/system/database/provider"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
)

// GetUserByID fetches a user record with its custom profile fields from the
// host platform's user tables.
func GetUserByID(userID string) (*model.User, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_USER.Code,
			Message:     errors2.GET_USER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT user_id, username, email, first_name, last_name, department, institution,
		city, country, lang, deleted, suspended FROM users WHERE user_id = $1`

	rows, err := dbClient.ExecuteQuery(query, userID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on fetching user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_USER.Code,
			Message:     errors2.GET_USER.Message,
			Description: errorMsg,
		}, err)
	}
	if len(rows) == 0 {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrUserNotFound.Code,
			Message:     errors2.ErrUserNotFound.Message,
			Description: fmt.Sprintf("No user exists with id: %s", userID),
		}, http.StatusNotFound)
	}

	user := mapRowToUser(rows[0])

	fieldRows, err := dbClient.ExecuteQuery(
		`SELECT field_name, field_value FROM user_custom_fields WHERE user_id = $1`, userID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on fetching custom fields for user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_USER.Code,
			Message:     errors2.GET_USER.Message,
			Description: errorMsg,
		}, err)
	}

	if len(fieldRows) > 0 {
		user.CustomFields = make(map[string]string, len(fieldRows))
		for _, row := range fieldRows {
			user.CustomFields[asString(row["field_name"])] = asString(row["field_value"])
		}
	}

	return user, nil
}

func mapRowToUser(row map[string]interface{}) *model.User {
	return &model.User{
		UserID:      asString(row["user_id"]),
		Username:    asString(row["username"]),
		Email:       asString(row["email"]),
		FirstName:   asString(row["first_name"]),
		LastName:    asString(row["last_name"]),
		Department:  asString(row["department"]),
		Institution: asString(row["institution"]),
		City:        asString(row["city"]),
		Country:     asString(row["country"]),
		Lang:        asString(row["lang"]),
		Deleted:     asBool(row["deleted"]),
		Suspended:   asBool(row["suspended"]),
	}
}

func asString(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func asBool(value interface{}) bool {
	b, ok := value.(bool)
	return ok && b
}
