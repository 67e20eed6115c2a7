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

	_ "github.com/lib/pq"

	"github.com/wso2/identity-cohort-sync/internal/system/database/provider"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
)

// GetAllSettings reads every persisted setting as a name to value map.
func GetAllSettings() (map[string]string, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching cohort sync settings."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SETTINGS.Code,
			Message:     errors2.GET_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	rows, err := dbClient.ExecuteQuery(`SELECT name, value FROM cohort_sync_settings`)
	if err != nil {
		errorMsg := "Failed on fetching cohort sync settings."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SETTINGS.Code,
			Message:     errors2.GET_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		name, _ := row["name"].(string)
		value, _ := row["value"].(string)
		settings[name] = value
	}
	return settings, nil
}

// UpsertSettings persists the given settings, replacing existing values.
func UpsertSettings(settings map[string]string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for updating cohort sync settings."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SETTINGS.Code,
			Message:     errors2.UPDATE_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := "Failed to begin transaction for updating cohort sync settings."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SETTINGS.Code,
			Message:     errors2.UPDATE_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO cohort_sync_settings (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`

	for name, value := range settings {
		if _, err := tx.Exec(query, name, value); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Debug("Failed to rollback transaction for updating cohort sync settings.",
					log.Error(rollbackErr))
			}
			errorMsg := fmt.Sprintf("Failed on upserting cohort sync setting: %s", name)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPDATE_SETTINGS.Code,
				Message:     errors2.UPDATE_SETTINGS.Message,
				Description: errorMsg,
			}, err)
		}
	}

	if err := tx.Commit(); err != nil {
		errorMsg := "Failed to commit transaction for updating cohort sync settings."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_SETTINGS.Code,
			Message:     errors2.UPDATE_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	return nil
}
