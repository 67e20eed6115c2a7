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

	"github.com/wso2/identity-cohort-sync/internal/cohort/model"
	"github.com/wso2/identity-cohort-sync/internal/system/database/provider"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
)

// CohortStore talks to the host platform's cohort tables.
type CohortStore struct{}

// NewCohortStore creates a new instance of CohortStore.
func NewCohortStore() *CohortStore {

	return &CohortStore{}
}

// ListCohorts returns the cohorts in the given context. A non-empty
// component restricts the result to cohorts managed by that component.
func (cs *CohortStore) ListCohorts(contextID int, component string) ([]model.Cohort, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for listing cohorts in context: %d", contextID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COHORTS.Code,
			Message:     errors2.LIST_COHORTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT cohort_id, name, description, context_id, component, created_at
		FROM cohorts WHERE context_id = $1`
	args := []interface{}{contextID}
	if component != "" {
		query += ` AND component = $2`
		args = append(args, component)
	}

	rows, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on listing cohorts in context: %d", contextID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LIST_COHORTS.Code,
			Message:     errors2.LIST_COHORTS.Message,
			Description: errorMsg,
		}, err)
	}

	cohorts := make([]model.Cohort, 0, len(rows))
	for _, row := range rows {
		cohorts = append(cohorts, mapRowToCohort(row))
	}
	return cohorts, nil
}

// CreateCohort inserts a new cohort.
func (cs *CohortStore) CreateCohort(cohort model.Cohort) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for creating cohort: %s", cohort.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CREATE_COHORT.Code,
			Message:     errors2.CREATE_COHORT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO cohorts (cohort_id, name, description, context_id, component, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	err = dbClient.Exec(query, cohort.CohortID, cohort.Name, cohort.Description,
		cohort.ContextID, cohort.Component, cohort.CreatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting cohort: %s", cohort.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CREATE_COHORT.Code,
			Message:     errors2.CREATE_COHORT.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// AddMembership adds the user to the cohort. Duplicate adds are no-ops.
func (cs *CohortStore) AddMembership(cohortID, userID string, addedAt int64) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding user %s to cohort %s", userID, cohortID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_MEMBERSHIP.Code,
			Message:     errors2.ADD_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO cohort_members (cohort_id, user_id, added_at) VALUES ($1, $2, $3)
		ON CONFLICT (cohort_id, user_id) DO NOTHING`

	if err := dbClient.Exec(query, cohortID, userID, addedAt); err != nil {
		errorMsg := fmt.Sprintf("Failed on adding user %s to cohort %s", userID, cohortID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_MEMBERSHIP.Code,
			Message:     errors2.ADD_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// RemoveMembership removes the user from the cohort. Removing an absent
// membership is a no-op.
func (cs *CohortStore) RemoveMembership(cohortID, userID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for removing user %s from cohort %s", userID, cohortID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.REMOVE_MEMBERSHIP.Code,
			Message:     errors2.REMOVE_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `DELETE FROM cohort_members WHERE cohort_id = $1 AND user_id = $2`

	if err := dbClient.Exec(query, cohortID, userID); err != nil {
		errorMsg := fmt.Sprintf("Failed on removing user %s from cohort %s", userID, cohortID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.REMOVE_MEMBERSHIP.Code,
			Message:     errors2.REMOVE_MEMBERSHIP.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// IsMember reports whether the user belongs to the cohort.
func (cs *CohortStore) IsMember(cohortID, userID string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for checking membership of user %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_MEMBERSHIPS.Code,
			Message:     errors2.GET_MEMBERSHIPS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	rows, err := dbClient.ExecuteQuery(
		`SELECT 1 FROM cohort_members WHERE cohort_id = $1 AND user_id = $2`, cohortID, userID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on checking membership of user %s in cohort %s", userID, cohortID)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_MEMBERSHIPS.Code,
			Message:     errors2.GET_MEMBERSHIPS.Message,
			Description: errorMsg,
		}, err)
	}
	return len(rows) > 0, nil
}

// GetManagedMemberships returns the cohorts managed by the given component
// that the user currently belongs to.
func (cs *CohortStore) GetManagedMemberships(userID, component string) ([]model.Cohort, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching managed memberships of user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_MEMBERSHIPS.Code,
			Message:     errors2.GET_MEMBERSHIPS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT c.cohort_id, c.name, c.description, c.context_id, c.component, c.created_at
		FROM cohorts c JOIN cohort_members m ON m.cohort_id = c.cohort_id
		WHERE m.user_id = $1 AND c.component = $2`

	rows, err := dbClient.ExecuteQuery(query, userID, component)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on fetching managed memberships of user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_MEMBERSHIPS.Code,
			Message:     errors2.GET_MEMBERSHIPS.Message,
			Description: errorMsg,
		}, err)
	}

	cohorts := make([]model.Cohort, 0, len(rows))
	for _, row := range rows {
		cohorts = append(cohorts, mapRowToCohort(row))
	}
	return cohorts, nil
}

func mapRowToCohort(row map[string]interface{}) model.Cohort {
	cohort := model.Cohort{
		CohortID:  asString(row["cohort_id"]),
		Name:      asString(row["name"]),
		Component: asString(row["component"]),
	}
	cohort.Description = asString(row["description"])
	if v, ok := row["context_id"].(int64); ok {
		cohort.ContextID = int(v)
	}
	if v, ok := row["created_at"].(int64); ok {
		cohort.CreatedAt = v
	}
	return cohort
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
