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
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	cohortmodel "github.com/wso2/identity-cohort-sync/internal/cohort/model"
	"github.com/wso2/identity-cohort-sync/internal/events/model"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
	"github.com/wso2/identity-cohort-sync/internal/system/log"
	mongodb "github.com/wso2/identity-cohort-sync/internal/system/mongo"
)

// AddEvent persists a profile change event in the audit store.
func AddEvent(event model.ProfileChangeEvent) error {

	db, err := mongodb.GetDatabase()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get audit store for persisting event: %s", event.EventID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EVENT.Code,
			Message:     errors2.ADD_EVENT.Message,
			Description: errorMsg,
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = db.Collection(constants.EventCollection).InsertOne(ctx, event)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting event: %s", event.EventID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EVENT.Code,
			Message:     errors2.ADD_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// AddSyncRecord persists the outcome of one sync run.
func AddSyncRecord(result cohortmodel.SyncResult) error {

	db, err := mongodb.GetDatabase()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get audit store for persisting sync record of user: %s", result.UserID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_SYNC_RECORD.Code,
			Message:     errors2.ADD_SYNC_RECORD.Message,
			Description: errorMsg,
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = db.Collection(constants.SyncRecordCollection).InsertOne(ctx, result)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting sync record for user: %s", result.UserID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_SYNC_RECORD.Code,
			Message:     errors2.ADD_SYNC_RECORD.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// GetSyncRecords fetches the most recent sync outcomes for a user, newest
// first.
func GetSyncRecords(userID string, limit int64) ([]cohortmodel.SyncResult, error) {

	db, err := mongodb.GetDatabase()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get audit store for fetching sync records of user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SYNC_RECORDS.Code,
			Message:     errors2.GET_SYNC_RECORDS.Message,
			Description: errorMsg,
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "synced_at", Value: -1}}).SetLimit(limit)
	cursor, err := db.Collection(constants.SyncRecordCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on fetching sync records for user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SYNC_RECORDS.Code,
			Message:     errors2.GET_SYNC_RECORDS.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var records []cohortmodel.SyncResult
	if err := cursor.All(ctx, &records); err != nil {
		errorMsg := fmt.Sprintf("Failed on decoding sync records for user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_SYNC_RECORDS.Code,
			Message:     errors2.GET_SYNC_RECORDS.Message,
			Description: errorMsg,
		}, err)
	}
	return records, nil
}
