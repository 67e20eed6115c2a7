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

package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/identity-cohort-sync/internal/system/config"
)

var (
	database *mongo.Database
	initErr  error
	once     sync.Once
)

// GetDatabase returns the mongo database holding the audit collections.
// The connection is established once and reused across calls.
func GetDatabase() (*mongo.Database, error) {

	once.Do(func() {
		conf := config.GetCHSRuntime().Config.AuditStore

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
		if err != nil {
			initErr = fmt.Errorf("failed to connect to audit store: %w", err)
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			initErr = fmt.Errorf("failed to ping audit store: %w", err)
			return
		}

		database = client.Database(conf.Database)
	})

	return database, initErr
}

// OverrideDatabase replaces the mongo database handle. Used by tests.
func OverrideDatabase(db *mongo.Database) {
	once.Do(func() {})
	database = db
	initErr = nil
}
