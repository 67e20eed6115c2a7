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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
)

func TestGetSyncRecordsMissingUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cohort-sync/audit", nil)
	rec := httptest.NewRecorder()

	NewEventHandler().GetSyncRecords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errors2.ErrMissingUserID.Code, body.Code)
}

func TestAddEventMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/cohort-sync/events", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	NewEventHandler().AddEvent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errors2.ErrInvalidEventPayload.Code, body.Code)
}
