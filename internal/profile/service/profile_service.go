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

package service

import (
	"github.com/wso2/identity-cohort-sync/internal/profile/model"
	"github.com/wso2/identity-cohort-sync/internal/profile/store"
)

type ProfileServiceInterface interface {
	GetUser(userID string) (*model.User, error)
	GetSanitizedProfile(user *model.User, placeholder string) *model.SanitizedMapping
}

// ProfileService is the default implementation of the ProfileServiceInterface.
type ProfileService struct{}

// GetProfileService creates a new instance of ProfileService.
func GetProfileService() ProfileServiceInterface {

	return &ProfileService{}
}

// GetUser fetches the full user record, standard plus custom fields.
func (ps *ProfileService) GetUser(userID string) (*model.User, error) {

	return store.GetUserByID(userID)
}

// GetSanitizedProfile builds and sanitizes the raw profile of a user.
func (ps *ProfileService) GetSanitizedProfile(user *model.User, placeholder string) *model.SanitizedMapping {

	sanitized := Sanitize(BuildRawProfile(user), placeholder)
	if sanitized.IsMapping() {
		return sanitized.Mapping()
	}
	// A profile with no usable fields sanitizes to the bare placeholder.
	return model.NewSanitizedMapping()
}
