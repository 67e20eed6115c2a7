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
	"net/http"
	"strconv"
	"time"

	"github.com/wso2/identity-cohort-sync/internal/rules/model"
	"github.com/wso2/identity-cohort-sync/internal/rules/store"
	"github.com/wso2/identity-cohort-sync/internal/system/cache"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
	errors2 "github.com/wso2/identity-cohort-sync/internal/system/errors"
)

const settingsCacheKey = "cohort_sync_settings"

var settingsCache = cache.NewCache(30 * time.Second)

type SettingsServiceInterface interface {
	GetSettings() (model.RuleConfiguration, error)
	UpdateSettings(config model.RuleConfiguration) error
}

// SettingsService is the default implementation of the SettingsServiceInterface.
type SettingsService struct{}

// GetSettingsService creates a new instance of SettingsService.
func GetSettingsService() SettingsServiceInterface {

	return &SettingsService{}
}

// GetSettings loads the rule configuration, applying documented defaults
// for missing or malformed values. Reads go through a short-lived cache so
// bursts of profile change events do not hammer the settings table.
func (ss *SettingsService) GetSettings() (model.RuleConfiguration, error) {

	if cached, found := settingsCache.Get(settingsCacheKey); found {
		if config, ok := cached.(model.RuleConfiguration); ok {
			return config, nil
		}
	}

	values, err := store.GetAllSettings()
	if err != nil {
		return model.DefaultRuleConfiguration(), err
	}

	config := configFromValues(values)
	settingsCache.Set(settingsCacheKey, config)
	return config, nil
}

// UpdateSettings validates and persists the rule configuration and
// invalidates the settings cache.
func (ss *SettingsService) UpdateSettings(config model.RuleConfiguration) error {

	if _, ok := constants.DelimiterBytes[config.Delimiter]; !ok {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrInvalidDelimiter.Code,
			Message:     errors2.ErrInvalidDelimiter.Message,
			Description: errors2.ErrInvalidDelimiter.Description,
		}, http.StatusBadRequest)
	}
	if config.Placeholder == "" {
		config.Placeholder = constants.DefaultPlaceholder
	}

	err := store.UpsertSettings(map[string]string{
		constants.SettingMainRule:       config.MainRule,
		constants.SettingPlaceholder:    config.Placeholder,
		constants.SettingReplacePairs:   config.ReplacePairs,
		constants.SettingDelimiter:      config.Delimiter,
		constants.SettingDontTouchUsers: config.DontTouchUsers,
		constants.SettingEnableUnenrol:  strconv.FormatBool(config.EnableUnenrol),
	})
	if err != nil {
		return err
	}

	settingsCache.Delete(settingsCacheKey)
	return nil
}

// configFromValues builds a RuleConfiguration from raw settings values.
// Anything missing or unparsable falls back to its default.
func configFromValues(values map[string]string) model.RuleConfiguration {

	config := model.DefaultRuleConfiguration()

	if v, ok := values[constants.SettingMainRule]; ok {
		config.MainRule = v
	}
	if v, ok := values[constants.SettingPlaceholder]; ok && v != "" {
		config.Placeholder = v
	}
	if v, ok := values[constants.SettingReplacePairs]; ok {
		config.ReplacePairs = v
	}
	if v, ok := values[constants.SettingDelimiter]; ok {
		if _, valid := constants.DelimiterBytes[v]; valid {
			config.Delimiter = v
		}
	}
	if v, ok := values[constants.SettingDontTouchUsers]; ok {
		config.DontTouchUsers = v
	}
	if v, ok := values[constants.SettingEnableUnenrol]; ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.EnableUnenrol = enabled
		}
	}

	return config
}
