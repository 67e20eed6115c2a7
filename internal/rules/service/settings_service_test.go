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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/identity-cohort-sync/internal/system/constants"
)

func TestConfigFromValuesDefaults(t *testing.T) {
	config := configFromValues(map[string]string{})

	assert.Equal(t, "", config.MainRule)
	assert.Equal(t, constants.DefaultPlaceholder, config.Placeholder)
	assert.Equal(t, constants.DefaultDelimiter, config.Delimiter)
	assert.False(t, config.EnableUnenrol)
}

func TestConfigFromValues(t *testing.T) {
	config := configFromValues(map[string]string{
		constants.SettingMainRule:       "dept-{{ department }}",
		constants.SettingPlaceholder:    "none",
		constants.SettingDelimiter:      "LF",
		constants.SettingDontTouchUsers: "admin",
		constants.SettingEnableUnenrol:  "true",
	})

	assert.Equal(t, "dept-{{ department }}", config.MainRule)
	assert.Equal(t, "none", config.Placeholder)
	assert.Equal(t, "LF", config.Delimiter)
	assert.Equal(t, "admin", config.DontTouchUsers)
	assert.True(t, config.EnableUnenrol)
}

func TestConfigFromValuesMalformedFallsBack(t *testing.T) {
	config := configFromValues(map[string]string{
		constants.SettingPlaceholder:   "",
		constants.SettingDelimiter:     "TAB",
		constants.SettingEnableUnenrol: "not-a-bool",
	})

	assert.Equal(t, constants.DefaultPlaceholder, config.Placeholder)
	assert.Equal(t, constants.DefaultDelimiter, config.Delimiter)
	assert.False(t, config.EnableUnenrol)
}
