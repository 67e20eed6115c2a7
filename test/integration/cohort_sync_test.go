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

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cohortservice "github.com/wso2/identity-cohort-sync/internal/cohort/service"
	cohortstore "github.com/wso2/identity-cohort-sync/internal/cohort/store"
	profileservice "github.com/wso2/identity-cohort-sync/internal/profile/service"
	rulesmodel "github.com/wso2/identity-cohort-sync/internal/rules/model"
	rulesservice "github.com/wso2/identity-cohort-sync/internal/rules/service"
	"github.com/wso2/identity-cohort-sync/internal/rules/store"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
	"github.com/wso2/identity-cohort-sync/internal/system/database/provider"
)

func seedUser(t *testing.T, userID, username, email, department string) {
	t.Helper()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	require.NoError(t, err)

	err = dbClient.Exec(
		`INSERT INTO users (user_id, username, email, department) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET department = EXCLUDED.department`,
		userID, username, email, department)
	require.NoError(t, err)
}

func seedCustomField(t *testing.T, userID, name, value string) {
	t.Helper()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	require.NoError(t, err)

	err = dbClient.Exec(
		`INSERT INTO user_custom_fields (user_id, field_name, field_value) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, field_name) DO UPDATE SET field_value = EXCLUDED.field_value`,
		userID, name, value)
	require.NoError(t, err)
}

func TestSettingsRoundTrip(t *testing.T) {
	settingsService := rulesservice.GetSettingsService()

	err := settingsService.UpdateSettings(rulesmodel.RuleConfiguration{
		MainRule:      "dept-{{ department }}",
		Placeholder:   "n/a",
		Delimiter:     constants.DelimiterCRLF,
		EnableUnenrol: false,
	})
	require.NoError(t, err)

	config, err := settingsService.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "dept-{{ department }}", config.MainRule)
	assert.Equal(t, "n/a", config.Placeholder)
	assert.False(t, config.EnableUnenrol)

	values, err := store.GetAllSettings()
	require.NoError(t, err)
	assert.Equal(t, "dept-{{ department }}", values[constants.SettingMainRule])
}

func TestSettingsRejectsUnknownDelimiter(t *testing.T) {
	settingsService := rulesservice.GetSettingsService()

	err := settingsService.UpdateSettings(rulesmodel.RuleConfiguration{
		MainRule:  "dept-{{ department }}",
		Delimiter: "TAB",
	})
	assert.Error(t, err)
}

func TestCohortSyncEndToEnd(t *testing.T) {
	userID := "it-user-1"
	seedUser(t, userID, "alice", "alice@mail.co.uk", "Sales")
	seedCustomField(t, userID, "tags", "go;sql")

	config := rulesmodel.DefaultRuleConfiguration()
	config.MainRule = "dept-{{ department }}\r\ndomain-{{ email.rootdomain }}\r\ntag-%split(tags|;)"
	config.EnableUnenrol = true

	profileService := profileservice.GetProfileService()
	user, err := profileService.GetUser(userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	profile := profileService.GetSanitizedProfile(user, config.Placeholder)
	names := rulesservice.EvaluateProfile(profile, config)
	assert.ElementsMatch(t, []string{"dept-Sales", "domain-co.uk", "tag-go", "tag-sql"}, names)

	reconciler := cohortservice.NewReconcilerService(cohortstore.NewCohortStore())
	result := reconciler.Reconcile(user, names, config)

	assert.False(t, result.Skipped)
	assert.Len(t, result.Created, 4)
	assert.Len(t, result.Joined, 4)

	cohorts, err := cohortstore.NewCohortStore().ListCohorts(constants.SystemContextID, constants.ManagedComponent)
	require.NoError(t, err)
	byName := make(map[string]string, len(cohorts))
	for _, cohort := range cohorts {
		byName[cohort.Name] = cohort.CohortID
	}
	require.Contains(t, byName, "dept-Sales")

	isMember, err := cohortstore.NewCohortStore().IsMember(byName["dept-Sales"], userID)
	require.NoError(t, err)
	assert.True(t, isMember)

	// A second run over the same profile changes nothing.
	again := reconciler.Reconcile(user, names, config)
	assert.Empty(t, again.Created)
	assert.Empty(t, again.Removed)

	// The user moves departments; the stale managed membership is pruned.
	seedUser(t, userID, "alice", "alice@mail.co.uk", "Marketing")
	user, err = profileService.GetUser(userID)
	require.NoError(t, err)

	profile = profileService.GetSanitizedProfile(user, config.Placeholder)
	names = rulesservice.EvaluateProfile(profile, config)
	result = reconciler.Reconcile(user, names, config)

	assert.Len(t, result.Created, 1)
	assert.Equal(t, []string{byName["dept-Sales"]}, result.Removed)

	isMember, err = cohortstore.NewCohortStore().IsMember(byName["dept-Sales"], userID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestGetUserNotFound(t *testing.T) {
	_, err := profileservice.GetProfileService().GetUser("no-such-user")
	assert.Error(t, err)
}
