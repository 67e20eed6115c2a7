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
	"github.com/stretchr/testify/require"

	profilemodel "github.com/wso2/identity-cohort-sync/internal/profile/model"
)

func newProfile(fields map[string]string) *profilemodel.SanitizedMapping {
	profile := profilemodel.NewSanitizedMapping()
	for name, value := range fields {
		profile.Set(name, profilemodel.NewStringValue(value))
	}
	return profile
}

func TestParseRulesPlainItems(t *testing.T) {
	profile := newProfile(nil)

	templates, _ := ParseRules("A|B|C", "|", profile)

	assert.Equal(t, []string{"A", "B", "C"}, templates)
}

func TestParseRulesEmptyMainRule(t *testing.T) {
	templates, extended := ParseRules("", "\r\n", newProfile(map[string]string{"a": "1"}))

	assert.Nil(t, templates)
	assert.Equal(t, "1", extended.Lookup("a"))
}

func TestParseRulesSplitDirective(t *testing.T) {
	profile := newProfile(map[string]string{"tags": "a;b;c"})

	templates, extended := ParseRules("%split(tags|;)", "\r\n", profile)

	require.Len(t, templates, 3)
	assert.Equal(t, "{{ tags_0 }}", templates[0])
	assert.Equal(t, "{{ tags_1 }}", templates[1])
	assert.Equal(t, "{{ tags_2 }}", templates[2])

	assert.Equal(t, "a", extended.Lookup("tags_0"))
	assert.Equal(t, "b", extended.Lookup("tags_1"))
	assert.Equal(t, "c", extended.Lookup("tags_2"))

	// The input profile must stay untouched.
	_, found := profile.Get("tags_0")
	assert.False(t, found)
}

func TestParseRulesSplitKeepsSurroundingText(t *testing.T) {
	profile := newProfile(map[string]string{"roles": "admin,editor"})

	templates, _ := ParseRules("role-%split(roles|,)", "\r\n", profile)

	require.Len(t, templates, 2)
	assert.Equal(t, "role-{{ roles_0 }}", templates[0])
	assert.Equal(t, "role-{{ roles_1 }}", templates[1])
}

func TestParseRulesSplitMissingFieldDropsItem(t *testing.T) {
	templates, _ := ParseRules("%split(tags|;)\r\nB", "\r\n", newProfile(nil))

	assert.Equal(t, []string{"B"}, templates)
}

func TestParseRulesSplitOnMappingFieldDropsItem(t *testing.T) {
	profile := newProfile(nil)
	nested := newProfile(map[string]string{"domain": "example.com"})
	profile.Set("email", profilemodel.NewMappingValue(nested))

	templates, _ := ParseRules("%split(email|@)", "\r\n", profile)

	assert.Empty(t, templates)
}

func TestParseRulesPreservesItemOrder(t *testing.T) {
	profile := newProfile(map[string]string{"tags": "x;y"})

	templates, _ := ParseRules("first\r\n%split(tags|;)\r\nlast", "\r\n", profile)

	assert.Equal(t, []string{"first", "{{ tags_0 }}", "{{ tags_1 }}", "last"}, templates)
}

func TestParseRulesSeparatorTooLongPassesThrough(t *testing.T) {
	profile := newProfile(map[string]string{"tags": "a;b"})

	// Separators are capped at five characters; longer ones do not match
	// the directive and the item passes through as a literal template.
	templates, _ := ParseRules("%split(tags|abcdef)", "\r\n", profile)

	assert.Equal(t, []string{"%split(tags|abcdef)"}, templates)
}
