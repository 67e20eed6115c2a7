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
	"strings"
	"testing"

	"github.com/wso2/identity-cohort-sync/internal/profile/model"
)

func TestSanitizeScalars(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{
			name:     "plain string",
			value:    "Sales",
			expected: "Sales",
		},
		{
			name:     "boolean true",
			value:    true,
			expected: "true",
		},
		{
			name:     "boolean false",
			value:    false,
			expected: "false",
		},
		{
			name:     "nil value",
			value:    nil,
			expected: "n/a",
		},
		{
			name:     "empty string",
			value:    "",
			expected: "n/a",
		},
		{
			name:     "single space",
			value:    " ",
			expected: "n/a",
		},
		{
			name:     "integer",
			value:    42,
			expected: "42",
		},
		{
			name:     "html is escaped",
			value:    "<b>Sales</b>",
			expected: "&lt;b&gt;Sales&lt;/b&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.value, "n/a")
			if result.IsMapping() {
				t.Fatalf("Sanitize() returned a mapping, want string %q", tt.expected)
			}
			if result.String() != tt.expected {
				t.Errorf("Sanitize() = %q, want %q", result.String(), tt.expected)
			}
		})
	}
}

func TestSanitizeTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 250)
	result := Sanitize(long, "n/a")
	if got := len([]rune(result.String())); got != 100 {
		t.Errorf("sanitized value has %d characters, want 100", got)
	}
}

func TestSanitizeDropsRejectedKeysAtAnyDepth(t *testing.T) {
	raw := map[string]interface{}{
		"username": "jdoe",
		"sesskey":  "secret",
		"prefs": map[string]interface{}{
			"editing": "1",
			"theme":   "dark",
			"inner": map[string]interface{}{
				"enrol": "manual",
				"city":  "Colombo",
			},
		},
	}

	result := Sanitize(raw, "n/a")
	if !result.IsMapping() {
		t.Fatal("Sanitize() did not return a mapping")
	}
	mapping := result.Mapping()

	if _, found := mapping.Get("sesskey"); found {
		t.Error("rejected key sesskey survived sanitization")
	}
	prefs, _ := mapping.Get("prefs")
	if !prefs.IsMapping() {
		t.Fatal("prefs did not sanitize to a mapping")
	}
	if _, found := prefs.Mapping().Get("editing"); found {
		t.Error("rejected key editing survived at depth 1")
	}
	inner, _ := prefs.Mapping().Get("inner")
	if !inner.IsMapping() {
		t.Fatal("inner did not sanitize to a mapping")
	}
	if _, found := inner.Mapping().Get("enrol"); found {
		t.Error("rejected key enrol survived at depth 2")
	}
	if inner.Mapping().Lookup("city") != "Colombo" {
		t.Error("allowed nested key city was lost")
	}
}

func TestSanitizeEmptyCompositeCollapsesToPlaceholder(t *testing.T) {
	raw := map[string]interface{}{
		"sesskey": "secret",
		"editing": "1",
	}

	result := Sanitize(raw, "n/a")
	if result.IsMapping() {
		t.Fatal("empty composite should collapse to the placeholder string")
	}
	if result.String() != "n/a" {
		t.Errorf("Sanitize() = %q, want placeholder", result.String())
	}
}

func TestSanitizeArrayBecomesIndexedMapping(t *testing.T) {
	result := Sanitize([]interface{}{"a", "b"}, "n/a")
	if !result.IsMapping() {
		t.Fatal("array did not sanitize to a mapping")
	}
	if result.Mapping().Lookup("0") != "a" || result.Mapping().Lookup("1") != "b" {
		t.Error("array elements not indexed as 0, 1")
	}
}

func TestBuildRawProfileMergesCustomFields(t *testing.T) {
	user := &model.User{
		UserID:     "u-1",
		Username:   "jdoe",
		Email:      "jdoe@example.com",
		Department: "Sales",
		CustomFields: map[string]string{
			"team":     "emea",
			"username": "shadowed", // must not win over the standard field
		},
	}

	raw := BuildRawProfile(user)
	if raw["username"] != "jdoe" {
		t.Errorf("custom field shadowed standard username: %v", raw["username"])
	}
	if raw["team"] != "emea" {
		t.Errorf("custom field team missing: %v", raw["team"])
	}
}
