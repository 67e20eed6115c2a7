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
	"fmt"
	"html"
	"sort"
	"strconv"

	"github.com/wso2/identity-cohort-sync/internal/profile/model"
)

// maxFieldLength caps every sanitized scalar. Rendered cohort names stay
// bounded no matter what a custom profile field holds.
const maxFieldLength = 100

// rejectedFields are host platform bookkeeping keys that must never leak
// into a sanitized profile, at any nesting depth.
var rejectedFields = map[string]bool{
	"ajax_updatable_user_prefs": true,
	"sesskey":                   true,
	"preference":                true,
	"editing":                   true,
	"access":                    true,
	"message_lastpopup":         true,
	"enrol":                     true,
}

// Sanitize recursively flattens an arbitrary profile value into a
// SanitizedValue. Composite inputs become ordered mappings with rejected
// keys dropped; scalars are stringified, escaped and truncated. Empty or
// nil scalars render as the placeholder, and an empty composite collapses
// to the placeholder as well. Sanitize never fails.
func Sanitize(data interface{}, placeholder string) model.SanitizedValue {

	switch value := data.(type) {
	case map[string]interface{}:
		mapping := model.NewSanitizedMapping()
		for _, key := range sortedKeys(value) {
			if rejectedFields[key] {
				continue
			}
			mapping.Set(key, Sanitize(value[key], placeholder))
		}
		if mapping.Len() == 0 {
			return model.NewStringValue(placeholder)
		}
		return model.NewMappingValue(mapping)
	case []interface{}:
		mapping := model.NewSanitizedMapping()
		for i, item := range value {
			mapping.Set(strconv.Itoa(i), Sanitize(item, placeholder))
		}
		if mapping.Len() == 0 {
			return model.NewStringValue(placeholder)
		}
		return model.NewMappingValue(mapping)
	default:
		return model.NewStringValue(sanitizeScalar(value, placeholder))
	}
}

// BuildRawProfile assembles the per-invocation raw profile for a user:
// the standard fields plus custom profile fields. Custom fields never
// shadow a standard field.
func BuildRawProfile(user *model.User) map[string]interface{} {

	raw := map[string]interface{}{
		"id":          user.UserID,
		"username":    user.Username,
		"email":       user.Email,
		"firstname":   user.FirstName,
		"lastname":    user.LastName,
		"department":  user.Department,
		"institution": user.Institution,
		"city":        user.City,
		"country":     user.Country,
		"lang":        user.Lang,
		"deleted":     user.Deleted,
		"suspended":   user.Suspended,
	}

	for name, value := range user.CustomFields {
		if _, exists := raw[name]; exists {
			continue
		}
		raw[name] = value
	}

	return raw
}

func sanitizeScalar(value interface{}, placeholder string) string {

	switch v := value.(type) {
	case nil:
		return placeholder
	case bool:
		return strconv.FormatBool(v)
	case string:
		if v == "" || v == " " {
			return placeholder
		}
		return truncate(html.EscapeString(v))
	default:
		return truncate(html.EscapeString(fmt.Sprintf("%v", v)))
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFieldLength {
		return s
	}
	return string(runes[:maxFieldLength])
}

// sortedKeys fixes the iteration order of a raw map so repeated runs over
// the same profile sanitize identically.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
