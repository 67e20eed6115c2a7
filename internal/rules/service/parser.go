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
	"regexp"
	"strings"

	profilemodel "github.com/wso2/identity-cohort-sync/internal/profile/model"
)

// splitDirectivePattern matches a %split(field|sep) directive: a word-only
// field name and a 1 to 5 character separator.
var splitDirectivePattern = regexp.MustCompile(`%split\((\w+)\|([^)|]{1,5})\)`)

// ParseRules splits the main rule into template items and expands split
// directives against the sanitized profile. It returns the templates in
// input order together with an extended copy of the profile carrying the
// synthetic <field>_<index> fields bound during expansion; the input
// profile is never mutated.
//
// A directive whose source field is missing, or holds a nested mapping
// rather than a string, produces zero templates.
func ParseRules(mainrule, delimiter string, profile *profilemodel.SanitizedMapping) ([]string, *profilemodel.SanitizedMapping) {

	extended := profile.Clone()
	if mainrule == "" {
		return nil, extended
	}

	var templates []string
	for _, item := range strings.Split(mainrule, delimiter) {
		match := splitDirectivePattern.FindStringSubmatch(item)
		if match == nil {
			templates = append(templates, item)
			continue
		}

		field, separator := match[1], match[2]
		value, ok := extended.Get(field)
		if !ok || value.IsMapping() {
			continue
		}

		for i, part := range strings.Split(value.String(), separator) {
			derived := fmt.Sprintf("%s_%d", field, i)
			extended.Set(derived, profilemodel.NewStringValue(part))
			templates = append(templates,
				strings.Replace(item, match[0], fmt.Sprintf("{{ %s }}", derived), 1))
		}
	}

	return templates, extended
}
