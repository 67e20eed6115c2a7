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
	profilemodel "github.com/wso2/identity-cohort-sync/internal/profile/model"
	"github.com/wso2/identity-cohort-sync/internal/rules/model"
)

// EvaluateProfile runs the full rule pipeline over a sanitized profile:
// parse the main rule, expand the email field, render every template.
// The returned names are in template order and may contain empty strings
// for templates whose fields did not resolve.
func EvaluateProfile(profile *profilemodel.SanitizedMapping, config model.RuleConfiguration) []string {

	templates, extended := ParseRules(config.MainRule, config.DelimiterBytes(), profile)
	if len(templates) == 0 {
		return nil
	}

	extended = ExpandEmail(extended)
	substitutions := config.Substitutions()

	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, RenderTemplate(template, extended, substitutions))
	}
	return names
}
