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
	"regexp"
	"strings"

	profilemodel "github.com/wso2/identity-cohort-sync/internal/profile/model"
	"github.com/wso2/identity-cohort-sync/internal/rules/model"
)

// placeholderPattern matches {{ field }} references, including dotted
// paths such as {{ email.domain }}.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)

// RenderTemplate renders a single template against the sanitized profile
// and applies the configured literal substitutions afterwards. Missing
// fields render as the empty string; there are no conditionals or loops.
// Substitutions run as one pass over the rendered string, so a replacement
// never feeds a later pattern.
func RenderTemplate(template string, profile *profilemodel.SanitizedMapping, subs []model.Substitution) string {

	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		path := placeholderPattern.FindStringSubmatch(placeholder)[1]
		return profile.Lookup(path)
	})

	if len(subs) == 0 {
		return rendered
	}

	oldnew := make([]string, 0, len(subs)*2)
	for _, sub := range subs {
		oldnew = append(oldnew, sub.Pattern, sub.Replacement)
	}
	return strings.NewReplacer(oldnew...).Replace(rendered)
}

// ExpandEmail decomposes a flat email field holding an address into a
// nested {email, username, domain, rootdomain} mapping so templates can
// reference parts of the address. Profiles without a usable email field
// are returned untouched.
func ExpandEmail(profile *profilemodel.SanitizedMapping) *profilemodel.SanitizedMapping {

	value, ok := profile.Get("email")
	if !ok || value.IsMapping() {
		return profile
	}
	address := value.String()
	if !strings.Contains(address, "@") {
		return profile
	}

	username, domain, _ := strings.Cut(address, "@")

	rootdomain := domain
	if labels := strings.Split(domain, "."); len(labels) >= 3 {
		rootdomain = strings.Join(labels[len(labels)-2:], ".")
	}

	nested := profilemodel.NewSanitizedMapping()
	nested.Set("email", profilemodel.NewStringValue(address))
	nested.Set("username", profilemodel.NewStringValue(username))
	nested.Set("domain", profilemodel.NewStringValue(domain))
	nested.Set("rootdomain", profilemodel.NewStringValue(rootdomain))

	expanded := profile.Clone()
	expanded.Set("email", profilemodel.NewMappingValue(nested))
	return expanded
}
