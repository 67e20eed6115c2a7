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

package model

import (
	"strings"

	"github.com/wso2/identity-cohort-sync/internal/system/constants"
)

// RuleConfiguration holds the persisted cohort sync settings. Loaded once
// per invocation and passed as an immutable value into each component.
type RuleConfiguration struct {
	MainRule       string `json:"mainrule_fld"`
	Placeholder    string `json:"secondrule_fld"`
	ReplacePairs   string `json:"replace_arr"`
	Delimiter      string `json:"delim"`
	DontTouchUsers string `json:"donttouchusers"`
	EnableUnenrol  bool   `json:"enableunenrol"`
}

// Substitution is one literal find/replace pair applied to rendered names.
type Substitution struct {
	Pattern     string
	Replacement string
}

// DefaultRuleConfiguration returns the configuration used when nothing has
// been persisted yet.
func DefaultRuleConfiguration() RuleConfiguration {
	return RuleConfiguration{
		Placeholder: constants.DefaultPlaceholder,
		Delimiter:   constants.DefaultDelimiter,
	}
}

// DelimiterBytes resolves the configured delimiter name to its literal
// separator. Unknown names fall back to the default.
func (rc RuleConfiguration) DelimiterBytes() string {
	if sep, ok := constants.DelimiterBytes[rc.Delimiter]; ok {
		return sep
	}
	return constants.DelimiterBytes[constants.DefaultDelimiter]
}

// Substitutions parses the replace_arr setting into ordered substitution
// pairs. Items that do not split into exactly two parts are dropped.
func (rc RuleConfiguration) Substitutions() []Substitution {
	if rc.ReplacePairs == "" {
		return nil
	}

	var subs []Substitution
	for _, item := range strings.Split(rc.ReplacePairs, rc.DelimiterBytes()) {
		parts := strings.Split(item, "|")
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		subs = append(subs, Substitution{Pattern: parts[0], Replacement: parts[1]})
	}
	return subs
}

// IsDenylisted reports whether the username appears in the donttouchusers
// setting.
func (rc RuleConfiguration) IsDenylisted(username string) bool {
	if rc.DontTouchUsers == "" {
		return false
	}
	for _, name := range strings.Split(rc.DontTouchUsers, ",") {
		if strings.TrimSpace(name) == username {
			return true
		}
	}
	return false
}
