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

import "strings"

// SanitizedValue is a tagged variant holding either a plain string or a
// nested mapping. Every value in a sanitized profile resolves to one of the
// two; there is no third case.
type SanitizedValue struct {
	str     string
	mapping *SanitizedMapping
}

// NewStringValue wraps a plain string as a SanitizedValue.
func NewStringValue(s string) SanitizedValue {
	return SanitizedValue{str: s}
}

// NewMappingValue wraps a nested mapping as a SanitizedValue.
func NewMappingValue(m *SanitizedMapping) SanitizedValue {
	return SanitizedValue{mapping: m}
}

// IsMapping reports whether the value holds a nested mapping.
func (v SanitizedValue) IsMapping() bool {
	return v.mapping != nil
}

// String returns the string form of the value. Mappings render as empty,
// matching the logic-less template semantics for composite fields.
func (v SanitizedValue) String() string {
	if v.mapping != nil {
		return ""
	}
	return v.str
}

// Mapping returns the nested mapping, or nil for string values.
func (v SanitizedValue) Mapping() *SanitizedMapping {
	return v.mapping
}

// SanitizedMapping is a flat field name to value mapping that preserves
// insertion order.
type SanitizedMapping struct {
	keys   []string
	values map[string]SanitizedValue
}

// NewSanitizedMapping creates an empty sanitized mapping.
func NewSanitizedMapping() *SanitizedMapping {
	return &SanitizedMapping{
		values: make(map[string]SanitizedValue),
	}
}

// Set stores a value under the given field name, appending the name to the
// iteration order on first insert.
func (m *SanitizedMapping) Set(name string, value SanitizedValue) {
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Get returns the value stored under the given field name.
func (m *SanitizedMapping) Get(name string) (SanitizedValue, bool) {
	value, ok := m.values[name]
	return value, ok
}

// Keys returns the field names in insertion order.
func (m *SanitizedMapping) Keys() []string {
	return m.keys
}

// Len returns the number of fields in the mapping.
func (m *SanitizedMapping) Len() int {
	return len(m.keys)
}

// Clone returns a shallow copy of the mapping. Nested mappings are shared;
// callers only ever add top-level fields to a clone.
func (m *SanitizedMapping) Clone() *SanitizedMapping {
	clone := NewSanitizedMapping()
	for _, key := range m.keys {
		clone.Set(key, m.values[key])
	}
	return clone
}

// Lookup resolves a possibly dotted field path against the mapping, e.g.
// "email.domain". A missing segment or a string hit before the final segment
// resolves to the empty string.
func (m *SanitizedMapping) Lookup(path string) string {
	segments := strings.Split(path, ".")
	current := m
	for i, segment := range segments {
		value, ok := current.Get(segment)
		if !ok {
			return ""
		}
		if i == len(segments)-1 {
			return value.String()
		}
		if !value.IsMapping() {
			return ""
		}
		current = value.Mapping()
	}
	return ""
}
