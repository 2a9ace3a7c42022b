/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

import "github.com/wso2/data-dedup-service/internal/system/constants"

// MatchType selects how records are compared.
type MatchType string

const (
	MatchExact MatchType = constants.MatchTypeExact
	MatchFuzzy MatchType = constants.MatchTypeFuzzy
)

// IsValid reports whether the match type is one the engine understands.
func (m MatchType) IsValid() bool {
	return m == MatchExact || m == MatchFuzzy
}

// MatchConfiguration is the immutable input of a detection run.
type MatchConfiguration struct {
	selectedColumns []string
	matchType       MatchType
}

// NewMatchConfiguration copies the selected columns so later changes by the caller do not
// leak into a running detection.
func NewMatchConfiguration(selectedColumns []string, matchType MatchType) MatchConfiguration {
	return MatchConfiguration{
		selectedColumns: append([]string(nil), selectedColumns...),
		matchType:       matchType,
	}
}

// SelectedColumns returns a copy of the compared column names, in selection order.
func (c MatchConfiguration) SelectedColumns() []string {
	return append([]string(nil), c.selectedColumns...)
}

func (c MatchConfiguration) MatchType() MatchType {
	return c.matchType
}

// MatchConfigurationRequest is the wire form of a MatchConfiguration.
type MatchConfigurationRequest struct {
	SelectedColumns []string  `json:"selected_columns"`
	MatchType       MatchType `json:"match_type"`
}

// ToConfiguration converts the request into an immutable configuration.
func (r MatchConfigurationRequest) ToConfiguration() MatchConfiguration {
	return NewMatchConfiguration(r.SelectedColumns, r.MatchType)
}
