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

// DuplicateGroup is a set of at least two records believed to describe the same entity.
type DuplicateGroup struct {
	Records []Record `json:"records"`

	// Confidence is set for fuzzy groups only: the similarity (0-100) of the weakest match
	// that joined the cluster. Exact groups are implicitly 100.
	Confidence *int `json:"confidence,omitempty"`

	// Scores holds, per member, the match score relative to the first member.
	Scores []int `json:"scores,omitempty"`

	// Columns are the compared columns the group was built from.
	Columns []string `json:"columns"`
}

// Size returns the number of members.
func (g DuplicateGroup) Size() int {
	return len(g.Records)
}

// EffectiveConfidence returns the group confidence, treating exact groups as 100.
func (g DuplicateGroup) EffectiveConfidence() int {
	if g.Confidence == nil {
		return 100
	}
	return *g.Confidence
}

// DetectionStats provides metrics about a detection run.
type DetectionStats struct {
	TotalRecords     int   `json:"total_records"`
	CandidateRecords int   `json:"candidate_records"`
	GroupCount       int   `json:"group_count"`
	DuplicateRecords int   `json:"duplicate_records"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// DetectionResult is what a detection preview returns to the caller.
type DetectionResult struct {
	MatchType        MatchType        `json:"match_type"`
	Groups           []DuplicateGroup `json:"groups"`
	DefaultSelection []string         `json:"default_selection"`
	Stats            DetectionStats   `json:"stats"`
}
