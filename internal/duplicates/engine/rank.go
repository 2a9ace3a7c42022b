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

package engine

import (
	"sort"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
)

// Rank orders groups for review and attaches per-record scores. Fuzzy groups are sorted by
// ascending confidence so the least certain surface first; ties keep their order. Exact
// groups keep first-seen key order. The input slice is not reordered.
func Rank(groups []model.DuplicateGroup, matchType model.MatchType) []model.DuplicateGroup {

	ranked := make([]model.DuplicateGroup, len(groups))
	copy(ranked, groups)

	if matchType == model.MatchFuzzy {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].EffectiveConfidence() < ranked[j].EffectiveConfidence()
		})
	}

	for i := range ranked {
		scores := make([]int, len(ranked[i].Records))
		for k, record := range ranked[i].Records {
			scores[k] = RecordScore(ranked[i], record, matchType)
		}
		ranked[i].Scores = scores
	}
	return ranked
}

// RecordScore returns the 0-100 match score of a record relative to the first member of the
// group. Exact groups always score 100. Fuzzy scores compare directly against the first
// member and may differ from the group confidence.
func RecordScore(group model.DuplicateGroup, record model.Record, matchType model.MatchType) int {

	if matchType != model.MatchFuzzy || len(group.Records) == 0 {
		return 100
	}
	first := CompositeString(group.Records[0], group.Columns)
	return toScore(Similarity(first, CompositeString(record, group.Columns)))
}
