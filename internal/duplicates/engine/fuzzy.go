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
	"math"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
)

type fuzzyCandidate struct {
	record    model.Record
	composite string
}

// GroupFuzzy clusters normalized records greedily in a single forward pass. Each record not
// yet clustered becomes an anchor and collects every later, unclustered record whose
// composite string is at least threshold-similar to its own. A cluster is emitted only when
// the anchor found a match; its confidence is the rounded similarity of the weakest match.
// Records with an empty composite string are skipped.
func GroupFuzzy(records []model.Record, columns []string, threshold float64) []model.DuplicateGroup {

	candidates := make([]fuzzyCandidate, 0, len(records))
	for _, record := range records {
		composite := CompositeString(record, columns)
		if isBlank(composite) {
			continue
		}
		candidates = append(candidates, fuzzyCandidate{record: record, composite: composite})
	}

	processed := make([]bool, len(candidates))
	groups := make([]model.DuplicateGroup, 0)
	for i, anchor := range candidates {
		if processed[i] {
			continue
		}

		weakest := 1.0
		var matches []int
		for j := i + 1; j < len(candidates); j++ {
			if processed[j] {
				continue
			}
			score := Similarity(anchor.composite, candidates[j].composite)
			if score < threshold {
				continue
			}
			matches = append(matches, j)
			if score < weakest {
				weakest = score
			}
		}
		if len(matches) == 0 {
			continue
		}

		members := make([]model.Record, 0, len(matches)+1)
		members = append(members, anchor.record)
		processed[i] = true
		for _, j := range matches {
			members = append(members, candidates[j].record)
			processed[j] = true
		}

		confidence := toScore(weakest)
		groups = append(groups, model.DuplicateGroup{
			Records:    members,
			Confidence: &confidence,
			Columns:    append([]string(nil), columns...),
		})
	}
	return groups
}

// toScore converts a similarity in [0, 1] to a 0-100 score.
func toScore(similarity float64) int {
	return int(math.Round(100 * similarity))
}
