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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/duplicates/model"
)

func confidence(v int) *int {
	return &v
}

func TestRank_FuzzySortsByAscendingConfidenceStably(t *testing.T) {
	groups := []model.DuplicateGroup{
		{Records: []model.Record{named("a", "x"), named("b", "x")}, Confidence: confidence(95), Columns: []string{"name"}},
		{Records: []model.Record{named("c", "x"), named("d", "x")}, Confidence: confidence(81), Columns: []string{"name"}},
		{Records: []model.Record{named("e", "x"), named("f", "x")}, Confidence: confidence(95), Columns: []string{"name"}},
		{Records: []model.Record{named("g", "x"), named("h", "x")}, Confidence: confidence(88), Columns: []string{"name"}},
	}

	ranked := Rank(groups, model.MatchFuzzy)

	assert.Equal(t, [][]string{{"c", "d"}, {"g", "h"}, {"a", "b"}, {"e", "f"}}, groupIDs(ranked))
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}, {"g", "h"}}, groupIDs(groups),
		"the input slice keeps its order")
}

func TestRank_ExactKeepsOrderAndScores100(t *testing.T) {
	groups := []model.DuplicateGroup{
		{Records: []model.Record{named("a", "beta"), named("b", "beta")}, Columns: []string{"name"}},
		{Records: []model.Record{named("c", "acme"), named("d", "acme"), named("e", "acme")}, Columns: []string{"name"}},
	}

	ranked := Rank(groups, model.MatchExact)

	assert.Equal(t, groupIDs(groups), groupIDs(ranked))
	assert.Equal(t, []int{100, 100}, ranked[0].Scores)
	assert.Equal(t, []int{100, 100, 100}, ranked[1].Scores)
}

func TestRank_FuzzyScoresAreRelativeToFirstMember(t *testing.T) {
	records := []model.Record{named("1", "acme corp"), named("2", "acme  corp"), named("3", "acme co")}
	groups := GroupFuzzy(records, []string{"name"}, 0.75)

	ranked := Rank(groups, model.MatchFuzzy)

	require.Len(t, ranked, 1)
	assert.Equal(t, []int{100, 90, 78}, ranked[0].Scores)
	assert.Equal(t, 78, ranked[0].EffectiveConfidence())
}

func TestRecordScore(t *testing.T) {
	group := model.DuplicateGroup{
		Records: []model.Record{named("1", "Acme Inc"), named("2", "Acme Inc.")},
		Columns: []string{"name"},
	}

	assert.Equal(t, 100, RecordScore(group, group.Records[0], model.MatchFuzzy))
	assert.Equal(t, 89, RecordScore(group, group.Records[1], model.MatchFuzzy))
	assert.Equal(t, 100, RecordScore(group, group.Records[1], model.MatchExact))
	assert.Equal(t, 100, RecordScore(model.DuplicateGroup{}, named("x", "y"), model.MatchFuzzy))
}
