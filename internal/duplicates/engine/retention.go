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
	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/constants"
)

// RetentionPolicy decides, per match type, which group members are proposed for deletion.
// "keep_first" proposes every member but the first; "none" proposes nothing.
type RetentionPolicy struct {
	Exact string
	Fuzzy string
}

// DefaultRetentionPolicy keeps the first member of exact groups and proposes nothing for
// fuzzy groups, which need a human to confirm each match.
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{
		Exact: constants.RetentionKeepFirst,
		Fuzzy: constants.RetentionNone,
	}
}

// DefaultRetention applies the default policy.
func DefaultRetention(groups []model.DuplicateGroup, matchType model.MatchType) *model.Selection {

	return DefaultRetentionPolicy().Select(groups, matchType)
}

// Select returns a fresh selection the caller may adjust before deleting.
func (p RetentionPolicy) Select(groups []model.DuplicateGroup, matchType model.MatchType) *model.Selection {

	selection := model.NewSelection()
	if p.policyFor(matchType) != constants.RetentionKeepFirst {
		return selection
	}
	for _, group := range groups {
		for i, record := range group.Records {
			if i == 0 {
				continue
			}
			selection.Add(record.Id)
		}
	}
	return selection
}

func (p RetentionPolicy) policyFor(matchType model.MatchType) string {
	if matchType == model.MatchFuzzy {
		return p.Fuzzy
	}
	return p.Exact
}
