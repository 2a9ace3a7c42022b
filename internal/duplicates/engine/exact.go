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

// GroupExact partitions normalized records by their composite key. One group is emitted per
// key shared by at least two records, in the order keys were first seen; members keep their
// input order. Records whose selected values are all empty are skipped.
func GroupExact(records []model.Record, columns []string) []model.DuplicateGroup {

	buckets := make(map[string][]model.Record)
	var keyOrder []string
	for _, record := range records {
		key, ok := CompositeKey(record, columns)
		if !ok {
			continue
		}
		if _, seen := buckets[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		buckets[key] = append(buckets[key], record)
	}

	groups := make([]model.DuplicateGroup, 0)
	for _, key := range keyOrder {
		members := buckets[key]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, model.DuplicateGroup{
			Records: members,
			Columns: append([]string(nil), columns...),
		})
	}
	return groups
}

// orderByCreation stable-sorts each group by creation time, oldest first, so that "keep
// first" retains the oldest record. Groups with a member lacking a timestamp keep their
// input order.
func orderByCreation(groups []model.DuplicateGroup) {

	for _, group := range groups {
		if !allTimestamped(group.Records) {
			continue
		}
		sort.SliceStable(group.Records, func(i, j int) bool {
			return group.Records[i].CreatedAt.Before(*group.Records[j].CreatedAt)
		})
	}
}

func allTimestamped(records []model.Record) bool {
	for _, record := range records {
		if record.CreatedAt == nil || record.CreatedAt.IsZero() {
			return false
		}
	}
	return true
}
