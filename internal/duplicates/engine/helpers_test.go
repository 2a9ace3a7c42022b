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
	"time"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
)

func named(id, name string) model.Record {
	return model.Record{Id: id, Name: name}
}

func groupIDs(groups []model.DuplicateGroup) [][]string {
	result := make([][]string, 0, len(groups))
	for _, group := range groups {
		ids := make([]string, 0, len(group.Records))
		for _, record := range group.Records {
			ids = append(ids, record.Id)
		}
		result = append(result, ids)
	}
	return result
}

func at(t time.Time) *time.Time {
	return &t
}
