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

// Package engine finds groups of records that likely describe the same real-world entity.
//
// Detection is a pure function of the record batch, the table columns and a
// MatchConfiguration. Records are normalized once on entry (NormalizeRecords), then either
// partitioned by an exact composite key (GroupExact) or greedily clustered by string
// similarity (GroupFuzzy). Rank orders the groups for review and attaches per-record scores,
// and a RetentionPolicy proposes the records to delete.
//
// The engine never reads or writes storage. Deleting the proposed records is the job of the
// calling workflow, after the user has confirmed the selection.
package engine
