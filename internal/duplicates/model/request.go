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

// PreviewRequest carries a materialized batch of records and the comparison to run on it.
type PreviewRequest struct {
	TableId   string                    `json:"table_id,omitempty"`
	Records   []Record                  `json:"records"`
	Columns   []Column                  `json:"columns,omitempty"`
	Config    MatchConfigurationRequest `json:"config"`
	Threshold *float64                  `json:"threshold,omitempty"`
}

// DeleteRequest confirms the deletion of the selected records of a table.
type DeleteRequest struct {
	TableId   string   `json:"table_id"`
	RecordIds []string `json:"record_ids"`
}

// ColumnsRequest asks which columns of a table definition can be compared.
type ColumnsRequest struct {
	Columns []Column `json:"columns"`
}
