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

import "time"

// Column describes one attribute of a record table.
type Column struct {
	Id    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Label string `json:"label" bson:"label"`
	Type  string `json:"type" bson:"type"`
}

// Record is a row of a business data table. Name, Email, Company and Status are direct
// attributes; custom columns live in the Data attribute bag. TableId, OrgId and CreatedBy are
// system references carried with the row and are never compared.
type Record struct {
	Id        string                 `json:"id" bson:"record_id"`
	TableId   string                 `json:"table_id,omitempty" bson:"table_id,omitempty"`
	OrgId     string                 `json:"org_id,omitempty" bson:"org_handle,omitempty"`
	Name      string                 `json:"name,omitempty" bson:"name,omitempty"`
	Email     string                 `json:"email,omitempty" bson:"email,omitempty"`
	Company   string                 `json:"company,omitempty" bson:"company,omitempty"`
	Status    string                 `json:"status,omitempty" bson:"status,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
	CreatedBy string                 `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt *time.Time             `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt *time.Time             `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// RecordError describes a record that could not be deleted.
type RecordError struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

// DeletionResult is the aggregate outcome of a best effort deletion.
type DeletionResult struct {
	DeletedCount int           `json:"deleted_count"`
	Errors       []RecordError `json:"errors"`
}
