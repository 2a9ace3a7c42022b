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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
)

// batchFile is the on-disk form of a detection batch.
type batchFile struct {
	Records []model.Record `json:"records"`
	Columns []model.Column `json:"columns"`
}

func readBatch(path string) (*batchFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	var batch batchFile
	if err := json.Unmarshal(content, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch %s: %w", path, err)
	}
	return &batch, nil
}
