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

package services

import (
	"net/http"
	"strings"

	"github.com/wso2/data-dedup-service/internal/duplicates/handler"
	"github.com/wso2/data-dedup-service/internal/system/constants"
)

type DuplicatesService struct {
	handler *handler.DuplicatesHandler
	mux     *http.ServeMux
}

func NewDuplicatesService(h *handler.DuplicatesHandler) *DuplicatesService {
	s := &DuplicatesService{
		handler: h,
		mux:     http.NewServeMux(),
	}

	const base = constants.DuplicatesApiPath
	s.mux.HandleFunc("POST "+base+"/detect", s.handler.DetectDuplicates)
	s.mux.HandleFunc("POST "+base+"/delete", s.handler.DeleteDuplicates)
	s.mux.HandleFunc("POST "+base+"/columns", s.handler.GetComparableColumns)

	return s
}

// Route handles tenant-aware routing for duplicate detection
func (s *DuplicatesService) Route(w http.ResponseWriter, r *http.Request) {
	// Normalize trailing slashes for consistent matching
	if trimmed := strings.TrimSuffix(r.URL.Path, "/"); trimmed != "" {
		r.URL.Path = trimmed
	}
	s.mux.ServeHTTP(w, r)
}
