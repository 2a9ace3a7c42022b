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

package managers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	m.Run()
}

func TestRegisterServices_Routing(t *testing.T) {
	mux := http.NewServeMux()
	require.NoError(t, NewServiceManager(mux).RegisterServices(constants.ApiBasePath))

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"detect requires a token", http.MethodPost, "/t/carbon.super/api/v1/duplicates/detect", http.StatusUnauthorized},
		{"delete requires a token", http.MethodPost, "/t/wso2/api/v1/duplicates/delete/", http.StatusUnauthorized},
		{"detect is POST only", http.MethodGet, "/t/carbon.super/api/v1/duplicates/detect", http.StatusMethodNotAllowed},
		{"unknown resource", http.MethodPost, "/t/carbon.super/api/v1/profiles", http.StatusNotFound},
		{"default tenant redirect", http.MethodPost, "/api/v1/duplicates/detect", http.StatusTemporaryRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
