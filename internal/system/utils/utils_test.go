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

package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	dctx "github.com/wso2/data-dedup-service/internal/system/context"
	customerrors "github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	m.Run()
}

func TestHandleDecodeError(t *testing.T) {
	type body struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"empty body", "", "Request body for batch is empty."},
		{"truncated", `{"name": "a"`, "Malformed JSON in batch request body."},
		{"syntax", `{"name": }`, "Malformed JSON in batch request body."},
		{"unknown field", `{"nick": "a"}`, `Unknown field "nick" in batch request body.`},
		{"wrong field type", `{"count": "ten"}`, "Invalid type for field 'count' in batch request body."},
		{"wrong top level", `[1, 2]`, "Request body for batch must be a JSON object."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target body
			err := DecodeJSON(strings.NewReader(tt.payload), &target, "batch")
			require.Error(t, err)
			assert.Equal(t, tt.want, HandleDecodeError(err, "batch"))
		})
	}
	assert.Equal(t, "", HandleDecodeError(nil, "batch"))
}

func TestHandleError(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r = r.WithContext(dctx.WithTraceID(r.Context(), "trace-7"))

	w := httptest.NewRecorder()
	HandleError(w, r, customerrors.NewClientError(customerrors.EMPTY_SELECTION, http.StatusBadRequest))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var message customerrors.ErrorMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&message))
	assert.Equal(t, customerrors.EMPTY_SELECTION.Code, message.Code)
	assert.Equal(t, "trace-7", message.TraceID)

	w = httptest.NewRecorder()
	HandleError(w, r, customerrors.NewServerError(customerrors.DELETE_RECORDS, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&message))
	assert.Equal(t, customerrors.DELETE_RECORDS.Code, message.Code)
	assert.Empty(t, message.Description, "server error details stay in the log")
}

func TestMountTenantDispatcher(t *testing.T) {
	mux := http.NewServeMux()
	var gotOrg, gotPath string
	MountTenantDispatcher(mux, constants.ApiBasePath, func(w http.ResponseWriter, r *http.Request) {
		gotOrg = ExtractOrgHandleFromPath(r)
		gotPath = r.URL.Path
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/t/acme.org/api/v1/duplicates/detect", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme.org", gotOrg)
	assert.Equal(t, "/duplicates/detect", gotPath)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/t/acme.org/other/v1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtractOrgHandleFromPath_Default(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, constants.DefaultOrgHandle, ExtractOrgHandleFromPath(r))

	r = r.WithContext(context.WithValue(r.Context(), constants.TenantContextKey, "wso2"))
	assert.Equal(t, "wso2", ExtractOrgHandleFromPath(r))
}
