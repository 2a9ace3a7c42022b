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
	"errors"
	"net/http"
	"strings"

	"github.com/wso2/data-dedup-service/internal/system/constants"
	dctx "github.com/wso2/data-dedup-service/internal/system/context"
	customerrors "github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := dctx.GetTraceID(r.Context())

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		message := clientError.ErrorMessage
		message.TraceID = traceID
		WriteJSONResponse(w, clientError.StatusCode, message)
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error(), log.String("traceId", traceID))
	var serverError *customerrors.ServerError
	message := customerrors.UNKNOWN_ERROR
	if ok := errors.As(err, &serverError); ok {
		message.Code = serverError.Code
		message.Message = serverError.Message
	}
	message.TraceID = traceID
	WriteJSONResponse(w, http.StatusInternalServerError, message)
}

// WriteJSONResponse encodes data as the JSON response body.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// ExtractOrgHandleFromPath returns the organization the tenant dispatcher resolved for the request.
func ExtractOrgHandleFromPath(r *http.Request) string {
	orgHandle, ok := r.Context().Value(constants.TenantContextKey).(string)
	if !ok || orgHandle == "" {
		return constants.DefaultOrgHandle
	}
	return orgHandle
}

// RewriteToDefaultTenant redirects `/api/v1/...` to `/t/carbon.super/api/v1/...`
func RewriteToDefaultTenant(apiBasePath string, mux *http.ServeMux, defaultTenant string) {
	mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		newPath := "/t/" + defaultTenant + r.URL.Path
		http.Redirect(w, r, newPath, http.StatusTemporaryRedirect)
	})
}

// MountTenantDispatcher routes `/t/{org}/{apiBasePath}/...` to handlerFunc with the organization
// stored in the request context and the prefix stripped from the path.
func MountTenantDispatcher(mux *http.ServeMux, apiBasePath string, handlerFunc http.HandlerFunc) {
	mux.HandleFunc("/t/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		// Split: /t/{tenant}/api/v1/...
		parts := strings.SplitN(strings.TrimPrefix(path, "/t/"), "/", 2)
		if len(parts) != 2 || parts[0] == "" {
			http.Error(w, "Invalid tenant path format", http.StatusBadRequest)
			return
		}

		orgHandle := parts[0]
		remainingPath := "/" + parts[1]
		if !strings.HasPrefix(remainingPath, apiBasePath) {
			http.Error(w, "Path must start with "+apiBasePath, http.StatusNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), constants.TenantContextKey, orgHandle)
		r = r.WithContext(ctx)
		r.URL.Path = strings.TrimPrefix(remainingPath, apiBasePath)

		handlerFunc(w, r)
	})
}
