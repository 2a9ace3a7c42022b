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

package security

import (
	"net/http"
	"strings"

	"github.com/wso2/data-dedup-service/internal/system/authn"
	"github.com/wso2/data-dedup-service/internal/system/authz"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	dctx "github.com/wso2/data-dedup-service/internal/system/context"
	"github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

// AuthnAndAuthz performs authentication and authorization for the given HTTP request and operation.
func AuthnAndAuthz(r *http.Request, operation string) error {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return errors.NewClientError(errors.UN_AUTHORIZED.WithDescription("Missing or invalid Authorization header"),
			http.StatusUnauthorized)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	orgHandle, _ := r.Context().Value(constants.TenantContextKey).(string)
	claims, err := authn.ValidateAuthenticationAndReturnClaims(token, orgHandle)
	if err != nil {
		log.GetLogger().Audit(log.AuditEvent{
			InitiatorType: log.InitiatorTypeUser,
			TargetID:      orgHandle,
			ActionID:      log.ActionAuthenticationFailure,
			TraceID:       dctx.GetTraceID(r.Context()),
			Data:          map[string]string{"operation": operation},
		})
		return errors.NewClientError(errors.UN_AUTHORIZED.WithDescription("Missing or invalid Authorization header"),
			http.StatusUnauthorized)
	}

	scope, ok := claims["scope"].(string)
	if !ok || !authz.ValidatePermission(scope, operation) {
		return errors.NewClientError(errors.FORBIDDEN.WithDescription("Do not have permission to perform this operation"),
			http.StatusForbidden)
	}
	return nil
}

// TraceMiddleware propagates the X-Trace-Id header, generating one when absent.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(constants.TraceIDHeader)
		if traceID == "" {
			traceID = dctx.GenerateTraceID()
		}
		w.Header().Set(constants.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(dctx.WithTraceID(r.Context(), traceID)))
	})
}
