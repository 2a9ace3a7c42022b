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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/system/config"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	dctx "github.com/wso2/data-dedup-service/internal/system/context"
	"github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	m.Run()
}

const serverKey = "server-key"

func tokenSignedWith(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func requestFor(org, token string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/duplicates/detect", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r.WithContext(context.WithValue(r.Context(), constants.TenantContextKey, org))
}

func TestAuthnAndAuthz_ValidatesClaims(t *testing.T) {
	config.OverrideDDSRuntime(config.Config{AuthServer: config.AuthServerConfig{SigningKey: serverKey}})

	valid := tokenSignedWith(t, serverKey, jwt.MapClaims{
		"org_handle": "wso2",
		"aud":        []string{"iam-dds", "other"},
		"scope":      "openid duplicates:view",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, AuthnAndAuthz(requestFor("wso2", valid), constants.OperationViewDuplicates))

	err := AuthnAndAuthz(requestFor("wso2", valid), constants.OperationDeleteDuplicates)
	assert.True(t, errors.IsClientError(err, errors.FORBIDDEN.Code))

	expired := tokenSignedWith(t, serverKey, jwt.MapClaims{
		"org_handle": "wso2",
		"aud":        "iam-dds",
		"scope":      "duplicates:view",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})
	err = AuthnAndAuthz(requestFor("wso2", expired), constants.OperationViewDuplicates)
	assert.True(t, errors.IsClientError(err, errors.UN_AUTHORIZED.Code))

	wrongAudience := tokenSignedWith(t, serverKey, jwt.MapClaims{
		"org_handle": "wso2",
		"aud":        "iam-cds",
		"scope":      "duplicates:view",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	err = AuthnAndAuthz(requestFor("wso2", wrongAudience), constants.OperationViewDuplicates)
	assert.True(t, errors.IsClientError(err, errors.UN_AUTHORIZED.Code))
}

func TestAuthnAndAuthz_RejectsAllTokensWithoutSigningKey(t *testing.T) {
	config.OverrideDDSRuntime(config.Config{})

	token := tokenSignedWith(t, "any-key", jwt.MapClaims{
		"org_handle": "wso2",
		"aud":        "iam-dds",
		"scope":      "duplicates:view",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	err := AuthnAndAuthz(requestFor("wso2", token), constants.OperationViewDuplicates)
	assert.True(t, errors.IsClientError(err, errors.UN_AUTHORIZED.Code))
}

func TestAuthnAndAuthz_VerifiesSignature(t *testing.T) {
	config.OverrideDDSRuntime(config.Config{AuthServer: config.AuthServerConfig{
		SigningKey: serverKey,
		Issuer:     "https://idp.example.com",
	}})
	claims := jwt.MapClaims{
		"iss":        "https://idp.example.com",
		"org_handle": "wso2",
		"aud":        "iam-dds",
		"scope":      "duplicates:view",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}

	forged := tokenSignedWith(t, "attacker-key", claims)
	err := AuthnAndAuthz(requestFor("wso2", forged), constants.OperationViewDuplicates)
	assert.True(t, errors.IsClientError(err, errors.UN_AUTHORIZED.Code))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(serverKey))
	require.NoError(t, err)
	assert.NoError(t, AuthnAndAuthz(requestFor("wso2", signed), constants.OperationViewDuplicates))
}

func TestAuthnAndAuthz_MissingHeader(t *testing.T) {
	err := AuthnAndAuthz(requestFor("wso2", ""), constants.OperationViewDuplicates)

	var clientError *errors.ClientError
	require.ErrorAs(t, err, &clientError)
	assert.Equal(t, http.StatusUnauthorized, clientError.StatusCode)
}

func TestTraceMiddleware(t *testing.T) {
	var seen string
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = dctx.GetTraceID(r.Context())
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(constants.TraceIDHeader, "given-trace")
	handler.ServeHTTP(w, r)
	assert.Equal(t, "given-trace", seen)
	assert.Equal(t, "given-trace", w.Header().Get(constants.TraceIDHeader))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "given-trace", seen)
	assert.Equal(t, seen, w.Header().Get(constants.TraceIDHeader))
}
