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

package authn

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/data-dedup-service/internal/system/cache"
	"github.com/wso2/data-dedup-service/internal/system/config"
	errors2 "github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

const defaultAudience = "iam-dds"

var (
	tokenCache = cache.NewCache[map[string]interface{}](5 * time.Minute)
)

// ValidateAuthenticationAndReturnClaims verifies a bearer token for the organization and returns
// its claims. Without a configured signing key no token is accepted.
func ValidateAuthenticationAndReturnClaims(token, orgHandle string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	if strings.Count(token, ".") != 2 {
		logger.Debug("Expecting a JWT token but received an opaque token.")
		return nil, unauthorizedError()
	}

	authServer := config.GetDDSRuntime().Config.AuthServer
	if authServer.SigningKey == "" {
		logger.Error("No token signing key is configured. Rejecting the request.")
		return nil, unauthorizedError()
	}

	cacheKey := orgHandle + ":" + token
	claims, found := tokenCache.Get(cacheKey)
	if !found {
		var err error
		claims, err = VerifyJWTClaims(token, authServer)
		if err != nil {
			return nil, unauthorizedError()
		}
	}

	if !validateClaims(orgHandle, claims, authServer) {
		tokenCache.Delete(cacheKey)
		return nil, unauthorizedError()
	}
	if !found {
		tokenCache.Set(cacheKey, claims)
	}
	return claims, nil
}

// VerifyJWTClaims verifies an HMAC signed JWT against the configured signing key.
func VerifyJWTClaims(tokenString string, authServer config.AuthServerConfig) (map[string]interface{}, error) {

	logger := log.GetLogger()
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	}
	if authServer.Issuer != "" {
		options = append(options, jwt.WithIssuer(authServer.Issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(authServer.SigningKey), nil
	}, options...)
	if err != nil {
		errMsg := "JWT token verification failed."
		logger.Debug(errMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.PARSING_ERROR.WithDescription(errMsg), err)
	}
	return claims, nil
}

// ParseJWTClaims parses claims from a JWT without verifying the signature. Only use it on tokens
// that already passed ValidateAuthenticationAndReturnClaims.
func ParseJWTClaims(tokenString string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		errMsg := "Error occurred when parsing claims from JWT token."
		logger.Debug(errMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PARSING_ERROR.Code,
			Message:     errors2.PARSING_ERROR.Message,
			Description: errMsg,
		}, err)
		return nil, serverError
	}
	return claims, nil
}

// GetUserIDFromRequest returns the subject of the bearer token, or an empty string.
func GetUserIDFromRequest(r *http.Request) string {

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return ""
	}
	claims, err := ParseJWTClaims(token)
	if err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// validateClaims ensures the token is unexpired and carries the expected audience and org_handle.
func validateClaims(orgHandle string, claims map[string]interface{}, authServer config.AuthServerConfig) bool {

	logger := log.GetLogger()
	orgHandleInClaim, ok := claims["org_handle"].(string)
	if !ok || orgHandleInClaim != orgHandle {
		logger.Debug("Token does not have the expected org_handle claim.")
		return false
	}

	expRaw, ok := claims["exp"]
	if !ok {
		logger.Debug("Token does not have an expiration time.")
		return false
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		logger.Debug("Token does not have a valid expiration time.", log.Any("exp", expRaw))
		return false
	}
	expUnix := int64(expFloat)
	if expUnix < time.Now().Unix() {
		logger.Debug("Token has expired.", log.String("exp", time.Unix(expUnix, 0).String()))
		return false
	}

	expectedAudience := authServer.Audience
	if expectedAudience == "" {
		expectedAudience = defaultAudience
	}
	var audList []string
	switch aud := claims["aud"].(type) {
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok {
				audList = append(audList, s)
			}
		}
	case []string:
		audList = aud
	case string:
		audList = append(audList, aud)
	}

	for _, aud := range audList {
		if aud == expectedAudience {
			return true
		}
	}
	logger.Debug(fmt.Sprintf("Token audience does not contain %s.", expectedAudience))
	return false
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
}
