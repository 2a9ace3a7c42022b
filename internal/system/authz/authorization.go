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

package authz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wso2/data-dedup-service/internal/system/config"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

// ValidatePermission checks the granted scopes cover the scopes required for an operation. An
// operation without configured scopes requires a scope named after the operation itself.
func ValidatePermission(scopeStr string, operation string) bool {

	logger := log.GetLogger()
	if scopeStr == "" {
		logger.Debug(fmt.Sprintf("No scopes provided for operation: %s", operation))
		return false
	}

	expectedScopes, ok := config.GetDDSRuntime().Config.AuthServer.RequiredScopes[operation]
	if !ok || len(expectedScopes) == 0 {
		expectedScopes = []string{operation}
	}

	grantedScopes := strings.Fields(scopeStr)
	for _, expected := range expectedScopes {
		if !slices.Contains(grantedScopes, expected) {
			logger.Debug("Missing scope for operation",
				log.String("operation", operation), log.String("scope", expected))
			return false
		}
	}
	return true
}
