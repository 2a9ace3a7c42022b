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

package config

import "sync"

// DDSRuntime holds the runtime configuration for the dedup server.
type DDSRuntime struct {
	DDSHome string `yaml:"dds_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *DDSRuntime
	once          sync.Once
)

// InitializeDDSRuntime initializes the DDSRuntime configuration.
func InitializeDDSRuntime(ddsHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &DDSRuntime{
			DDSHome: ddsHome,
			Config:  *config,
		}
	})

	return nil
}

// GetDDSRuntime returns the DDSRuntime configuration.
func GetDDSRuntime() *DDSRuntime {

	if runtimeConfig == nil {
		panic("DDSRuntime is not initialized")
	}
	return runtimeConfig
}
