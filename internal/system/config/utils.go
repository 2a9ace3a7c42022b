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

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment file under ddsHome, expands environment references and
// validates the auth_server and dedup sections.
func LoadConfig(ddsHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(ddsHome, filePath))
	if err != nil {
		return nil, err
	}
	return ParseConfig(file)
}

// ParseConfig parses a deployment document.
func ParseConfig(content []byte) (*Config, error) {

	expanded := os.ExpandEnv(string(content))

	cfg := Config{Dedup: DefaultDedupConfig()}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.AuthServer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth_server configuration: %w", err)
	}
	if err := cfg.Dedup.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dedup configuration: %w", err)
	}
	return &cfg, nil
}

// OverrideDDSRuntime replaces the runtime configuration. Used by tests.
func OverrideDDSRuntime(conf Config) {
	runtimeConfig = &DDSRuntime{
		Config: conf,
	}
}
