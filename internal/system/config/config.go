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
	"strings"

	"github.com/wso2/data-dedup-service/internal/system/constants"
)

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type AuthServerConfig struct {
	Issuer         string              `yaml:"issuer"`
	Audience       string              `yaml:"audience"`
	SigningKey     string              `yaml:"signing_key"`
	RequiredScopes map[string][]string `yaml:"required_scopes"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type MongoDBConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type RecordStoreConfig struct {
	Type    string        `yaml:"type"`
	MongoDB MongoDBConfig `yaml:"mongodb"`
}

type RetentionConfig struct {
	Exact string `yaml:"exact"`
	Fuzzy string `yaml:"fuzzy"`
}

// DedupConfig holds the tunables of the duplicate detection engine.
type DedupConfig struct {
	// MatchThreshold is the minimum similarity (0.0-1.0) for two fuzzy composites to match.
	MatchThreshold float64 `yaml:"match_threshold"`

	// MaxBatchSize bounds the number of records a single detection run accepts.
	// The fuzzy path is quadratic in this number.
	MaxBatchSize int `yaml:"max_batch_size"`

	// SortExactByCreatedAt orders exact groups by creation time before "keep first" applies.
	SortExactByCreatedAt bool `yaml:"sort_exact_by_created_at"`

	Retention     RetentionConfig `yaml:"retention"`
	SystemColumns []string        `yaml:"system_columns"`
}

type Config struct {
	Addr        AddrConfig        `yaml:"addr"`
	Log         LogConfig         `yaml:"log"`
	Auth        AuthConfig        `yaml:"auth"`
	AuthServer  AuthServerConfig  `yaml:"auth_server"`
	DataSource  DataSourceConfig  `yaml:"datasource"`
	RecordStore RecordStoreConfig `yaml:"record_store"`
	Dedup       DedupConfig       `yaml:"dedup"`
}

// DefaultDedupConfig returns the detection defaults: 80% similarity, keep-first retention for
// exact groups and no default selection for fuzzy groups.
func DefaultDedupConfig() DedupConfig {
	return DedupConfig{
		MatchThreshold:       constants.DefaultMatchThreshold,
		MaxBatchSize:         constants.DefaultMaxBatchSize,
		SortExactByCreatedAt: true,
		Retention: RetentionConfig{
			Exact: constants.RetentionKeepFirst,
			Fuzzy: constants.RetentionNone,
		},
		SystemColumns: append([]string(nil), constants.DefaultSystemColumns...),
	}
}

// Validate checks that incoming tokens can be verified.
func (c AuthServerConfig) Validate() error {
	if strings.TrimSpace(c.SigningKey) == "" {
		return fmt.Errorf("auth_server.signing_key is required to verify bearer tokens")
	}
	return nil
}

// Validate checks if the dedup configuration has valid values
func (c DedupConfig) Validate() error {
	if !(c.MatchThreshold > 0.0 && c.MatchThreshold <= 1.0) {
		return fmt.Errorf("match_threshold must be in (0.0, 1.0] (got %.2f)", c.MatchThreshold)
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be positive (got %d)", c.MaxBatchSize)
	}
	if c.MaxBatchSize > constants.MaxBatchSizeLimit {
		return fmt.Errorf("max_batch_size too large (got %d, max %d)", c.MaxBatchSize, constants.MaxBatchSizeLimit)
	}
	if !constants.AllowedRetentionPolicies[c.Retention.Exact] {
		return fmt.Errorf("retention.exact must be one of keep_first, none (got %q)", c.Retention.Exact)
	}
	if !constants.AllowedRetentionPolicies[c.Retention.Fuzzy] {
		return fmt.Errorf("retention.fuzzy must be one of keep_first, none (got %q)", c.Retention.Fuzzy)
	}
	return nil
}

// applyDefaults fills unset values with their defaults.
func (c *Config) applyDefaults() {

	defaults := DefaultDedupConfig()
	if c.Dedup.MatchThreshold == 0 {
		c.Dedup.MatchThreshold = defaults.MatchThreshold
	}
	if c.Dedup.MaxBatchSize == 0 {
		c.Dedup.MaxBatchSize = defaults.MaxBatchSize
	}
	if c.Dedup.Retention.Exact == "" {
		c.Dedup.Retention.Exact = defaults.Retention.Exact
	}
	if c.Dedup.Retention.Fuzzy == "" {
		c.Dedup.Retention.Fuzzy = defaults.Retention.Fuzzy
	}
	if len(c.Dedup.SystemColumns) == 0 {
		c.Dedup.SystemColumns = defaults.SystemColumns
	}
	if c.RecordStore.Type == "" {
		c.RecordStore.Type = constants.PostgresRecordStore
	}
	if c.Log.LogLevel == "" {
		c.Log.LogLevel = "INFO"
	}
}
