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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/system/constants"
)

func TestDefaultDedupConfig_IsValid(t *testing.T) {
	cfg := DefaultDedupConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.8, cfg.MatchThreshold)
	assert.Equal(t, constants.RetentionKeepFirst, cfg.Retention.Exact)
	assert.Equal(t, constants.RetentionNone, cfg.Retention.Fuzzy)
	assert.True(t, cfg.SortExactByCreatedAt)
	assert.Contains(t, cfg.SystemColumns, "created_at")
}

func TestDedupConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *DedupConfig)
		wantErr bool
	}{
		{"defaults", func(c *DedupConfig) {}, false},
		{"threshold of one", func(c *DedupConfig) { c.MatchThreshold = 1.0 }, false},
		{"zero threshold", func(c *DedupConfig) { c.MatchThreshold = 0 }, true},
		{"threshold above one", func(c *DedupConfig) { c.MatchThreshold = 1.5 }, true},
		{"NaN threshold", func(c *DedupConfig) { c.MatchThreshold = math.NaN() }, true},
		{"negative batch size", func(c *DedupConfig) { c.MaxBatchSize = -1 }, true},
		{"batch size above limit", func(c *DedupConfig) { c.MaxBatchSize = constants.MaxBatchSizeLimit + 1 }, true},
		{"unknown exact retention", func(c *DedupConfig) { c.Retention.Exact = "keep_last" }, true},
		{"unknown fuzzy retention", func(c *DedupConfig) { c.Retention.Fuzzy = "" }, true},
		{"fuzzy keep first", func(c *DedupConfig) { c.Retention.Fuzzy = constants.RetentionKeepFirst }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDedupConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseConfig_AppliesDefaultsAndExpandsEnv(t *testing.T) {
	t.Setenv("DDS_TEST_DB_PASSWORD", "s3cret")
	t.Setenv("DDS_TEST_SIGNING_KEY", "k3y")

	doc := `
auth_server:
  signing_key: ${DDS_TEST_SIGNING_KEY}
addr:
  host: localhost
  port: 8900
datasource:
  hostname: db
  port: 5432
  password: ${DDS_TEST_DB_PASSWORD}
dedup:
  match_threshold: 0.9
`
	cfg, err := ParseConfig([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 8900, cfg.Addr.Port)
	assert.Equal(t, "s3cret", cfg.DataSource.Password)
	assert.Equal(t, "k3y", cfg.AuthServer.SigningKey)
	assert.Equal(t, 0.9, cfg.Dedup.MatchThreshold)
	assert.Equal(t, constants.DefaultMaxBatchSize, cfg.Dedup.MaxBatchSize)
	assert.Equal(t, constants.RetentionKeepFirst, cfg.Dedup.Retention.Exact)
	assert.Equal(t, constants.RetentionNone, cfg.Dedup.Retention.Fuzzy)
	assert.Equal(t, constants.PostgresRecordStore, cfg.RecordStore.Type)
	assert.Equal(t, "INFO", cfg.Log.LogLevel)
	assert.True(t, cfg.Dedup.SortExactByCreatedAt)
}

const signingKeyDoc = "auth_server:\n  signing_key: test-key\n"

func TestParseConfig_RequiresSigningKey(t *testing.T) {
	t.Setenv("DDS_UNSET_SIGNING_KEY", "")
	tests := []struct {
		name string
		doc  string
	}{
		{"missing section", "dedup:\n  match_threshold: 0.8\n"},
		{"unset env reference", "auth_server:\n  signing_key: ${DDS_UNSET_SIGNING_KEY}\n"},
		{"blank key", "auth_server:\n  signing_key: \"  \"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "signing_key")
		})
	}
}

func TestParseConfig_ExplicitFalseIsKept(t *testing.T) {
	cfg, err := ParseConfig([]byte(signingKeyDoc + "dedup:\n  sort_exact_by_created_at: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Dedup.SortExactByCreatedAt)
}

func TestParseConfig_RejectsInvalidDedupSection(t *testing.T) {
	_, err := ParseConfig([]byte(signingKeyDoc + "dedup:\n  match_threshold: 2.5\n"))
	assert.Error(t, err)
}

func TestLoadConfig_ReadsFileUnderHome(t *testing.T) {
	home := t.TempDir()
	confDir := filepath.Join(home, "repository", "conf")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "deployment.yaml"),
		[]byte(signingKeyDoc+"record_store:\n  type: mongodb\n"), 0o600))

	cfg, err := LoadConfig(home, constants.DeploymentConfigFile)
	require.NoError(t, err)
	assert.Equal(t, constants.MongoRecordStore, cfg.RecordStore.Type)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), constants.DeploymentConfigFile)
	assert.Error(t, err)
}
