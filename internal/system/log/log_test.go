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

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithFormat_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, InitWithFormat("info", "json", &out))
	t.Cleanup(func() { _ = Init("ERROR") })

	GetLogger().With(String("component", "engine")).Info("detected", Int("groups", 2), Error(errors.New("boom")))
	GetLogger().Debug("hidden")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "detected", entry["msg"])
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, float64(2), entry["groups"])
	assert.Equal(t, "boom", entry["error"])
}

func TestInitWithFormat_Rejects(t *testing.T) {
	assert.Error(t, InitWithFormat("LOUD", "text", &bytes.Buffer{}))
	assert.Error(t, InitWithFormat("INFO", "xml", &bytes.Buffer{}))
}

func TestAudit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, InitWithFormat("INFO", "text", &out))
	t.Cleanup(func() { _ = Init("ERROR") })

	GetLogger().Audit(AuditEvent{
		InitiatorID:   "alice",
		InitiatorType: InitiatorTypeUser,
		TargetID:      "customers",
		TargetType:    TargetTypeRecordTable,
		ActionID:      ActionDeleteDuplicates,
	})

	assert.Contains(t, out.String(), "AUDIT")
	assert.Contains(t, out.String(), ActionDeleteDuplicates)
	assert.Contains(t, out.String(), "recordedAt")
}
