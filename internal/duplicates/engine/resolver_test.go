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

package engine

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func TestResolve_DirectAttributeWins(t *testing.T) {
	record := model.Record{Name: "  Acme Corp ", Data: map[string]interface{}{"name": "Other"}}
	assert.Equal(t, "acme corp", Resolve(record, "name"))
}

func TestResolve_BlankDirectAttributeFallsBackToBag(t *testing.T) {
	record := model.Record{Email: "   ", Data: map[string]interface{}{"email": "Sales@Acme.COM"}}
	assert.Equal(t, "sales@acme.com", Resolve(record, "email"))
}

func TestResolve_BagValues(t *testing.T) {
	record := model.Record{Data: map[string]interface{}{
		"city":      "  Colombo ",
		"revenue":   1200.5,
		"employees": 42.0,
		"rank":      7,
		"active":    true,
		"tags":      []interface{}{"Gold", "VIP"},
		"number":    json.Number("15"),
		"missing":   nil,
		"address":   map[string]interface{}{"street": "Main"},
	}}

	tests := []struct {
		column   string
		expected string
	}{
		{"city", "colombo"},
		{"revenue", "1200.5"},
		{"employees", "42"},
		{"rank", "7"},
		{"active", "true"},
		{"tags", "gold,vip"},
		{"number", "15"},
		{"missing", ""},
		{"address", ""},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(record, tt.column))
		})
	}
}

func TestResolve_NilBag(t *testing.T) {
	assert.Equal(t, "", Resolve(model.Record{}, "city"))
}

func TestNormalizeRecords_UnwrapsNestedBagOnce(t *testing.T) {
	original := model.Record{
		Id: "r1",
		Data: map[string]interface{}{
			"data": map[string]interface{}{
				"city": "Paris",
				"tier": "gold",
				"data": map[string]interface{}{"deep": "value"},
			},
			"tier": "silver",
		},
	}

	normalized := NormalizeRecords([]model.Record{original})
	require.Len(t, normalized, 1)

	assert.Equal(t, "paris", Resolve(normalized[0], "city"))
	assert.Equal(t, "silver", Resolve(normalized[0], "tier"), "outer keys win over nested keys")
	assert.Equal(t, "", Resolve(normalized[0], "deep"), "only one level is unwrapped")

	_, stillNested := original.Data["data"]
	assert.True(t, stillNested, "input records must not be modified")
}

func TestNormalizeRecords_KeepsScalarDataColumn(t *testing.T) {
	normalized := NormalizeRecords([]model.Record{{Data: map[string]interface{}{"data": "plain"}}})
	assert.Equal(t, "plain", Resolve(normalized[0], "data"))
}

func TestCompositeKey(t *testing.T) {
	record := model.Record{Name: "Acme", Data: map[string]interface{}{"city": "Kandy"}}

	key, ok := CompositeKey(record, []string{"name", "email", "city"})
	assert.True(t, ok)
	assert.Equal(t, "acme||kandy", key)

	_, ok = CompositeKey(model.Record{}, []string{"name", "email"})
	assert.False(t, ok, "all-empty values cannot form a key")
}

func TestCompositeString(t *testing.T) {
	record := model.Record{Name: "Acme", Company: "Acme Holdings"}
	assert.Equal(t, "acme acme holdings", CompositeString(record, []string{"name", "company"}))
	assert.True(t, isBlank(CompositeString(model.Record{}, []string{"name", "company"})))
}
