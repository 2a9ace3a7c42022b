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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/constants"
)

const (
	keySeparator       = "|"
	compositeSeparator = " "
	listSeparator      = ","
)

// NormalizeRecords returns copies of the records with a canonical, flat attribute bag.
// A bag that carries a second bag under the "data" key is unwrapped one level; keys of the
// outer bag win over nested keys with the same name. Input records are not modified.
func NormalizeRecords(records []model.Record) []model.Record {

	normalized := make([]model.Record, len(records))
	for i, record := range records {
		record.Data = flattenData(record.Data)
		normalized[i] = record
	}
	return normalized
}

func flattenData(data map[string]interface{}) map[string]interface{} {

	flat := make(map[string]interface{}, len(data))
	nested, ok := data[constants.RecordDataKey].(map[string]interface{})
	if ok {
		for key, value := range nested {
			flat[key] = value
		}
	}
	for key, value := range data {
		if ok && key == constants.RecordDataKey {
			continue
		}
		flat[key] = value
	}
	return flat
}

// Resolve returns the normalized comparison string of a record for a column: the direct
// attribute when present and non-empty, otherwise the attribute bag entry. Values are
// stringified, trimmed and lowercased. Missing values resolve to "".
func Resolve(record model.Record, columnName string) string {

	if direct := directAttribute(record, columnName); strings.TrimSpace(direct) != "" {
		return normalizeValue(direct)
	}
	value, ok := record.Data[columnName]
	if !ok {
		return ""
	}
	return normalizeValue(stringify(value))
}

func directAttribute(record model.Record, columnName string) string {

	switch columnName {
	case constants.NameAttribute:
		return record.Name
	case constants.EmailAttribute:
		return record.Email
	case constants.CompanyAttribute:
		return record.Company
	case constants.StatusAttribute:
		return record.Status
	default:
		return ""
	}
}

func normalizeValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// stringify converts a bag value to text. Nested objects are treated as malformed and
// resolve to "".
func stringify(value interface{}) string {

	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case json.Number:
		return v.String()
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, listSeparator)
	case []string:
		return strings.Join(v, listSeparator)
	case map[string]interface{}:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// resolveAll resolves every selected column of a record, in selection order.
func resolveAll(record model.Record, columns []string) []string {

	values := make([]string, len(columns))
	for i, column := range columns {
		values[i] = Resolve(record, column)
	}
	return values
}

// CompositeKey joins the resolved values with a pipe. The boolean is false when every value
// is empty, in which case the record cannot match anything.
func CompositeKey(record model.Record, columns []string) (string, bool) {

	values := resolveAll(record, columns)
	for _, value := range values {
		if value != "" {
			return strings.Join(values, keySeparator), true
		}
	}
	return "", false
}

// CompositeString joins the resolved values with a space; it is the unit of fuzzy comparison.
func CompositeString(record model.Record, columns []string) string {

	return strings.Join(resolveAll(record, columns), compositeSeparator)
}

func isBlank(composite string) bool {
	return strings.TrimSpace(composite) == ""
}
