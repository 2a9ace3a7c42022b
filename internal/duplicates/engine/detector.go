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
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/config"
	errors2 "github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

// Detector runs duplicate detection. It holds configuration only, so a single Detector may
// serve concurrent calls.
type Detector struct {
	threshold            float64
	sortExactByCreatedAt bool
	systemColumns        map[string]bool
}

// NewDetector creates a detector from the dedup section of the deployment configuration.
func NewDetector(cfg config.DedupConfig) *Detector {

	systemColumns := make(map[string]bool, len(cfg.SystemColumns))
	for _, column := range cfg.SystemColumns {
		systemColumns[strings.ToLower(column)] = true
	}
	return &Detector{
		threshold:            cfg.MatchThreshold,
		sortExactByCreatedAt: cfg.SortExactByCreatedAt,
		systemColumns:        systemColumns,
	}
}

// NewDefaultDetector creates a detector with the default threshold and system columns.
func NewDefaultDetector() *Detector {
	return NewDetector(config.DefaultDedupConfig())
}

// WithThreshold returns a copy of the detector using a different fuzzy match threshold.
func (d *Detector) WithThreshold(threshold float64) *Detector {
	clone := *d
	clone.threshold = threshold
	return &clone
}

func (d *Detector) Threshold() float64 {
	return d.threshold
}

// Validate checks a match configuration before any record is processed.
func (d *Detector) Validate(matchConfig model.MatchConfiguration) error {

	selected := matchConfig.SelectedColumns()
	if len(selected) == 0 {
		return errors2.NewClientError(errors2.NO_COLUMNS_SELECTED, http.StatusBadRequest)
	}
	for _, column := range selected {
		if strings.TrimSpace(column) == "" {
			return errors2.NewClientError(errors2.BAD_REQUEST.WithDescription(
				"Selected column names cannot be empty."), http.StatusBadRequest)
		}
		if d.systemColumns[strings.ToLower(column)] {
			return errors2.NewClientError(errors2.SYSTEM_COLUMN_SELECTED.WithDescription(
				fmt.Sprintf("Column '%s' is a system column.", column)), http.StatusBadRequest)
		}
	}
	if !matchConfig.MatchType().IsValid() {
		return errors2.NewClientError(errors2.INVALID_MATCH_TYPE.WithDescription(
			fmt.Sprintf("Match type '%s' is not supported. Use 'exact' or 'fuzzy'.", matchConfig.MatchType())),
			http.StatusBadRequest)
	}
	if matchConfig.MatchType() == model.MatchFuzzy && !(d.threshold > 0 && d.threshold <= 1) {
		return errors2.NewClientError(errors2.INVALID_THRESHOLD.WithDescription(
			fmt.Sprintf("Threshold must be in (0, 1], got %.2f.", d.threshold)), http.StatusBadRequest)
	}
	return nil
}

// validateTableColumns rejects selected columns that the table definition does not have. An
// empty definition skips the check.
func validateTableColumns(selected []string, columns []model.Column) error {

	if len(columns) == 0 {
		return nil
	}
	known := make(map[string]bool, len(columns))
	for _, column := range columns {
		known[column.Name] = true
	}
	for _, name := range selected {
		if !known[name] {
			return errors2.NewClientError(errors2.UNKNOWN_COLUMN_SELECTED.WithDescription(
				fmt.Sprintf("Column '%s' is not defined for the table.", name)), http.StatusBadRequest)
		}
	}
	return nil
}

// Detect finds duplicate groups in the batch. The columns describe the table; when given, every
// selected column must be one of them. The configuration names the compared columns and the
// match type. Validation failures are returned before any grouping happens. An empty result is
// not an error.
func (d *Detector) Detect(records []model.Record, columns []model.Column,
	matchConfig model.MatchConfiguration) ([]model.DuplicateGroup, error) {

	groups, _, err := d.DetectWithStats(records, columns, matchConfig)
	return groups, err
}

// DetectWithStats is Detect that also reports batch statistics.
func (d *Detector) DetectWithStats(records []model.Record, columns []model.Column,
	matchConfig model.MatchConfiguration) ([]model.DuplicateGroup, model.DetectionStats, error) {

	stats := model.DetectionStats{TotalRecords: len(records)}
	if err := d.Validate(matchConfig); err != nil {
		return nil, stats, err
	}
	selected := matchConfig.SelectedColumns()
	if err := validateTableColumns(selected, columns); err != nil {
		return nil, stats, err
	}

	logger := log.GetLogger()
	normalized := NormalizeRecords(records)
	stats.CandidateRecords = countCandidates(normalized, selected)

	var groups []model.DuplicateGroup
	switch matchConfig.MatchType() {
	case model.MatchExact:
		groups = GroupExact(normalized, selected)
		if d.sortExactByCreatedAt {
			orderByCreation(groups)
		}
	case model.MatchFuzzy:
		groups = GroupFuzzy(normalized, selected, d.threshold)
	}
	groups = Rank(groups, matchConfig.MatchType())

	stats.GroupCount = len(groups)
	for _, group := range groups {
		stats.DuplicateRecords += group.Size()
	}
	logger.Debug("Duplicate detection completed",
		log.String("match_type", string(matchConfig.MatchType())),
		log.Int("columns", len(selected)),
		log.Int("table_columns", len(columns)),
		log.Int("records", stats.TotalRecords),
		log.Int("candidates", stats.CandidateRecords),
		log.Int("groups", stats.GroupCount))
	return groups, stats, nil
}

// ComparableColumns drops the system columns from a table definition.
func (d *Detector) ComparableColumns(columns []model.Column) []model.Column {

	comparableColumns := make([]model.Column, 0, len(columns))
	for _, column := range columns {
		if d.systemColumns[strings.ToLower(column.Name)] {
			continue
		}
		comparableColumns = append(comparableColumns, column)
	}
	return comparableColumns
}

// Detect runs detection with the default detector.
func Detect(records []model.Record, columns []model.Column,
	matchConfig model.MatchConfiguration) ([]model.DuplicateGroup, error) {

	return NewDefaultDetector().Detect(records, columns, matchConfig)
}

// IsValidationError reports whether err rejected the configuration, as opposed to a run that
// simply found no duplicates.
func IsValidationError(err error) bool {
	return errors2.IsClientError(err, "")
}

func countCandidates(records []model.Record, columns []string) int {
	count := 0
	for _, record := range records {
		if _, ok := CompositeKey(record, columns); ok {
			count++
		}
	}
	return count
}
