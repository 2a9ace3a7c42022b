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

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wso2/data-dedup-service/internal/duplicates/engine"
	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/duplicates/store"
	"github.com/wso2/data-dedup-service/internal/system/config"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	dctx "github.com/wso2/data-dedup-service/internal/system/context"
	errors2 "github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

// DuplicatesServiceInterface defines the service interface.
type DuplicatesServiceInterface interface {
	Preview(ctx context.Context, orgHandle string, request model.PreviewRequest) (*model.DetectionResult, error)
	DeleteSelected(ctx context.Context, orgHandle, tableID string, ids []string) (*model.DeletionResult, error)
	ComparableColumns(columns []model.Column) []model.Column
}

// DuplicatesService runs detection previews and forwards confirmed deletions to the record store.
type DuplicatesService struct {
	detector     *engine.Detector
	retention    engine.RetentionPolicy
	maxBatchSize int
	recordStore  store.RecordStore
}

// NewDuplicatesService creates a service from the dedup configuration and a record store.
func NewDuplicatesService(cfg config.DedupConfig, recordStore store.RecordStore) *DuplicatesService {

	maxBatchSize := cfg.MaxBatchSize
	if maxBatchSize <= 0 {
		maxBatchSize = constants.DefaultMaxBatchSize
	}
	return &DuplicatesService{
		detector: engine.NewDetector(cfg),
		retention: engine.RetentionPolicy{
			Exact: cfg.Retention.Exact,
			Fuzzy: cfg.Retention.Fuzzy,
		},
		maxBatchSize: maxBatchSize,
		recordStore:  recordStore,
	}
}

// GetDuplicatesService returns a service bound to the runtime configuration and record store.
func GetDuplicatesService() DuplicatesServiceInterface {
	return NewDuplicatesService(config.GetDDSRuntime().Config.Dedup, store.GetRecordStore())
}

// Preview detects duplicate groups in the batch and proposes the default selection. Nothing is
// deleted.
func (s *DuplicatesService) Preview(ctx context.Context, orgHandle string,
	request model.PreviewRequest) (*model.DetectionResult, error) {

	start := time.Now()
	logger := log.GetLogger()
	if len(request.Records) > s.maxBatchSize {
		return nil, errors2.NewClientError(errors2.BATCH_TOO_LARGE.WithDescription(
			fmt.Sprintf("A batch may hold at most %d records, got %d.", s.maxBatchSize, len(request.Records))),
			http.StatusRequestEntityTooLarge)
	}

	detector := s.detector
	if request.Threshold != nil {
		detector = detector.WithThreshold(*request.Threshold)
	}
	matchConfig := request.Config.ToConfiguration()
	groups, stats, err := detector.DetectWithStats(request.Records, request.Columns, matchConfig)
	if err != nil {
		logger.Debug("Duplicate detection rejected the configuration", log.Error(err))
		return nil, err
	}

	selection := s.retention.Select(groups, matchConfig.MatchType())
	stats.ProcessingTimeMs = time.Since(start).Milliseconds()

	logger.Info("Duplicate detection preview completed",
		log.String("orgHandle", orgHandle),
		log.String("tableId", request.TableId),
		log.String("matchType", string(matchConfig.MatchType())),
		log.Int("records", stats.TotalRecords),
		log.Int("groups", stats.GroupCount),
		log.Any("processingTimeMs", stats.ProcessingTimeMs))
	logger.Audit(log.AuditEvent{
		InitiatorID:   initiator(ctx),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      request.TableId,
		TargetType:    log.TargetTypeRecordTable,
		ActionID:      log.ActionDetectDuplicates,
		TraceID:       dctx.GetTraceID(ctx),
		Data: map[string]interface{}{
			"org_handle":  orgHandle,
			"match_type":  matchConfig.MatchType(),
			"columns":     matchConfig.SelectedColumns(),
			"group_count": stats.GroupCount,
		},
	})

	return &model.DetectionResult{
		MatchType:        matchConfig.MatchType(),
		Groups:           groups,
		DefaultSelection: selection.IDs(),
		Stats:            stats,
	}, nil
}

// DeleteSelected deletes the confirmed selection. Failures of individual records are reported in
// the result; records deleted before a failure stay deleted.
func (s *DuplicatesService) DeleteSelected(ctx context.Context, orgHandle, tableID string,
	ids []string) (*model.DeletionResult, error) {

	logger := log.GetLogger()
	if strings.TrimSpace(tableID) == "" {
		return nil, errors2.NewClientError(errors2.BAD_REQUEST.WithDescription("table_id is required."),
			http.StatusBadRequest)
	}
	selection := model.NewSelection()
	for _, id := range ids {
		selection.Add(strings.TrimSpace(id))
	}
	if selection.Len() == 0 {
		return nil, errors2.NewClientError(errors2.EMPTY_SELECTION, http.StatusBadRequest)
	}
	if s.recordStore == nil {
		errorMsg := "No record store is configured for deletions."
		logger.Error(errorMsg)
		return nil, errors2.NewServerError(errors2.RECORD_STORE_INIT.WithDescription(errorMsg), nil)
	}

	result, err := s.recordStore.DeleteRecords(ctx, orgHandle, tableID, selection.IDs())
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete records of table: %s for organization: %s", tableID, orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.DELETE_RECORDS.WithDescription(errorMsg), err)
	}
	if len(result.Errors) > 0 {
		logger.Warn("Some selected records could not be deleted",
			log.String("orgHandle", orgHandle),
			log.String("tableId", tableID),
			log.Int("deleted", result.DeletedCount),
			log.Int("failed", len(result.Errors)))
	}
	logger.Audit(log.AuditEvent{
		InitiatorID:   initiator(ctx),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      tableID,
		TargetType:    log.TargetTypeRecordTable,
		ActionID:      log.ActionDeleteDuplicates,
		TraceID:       dctx.GetTraceID(ctx),
		Data: map[string]interface{}{
			"org_handle":    orgHandle,
			"requested":     selection.Len(),
			"deleted_count": result.DeletedCount,
			"failed":        len(result.Errors),
		},
	})
	return &result, nil
}

// ComparableColumns lists the columns a user may select for comparison.
func (s *DuplicatesService) ComparableColumns(columns []model.Column) []model.Column {
	return s.detector.ComparableColumns(columns)
}

func initiator(ctx context.Context) string {
	if userID := dctx.GetUserID(ctx); userID != "" {
		return userID
	}
	return log.InitiatorTypeSystem
}
