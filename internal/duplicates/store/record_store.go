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

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/config"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	"github.com/wso2/data-dedup-service/internal/system/database/provider"
	errors2 "github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/log"
)

const notFoundMessage = "record not found"

// RecordStore removes records confirmed for deletion. Deletion is best effort: each id is
// attempted independently and failures are reported per id without rolling back earlier ones.
type RecordStore interface {
	DeleteRecords(ctx context.Context, orgHandle, tableID string, ids []string) (model.DeletionResult, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	recordStore RecordStore
	storeMu     sync.RWMutex
)

// InitRecordStore opens the record store selected by the deployment configuration and makes it
// the process wide default.
func InitRecordStore(ctx context.Context, cfg config.Config) (RecordStore, error) {

	logger := log.GetLogger()
	var (
		rs  RecordStore
		err error
	)
	switch cfg.RecordStore.Type {
	case constants.PostgresRecordStore, "":
		dbClient, dbErr := provider.NewDBProvider().GetDBClient()
		if dbErr != nil {
			errorMsg := "Failed to get db client for the postgres record store."
			logger.Debug(errorMsg, log.Error(dbErr))
			return nil, errors2.NewServerError(errors2.DB_CLIENT_INIT.WithDescription(errorMsg), dbErr)
		}
		rs = NewPostgresRecordStore(dbClient)
	case constants.MongoRecordStore:
		rs, err = NewMongoRecordStore(ctx, cfg.RecordStore.MongoDB)
		if err != nil {
			errorMsg := "Failed to connect the mongodb record store."
			logger.Debug(errorMsg, log.Error(err))
			return nil, errors2.NewServerError(errors2.RECORD_STORE_INIT.WithDescription(errorMsg), err)
		}
	default:
		errorMsg := fmt.Sprintf("Unsupported record store type: %s", cfg.RecordStore.Type)
		return nil, errors2.NewServerError(errors2.RECORD_STORE_INIT.WithDescription(errorMsg), nil)
	}

	SetRecordStore(rs)
	logger.Info("Record store initialized", log.String("type", cfg.RecordStore.Type))
	return rs, nil
}

// SetRecordStore replaces the default record store.
func SetRecordStore(rs RecordStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	recordStore = rs
}

// GetRecordStore returns the default record store, or nil if none was initialized.
func GetRecordStore() RecordStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return recordStore
}

// deleteEach applies deleteOne to every id, collecting failures. An id that matched no record
// is reported as an error entry.
func deleteEach(ctx context.Context, ids []string, deleteOne func(ctx context.Context, id string) (bool, error)) model.DeletionResult {

	logger := log.GetLogger()
	result := model.DeletionResult{Errors: []model.RecordError{}}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, model.RecordError{Id: id, Message: err.Error()})
			continue
		}
		deleted, err := deleteOne(ctx, id)
		if err != nil {
			logger.Debug("Failed to delete record", log.String("recordId", id), log.Error(err))
			result.Errors = append(result.Errors, model.RecordError{Id: id, Message: err.Error()})
			continue
		}
		if !deleted {
			result.Errors = append(result.Errors, model.RecordError{Id: id, Message: notFoundMessage})
			continue
		}
		result.DeletedCount++
	}
	return result
}
