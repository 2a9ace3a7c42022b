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

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/database/client"
	"github.com/wso2/data-dedup-service/internal/system/database/scripts"
)

const postgresDialect = "postgres"

// PostgresRecordStore deletes rows from the records table.
type PostgresRecordStore struct {
	dbClient client.DBClientInterface
}

func NewPostgresRecordStore(dbClient client.DBClientInterface) *PostgresRecordStore {
	return &PostgresRecordStore{dbClient: dbClient}
}

func (s *PostgresRecordStore) DeleteRecords(ctx context.Context, orgHandle, tableID string,
	ids []string) (model.DeletionResult, error) {

	query := scripts.DeleteRecordById[postgresDialect]
	return deleteEach(ctx, ids, func(ctx context.Context, id string) (bool, error) {
		affected, err := s.dbClient.ExecuteStatement(ctx, query, id, orgHandle, tableID)
		if err != nil {
			return false, err
		}
		return affected > 0, nil
	}), nil
}

func (s *PostgresRecordStore) Ping(ctx context.Context) error {
	_, err := s.dbClient.ExecuteQuery(scripts.HealthCheck[postgresDialect])
	if err != nil {
		return err
	}
	return s.dbClient.Ping(ctx)
}

func (s *PostgresRecordStore) Close(_ context.Context) error {
	return s.dbClient.Close()
}
