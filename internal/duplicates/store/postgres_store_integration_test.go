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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/data-dedup-service/internal/system/database/client"
	"github.com/wso2/data-dedup-service/test/setup"
)

func TestPostgresRecordStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}
	ctx := context.Background()
	pg, err := setup.SetupTestPostgres(ctx, filepath.Join("..", "..", "..", "dbscripts", "postgres.sql"))
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { pg.Teardown(ctx) })

	_, err = pg.DB.ExecContext(ctx, `INSERT INTO records (record_id, org_handle, table_id, name) VALUES
		('r1', 'carbon.super', 'customers', 'Acme'),
		('r2', 'carbon.super', 'customers', 'Acme'),
		('r3', 'other.org',    'customers', 'Acme')`)
	require.NoError(t, err)

	t.Setenv("TEST_MODE", "true")
	rs := NewPostgresRecordStore(client.NewDBClient(pg.DB))
	require.NoError(t, rs.Ping(ctx))

	result, err := rs.DeleteRecords(ctx, "carbon.super", "customers", []string{"r2", "r3", "missing"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DeletedCount)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "r3", result.Errors[0].Id, "records of another organization are not touched")
	assert.Equal(t, "missing", result.Errors[1].Id)

	var remaining int
	require.NoError(t, pg.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&remaining))
	assert.Equal(t, 2, remaining)
}
