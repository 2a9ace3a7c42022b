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
	"errors"
	"fmt"
	"time"

	"github.com/wso2/data-dedup-service/internal/duplicates/store"
)

const readinessTimeout = 3 * time.Second

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService reports ready once the record store answers.
type HealthCheckService struct {
	recordStore func() store.RecordStore
}

// GetHealthCheckService returns a service checking the default record store.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{recordStore: store.GetRecordStore}
}

func (h HealthCheckService) CheckReadiness(ctx context.Context) error {

	recordStore := h.recordStore()
	if recordStore == nil {
		return errors.New("record store not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if err := recordStore.Ping(ctx); err != nil {
		return fmt.Errorf("record store connectivity check failed: %v", err)
	}
	return nil
}
