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
	"errors"
	"time"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultMongoDatabase   = "dedup"
	defaultMongoCollection = "records"
	mongoConnectTimeout    = 10 * time.Second
)

// MongoRecordStore deletes documents from a MongoDB collection keyed by record_id.
type MongoRecordStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRecordStore connects to MongoDB and verifies the connection.
func NewMongoRecordStore(ctx context.Context, cfg config.MongoDBConfig) (*MongoRecordStore, error) {

	if cfg.URI == "" {
		return nil, errors.New("mongodb uri is not configured")
	}
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	database := cfg.Database
	if database == "" {
		database = defaultMongoDatabase
	}
	collection := cfg.Collection
	if collection == "" {
		collection = defaultMongoCollection
	}
	return &MongoRecordStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *MongoRecordStore) DeleteRecords(ctx context.Context, orgHandle, tableID string,
	ids []string) (model.DeletionResult, error) {

	return deleteEach(ctx, ids, func(ctx context.Context, id string) (bool, error) {
		res, err := s.collection.DeleteOne(ctx, recordFilter(orgHandle, tableID, id))
		if err != nil {
			return false, err
		}
		return res.DeletedCount > 0, nil
	}), nil
}

func (s *MongoRecordStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoRecordStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func recordFilter(orgHandle, tableID, id string) bson.M {
	return bson.M{
		"record_id":  id,
		"org_handle": orgHandle,
		"table_id":   tableID,
	}
}
