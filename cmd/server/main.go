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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wso2/data-dedup-service/internal/duplicates/store"
	"github.com/wso2/data-dedup-service/internal/system/config"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	"github.com/wso2/data-dedup-service/internal/system/log"
	"github.com/wso2/data-dedup-service/internal/system/managers"
	"github.com/wso2/data-dedup-service/internal/system/security"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ddsHome := getDDSHome()
	logger := log.GetLogger()

	envFiles, err := filepath.Glob(filepath.Join(ddsHome, "config", "*.env"))
	if err != nil || len(envFiles) == 0 {
		logger.Warn("No .env files found in config directory")
	} else if err := godotenv.Load(envFiles...); err != nil {
		logger.Warn("Failed to load .env files", log.Error(err))
	}

	// Load the configuration file
	ddsConfig, err := config.LoadConfig(ddsHome, constants.DeploymentConfigFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", log.Error(err))
	}

	// Initialize runtime configurations.
	if err := config.InitializeDDSRuntime(ddsHome, ddsConfig); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}

	if err := log.InitWithFormat(ddsConfig.Log.LogLevel, ddsConfig.Log.Format, os.Stdout); err != nil {
		logger.Fatal("Failed to initialize logger", log.Error(err))
	}
	logger = log.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recordStore, err := store.InitRecordStore(ctx, *ddsConfig)
	if err != nil {
		logger.Fatal("Failed to initialize record store", log.Error(err))
	}
	defer func() {
		if err := recordStore.Close(context.Background()); err != nil {
			logger.Warn("Failed to close record store", log.Error(err))
		}
	}()

	serverAddr := fmt.Sprintf("%s:%d", ddsConfig.Addr.Host, ddsConfig.Addr.Port)
	handler := security.TraceMiddleware(enableCORS(initMultiplexer(), ddsConfig.Auth.CORSAllowedOrigins))
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("address", serverAddr), log.Error(err))
	}

	server := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("WSO2 data dedup service started", log.String("address", serverAddr))
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve requests", log.Error(err))
	}
	logger.Info("WSO2 data dedup service stopped")
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}
	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && originAllowed(origin, allowedOrigins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+constants.TraceIDHeader)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func getDDSHome() string {

	projectHomeFlag := flag.String("ddsHome", "", "Path to data dedup service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	if home := os.Getenv("DDS_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		log.GetLogger().Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}
