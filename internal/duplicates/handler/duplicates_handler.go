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

package handler

import (
	"context"
	"net/http"

	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/duplicates/provider"
	"github.com/wso2/data-dedup-service/internal/system/authn"
	"github.com/wso2/data-dedup-service/internal/system/constants"
	dctx "github.com/wso2/data-dedup-service/internal/system/context"
	"github.com/wso2/data-dedup-service/internal/system/errors"
	"github.com/wso2/data-dedup-service/internal/system/security"
	"github.com/wso2/data-dedup-service/internal/system/utils"
)

// DuplicatesHandler handles duplicate detection previews and confirmed deletions.
type DuplicatesHandler struct {
	provider provider.DuplicatesProviderInterface
}

// NewDuplicatesHandler returns a new DuplicatesHandler instance.
func NewDuplicatesHandler() *DuplicatesHandler {
	return NewDuplicatesHandlerWithProvider(provider.NewDuplicatesProvider())
}

// NewDuplicatesHandlerWithProvider returns a handler resolving its service from the given provider.
func NewDuplicatesHandlerWithProvider(p provider.DuplicatesProviderInterface) *DuplicatesHandler {
	return &DuplicatesHandler{provider: p}
}

// DetectDuplicates handles POST /duplicates/detect
func (h *DuplicatesHandler) DetectDuplicates(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OperationViewDuplicates); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	var request model.PreviewRequest
	if err := utils.DecodeJSON(r.Body, &request, "duplicate detection"); err != nil {
		badRequest(w, r, utils.HandleDecodeError(err, "duplicate detection"))
		return
	}

	duplicatesService := h.provider.GetDuplicatesService()
	result, err := duplicatesService.Preview(requestContext(r), orgHandle, request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// DeleteDuplicates handles POST /duplicates/delete
func (h *DuplicatesHandler) DeleteDuplicates(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OperationDeleteDuplicates); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	var request model.DeleteRequest
	if err := utils.DecodeJSON(r.Body, &request, "duplicate deletion"); err != nil {
		badRequest(w, r, utils.HandleDecodeError(err, "duplicate deletion"))
		return
	}

	duplicatesService := h.provider.GetDuplicatesService()
	result, err := duplicatesService.DeleteSelected(requestContext(r), orgHandle, request.TableId, request.RecordIds)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	utils.WriteJSONResponse(w, status, result)
}

// GetComparableColumns handles POST /duplicates/columns
func (h *DuplicatesHandler) GetComparableColumns(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OperationViewDuplicates); err != nil {
		utils.HandleError(w, r, err)
		return
	}

	var request model.ColumnsRequest
	if err := utils.DecodeJSON(r.Body, &request, "columns"); err != nil {
		badRequest(w, r, utils.HandleDecodeError(err, "columns"))
		return
	}

	columns := h.provider.GetDuplicatesService().ComparableColumns(request.Columns)
	utils.WriteJSONResponse(w, http.StatusOK, model.ColumnsRequest{Columns: columns})
}

func requestContext(r *http.Request) context.Context {
	return dctx.WithUserID(r.Context(), authn.GetUserIDFromRequest(r))
}

func badRequest(w http.ResponseWriter, r *http.Request, description string) {
	utils.HandleError(w, r, errors.NewClientError(errors.BAD_REQUEST.WithDescription(description),
		http.StatusBadRequest))
}
