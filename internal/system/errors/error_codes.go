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

package errors

const errorPrefix = "DDS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	DELETE_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while deleting records.",
	}

	RECORD_STORE_INIT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Unable to initialize the record store.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while parsing the token.",
	}

	UNKNOWN_ERROR = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Unexpected error occurred.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:        errorPrefix + "10001",
		Message:     "Invalid request.",
		Description: "The request is malformed or contains invalid values.",
	}

	NO_COLUMNS_SELECTED = ErrorMessage{
		Code:        errorPrefix + "10002",
		Message:     "No columns selected for comparison.",
		Description: "At least one column must be selected to detect duplicates.",
	}

	INVALID_MATCH_TYPE = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Invalid match type.",
	}

	SYSTEM_COLUMN_SELECTED = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "System columns cannot be compared.",
	}

	UNKNOWN_COLUMN_SELECTED = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "Selected column does not exist in the table.",
	}

	INVALID_THRESHOLD = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "Invalid match threshold.",
	}

	BATCH_TOO_LARGE = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Record batch is too large.",
	}

	EMPTY_SELECTION = ErrorMessage{
		Code:        errorPrefix + "10007",
		Message:     "No records selected for deletion.",
		Description: "Select at least one record before confirming deletion.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "10008",
		Message:     "Unauthorized.",
		Description: "Missing or invalid access token.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "10009",
		Message:     "Forbidden.",
		Description: "Insufficient permissions to perform this operation.",
	}
)
