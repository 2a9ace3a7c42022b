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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wso2/data-dedup-service/internal/duplicates/engine"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns of a batch that can be compared",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		batch, err := readBatch(path)
		if err != nil {
			return err
		}
		for _, column := range engine.NewDefaultDetector().ComparableColumns(batch.Columns) {
			label := column.Label
			if label == "" {
				label = column.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-20s %s\n", column.Name, label, column.Type)
		}
		return nil
	},
}

func init() {
	columnsCmd.Flags().StringP("file", "f", "", "Path to the JSON batch")
	_ = columnsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(columnsCmd)
}
