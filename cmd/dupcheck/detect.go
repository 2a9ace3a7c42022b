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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wso2/data-dedup-service/internal/duplicates/engine"
	"github.com/wso2/data-dedup-service/internal/duplicates/model"
	"github.com/wso2/data-dedup-service/internal/system/config"
	"github.com/wso2/data-dedup-service/internal/system/constants"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect duplicate groups in a batch",
	Long: `Detect duplicate groups in a JSON batch of the form {"records": [...], "columns": [...]}.

Examples:
  # Exact match on name and email
  dupcheck detect --file batch.json --columns name,email

  # Fuzzy match on company with a stricter threshold
  dupcheck detect --file batch.json --columns company --match fuzzy --threshold 0.9

  # Machine readable output
  dupcheck detect --file batch.json --columns name --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		columns, _ := cmd.Flags().GetStringSlice("columns")
		match, _ := cmd.Flags().GetString("match")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		asJSON, _ := cmd.Flags().GetBool("json")

		batch, err := readBatch(path)
		if err != nil {
			return err
		}

		dedup := config.DefaultDedupConfig()
		dedup.MatchThreshold = threshold
		detector := engine.NewDetector(dedup)
		matchConfig := model.NewMatchConfiguration(columns, model.MatchType(strings.ToLower(match)))

		groups, stats, err := detector.DetectWithStats(batch.Records, batch.Columns, matchConfig)
		if err != nil {
			return err
		}
		selection := engine.DefaultRetention(groups, matchConfig.MatchType())
		result := model.DetectionResult{
			MatchType:        matchConfig.MatchType(),
			Groups:           groups,
			DefaultSelection: selection.IDs(),
			Stats:            stats,
		}

		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		}
		printReport(cmd.OutOrStdout(), result, selection)
		return nil
	},
}

func init() {
	detectCmd.Flags().StringP("file", "f", "", "Path to the JSON batch")
	detectCmd.Flags().StringSliceP("columns", "c", nil, "Columns to compare (comma separated)")
	detectCmd.Flags().StringP("match", "m", constants.MatchTypeExact, "Match type: exact or fuzzy")
	detectCmd.Flags().Float64P("threshold", "t", constants.DefaultMatchThreshold, "Fuzzy match threshold (0.0-1.0]")
	detectCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = detectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(detectCmd)
}

func printReport(out io.Writer, result model.DetectionResult, selection *model.Selection) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	if len(result.Groups) == 0 {
		fmt.Fprintf(out, "%s No duplicates found in %d record(s)\n", green("✓"), result.Stats.TotalRecords)
		return
	}

	fmt.Fprintf(out, "%s Found %d duplicate group(s) covering %d of %d record(s)\n\n",
		yellow("⚠"), result.Stats.GroupCount, result.Stats.DuplicateRecords, result.Stats.TotalRecords)
	for i, group := range result.Groups {
		header := fmt.Sprintf("Group %d", i+1)
		if group.Confidence != nil {
			header = fmt.Sprintf("%s (confidence %d%%)", header, *group.Confidence)
		}
		fmt.Fprintf(out, "%s on %s\n", cyan(header), strings.Join(group.Columns, ", "))
		for j, record := range group.Records {
			marker := " "
			if selection.Contains(record.Id) {
				marker = red("✗")
			}
			fmt.Fprintf(out, "  %s %-12s score %3d  %s\n", marker, record.Id, group.Scores[j],
				engine.CompositeString(record, group.Columns))
		}
		fmt.Fprintln(out)
	}

	if selection.Len() == 0 {
		fmt.Fprintln(out, "No records are selected for deletion by default")
		return
	}
	fmt.Fprintf(out, "%s %d record(s) selected for deletion: %s\n", red("✗"), selection.Len(),
		strings.Join(selection.IDs(), ", "))
}
