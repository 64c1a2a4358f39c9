package main

import (
	"fmt"

	"github.com/lawrence-dass/coop-ready/internal/gaps"
	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/spf13/cobra"
)

var filterGapsCmd = &cobra.Command{
	Use:   "filter-gaps",
	Short: "Group processed keyword gaps by the resume section that can address them",
	Long: `Reads processed gaps (a bare array, an object with processedGaps, or a full score report)
and buckets them per section into terminology fixes, potential additions, opportunities and
gaps that cannot be fixed. Without --section every section is reported.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := loadGaps(filterGapsPath)
		if err != nil {
			return err
		}

		var out any
		if filterGapsSection == "" {
			out = struct {
				Sections []types.SectionGaps `json:"sections"`
				Summary  types.GapSummary    `json:"summary"`
			}{gaps.FilterAllSections(list), gaps.Summarize(list)}
		} else {
			st, ok := types.ParseSectionType(filterGapsSection)
			if !ok || st == types.SectionFormat {
				return fmt.Errorf("unknown section %q", filterGapsSection)
			}
			out = gaps.FilterGapsForSection(list, st)
		}

		return writeJSON(out, filterGapsOut, func(b []byte) error {
			_, err := cmd.OutOrStdout().Write(b)
			return err
		})
	},
}

var (
	filterGapsPath    string
	filterGapsSection string
	filterGapsOut     string
)

func init() {
	filterGapsCmd.Flags().StringVarP(&filterGapsPath, "gaps", "g", "", "Path to processed gaps JSON or a score report")
	filterGapsCmd.Flags().StringVarP(&filterGapsSection, "section", "s", "", "Only report this section (summary, skills, experience, education, projects)")
	filterGapsCmd.Flags().StringVarP(&filterGapsOut, "out", "o", "", "Write JSON to this file instead of stdout")

	if err := filterGapsCmd.MarkFlagRequired("gaps"); err != nil {
		panic(fmt.Sprintf("failed to mark gaps flag as required: %v", err))
	}

	rootCmd.AddCommand(filterGapsCmd)
}
