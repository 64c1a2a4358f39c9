package main

import (
	"fmt"

	"github.com/lawrence-dass/coop-ready/internal/gaps"
	"github.com/spf13/cobra"
)

var checkPolicyCmd = &cobra.Command{
	Use:   "check-policy",
	Short: "Validate a gap policy file against its schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			p   *gaps.Policy
			err error
		)
		if checkPolicyPath == "" {
			p, err = gaps.DefaultPolicy()
		} else {
			p, err = gaps.LoadPolicyFile(checkPolicyPath)
		}
		if err != nil {
			return err
		}

		source := checkPolicyPath
		if source == "" {
			source = "built-in policy"
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (version %d)\n", source, p.Version)
		return err
	},
}

var checkPolicyPath string

func init() {
	checkPolicyCmd.Flags().StringVarP(&checkPolicyPath, "policy", "p", "", "Path to gap policy JSON (defaults to the built-in policy)")
	rootCmd.AddCommand(checkPolicyCmd)
}
