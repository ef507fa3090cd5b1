// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the profiles defined in the config file",
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	profiles, err := loadProfiles()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(out, "No profiles configured.")
		return nil
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "%-20s  %-14s  %-8s  %s\n", "Profile", "Mode", "Joiner", "Fields")
	fmt.Fprintln(out, strings.Repeat("-", 70))
	for _, name := range names {
		p := profiles[name]
		mode := p.Mode
		if mode == "" {
			mode = "default"
		}
		fmt.Fprintf(out, "%-20s  %-14s  %-8q  %s\n", name, mode, p.Joiner, strings.Join(p.Fields, ", "))
	}
	return nil
}

func init() {
	profilesCmd.Flags().Bool("json", false, "output profiles as JSON")

	rootCmd.AddCommand(profilesCmd)
}
