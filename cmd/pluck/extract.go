// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pluck/internal/codec"
	"github.com/pdiddy/pluck/internal/profile"
	"github.com/pdiddy/pluck/pkg/pluck"
	"github.com/pdiddy/pluck/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [fields...]",
	Short: "Extract fields from records read from a file or stdin",
	Long: `Extract reads a YAML or JSON list of records and plucks the named fields.

One field gives a list of values. Several fields (or --multi) give one row per
record, or with --mode field-array / nested-array one list per field.
--joiner joins each list into a string; it cannot be used with rows.

Values can be rewritten with --format field=TEMPLATE, where TEMPLATE is a
printf format with one verb (e.g. --format 'address=Jl. %v'). Use * as the
field to format every field without its own template.`,
	Example: `  pluck extract address --non-empty -i people.yaml
  pluck extract address age --mode field-array --joiner ', ' -i people.json
  cat people.yaml | pluck extract --profile addresses -o yaml`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	p, err := profileFromFlags(cmd, args)
	if err != nil {
		return err
	}

	sel, cfg, err := profile.Resolve(p)
	if err != nil {
		return err
	}

	format, err := codec.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}

	records, err := readRecords(cmd)
	if err != nil {
		return err
	}
	log.Debug("records loaded", zap.Int("count", len(records)))

	res, err := pluck.Pluck(records, sel, cfg)
	if err != nil {
		return err
	}
	log.Debug("plucked",
		zap.Strings("fields", sel.Fields()),
		zap.Stringer("mode", cfg.Mode),
		zap.Stringer("kind", res.Kind()),
	)

	return codec.Encode(cmd.OutOrStdout(), res, format)
}

// profileFromFlags starts from the --profile entry, if any, and overrides it
// with positional fields and every flag the user set explicitly.
func profileFromFlags(cmd *cobra.Command, args []string) (types.Profile, error) {
	var p types.Profile
	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		stored, err := lookupProfile(name)
		if err != nil {
			return p, err
		}
		p = stored
	}

	if len(args) > 0 {
		p.Fields = args
	}
	flags := cmd.Flags()
	if flags.Changed("multi") {
		p.Multi, _ = flags.GetBool("multi")
	}
	if flags.Changed("mode") {
		p.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("joiner") {
		p.Joiner, _ = flags.GetString("joiner")
	}
	if flags.Changed("unique") {
		p.Unique, _ = flags.GetBool("unique")
	}
	if flags.Changed("non-empty") {
		p.NonEmpty, _ = flags.GetBool("non-empty")
	}
	if flags.Changed("format") {
		p.Formatters, _ = flags.GetStringArray("format")
	}

	if len(p.Fields) == 0 {
		return p, fmt.Errorf("at least one field is required: give field names or --profile")
	}
	return p, nil
}

// lookupProfile reads the named profile from the loaded config.
func lookupProfile(name string) (types.Profile, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return types.Profile{}, err
	}
	p, ok := profiles[strings.ToLower(name)]
	if !ok {
		return types.Profile{}, fmt.Errorf("profile %q not found in config", name)
	}
	return p, nil
}

func loadProfiles() (map[string]types.Profile, error) {
	var profiles map[string]types.Profile
	if err := viper.UnmarshalKey("profiles", &profiles); err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}
	return profiles, nil
}

func readRecords(cmd *cobra.Command) ([]map[string]any, error) {
	path, _ := cmd.Flags().GetString("input")

	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	records, err := codec.DecodeRecords(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputName(path), err)
	}
	return records, nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func init() {
	extractCmd.Flags().StringP("input", "i", "-", "records file (YAML or JSON); - reads stdin")
	extractCmd.Flags().String("profile", "", "named profile from the config file")
	extractCmd.Flags().Bool("multi", false, "treat a single field as a field list")
	extractCmd.Flags().String("mode", "", "multi-field shape: default, field-array, or nested-array")
	extractCmd.Flags().String("joiner", "", "join each value list into a string with this separator")
	extractCmd.Flags().Bool("unique", false, "drop repeated values within each list")
	extractCmd.Flags().Bool("non-empty", false, "drop missing and null values")
	extractCmd.Flags().StringArray("format", nil, "value template as field=TEMPLATE (repeatable)")

	rootCmd.AddCommand(extractCmd)
}
