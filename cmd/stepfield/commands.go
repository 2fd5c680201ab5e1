package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stepfield/stepfield/internal/logging"
	"github.com/stepfield/stepfield/internal/presets"
	"github.com/stepfield/stepfield/internal/tui"
)

// Ad-hoc field flags: define one extra field on the command line without
// touching the preset file.
var (
	fieldLabel     string
	fieldUnit      string
	fieldMin       float64
	fieldMax       float64
	fieldIncrement float64
	fieldValue     float64
)

func init() {
	rootCmd.Flags().StringVar(&fieldLabel, "label", "", "Add an ad-hoc field with this label")
	rootCmd.Flags().StringVar(&fieldUnit, "unit", "", "Unit suffix for the ad-hoc field")
	rootCmd.Flags().Float64Var(&fieldMin, "min", 0, "Minimum for the ad-hoc field")
	rootCmd.Flags().Float64Var(&fieldMax, "max", 100, "Maximum for the ad-hoc field")
	rootCmd.Flags().Float64Var(&fieldIncrement, "increment", 1, "Step size for the ad-hoc field")
	rootCmd.Flags().Float64Var(&fieldValue, "value", 0, "Starting value for the ad-hoc field")

	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsInitCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	reg, err := presets.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	if fieldLabel != "" {
		field := &presets.Field{
			Label:     fieldLabel,
			Unit:      fieldUnit,
			Increment: fieldIncrement,
			Minimum:   fieldMin,
			Maximum:   fieldMax,
			Value:     fieldValue,
		}
		name := "adhoc"
		if err := field.Validate(name); err != nil {
			return err
		}
		reg.Fields[name] = field
	}

	logging.Info("starting playground", zap.Int("fields", len(reg.Fields)))
	return tui.Run(reg)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage field presets",
	Long: `Manage the preset file that defines the playground's fields.

Each preset names a field with its label, unit, step size, range, and
starting value. The file lives in the user config directory and is
created with built-in defaults on first use.`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := presets.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load presets: %w", err)
		}

		path, err := presets.GetConfigPath()
		if err == nil {
			fmt.Printf("Presets from %s:\n\n", path)
		}

		for _, name := range reg.Names() {
			f := reg.Get(name)
			fmt.Printf("%s\n", name)
			fmt.Printf("  Label:     %s\n", f.Label)
			if f.Unit != "" {
				fmt.Printf("  Unit:      %q\n", f.Unit)
			}
			fmt.Printf("  Range:     [%v, %v]\n", f.Minimum, f.Maximum)
			fmt.Printf("  Increment: %v\n", f.Increment)
			fmt.Printf("  Value:     %v\n", f.Value)
			fmt.Println()
		}
		return nil
	},
}

var presetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default preset file",
	Long: `Write the built-in default presets to the user config directory.

Overwrites any existing preset file. Edit the resulting YAML to add or
change fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := presets.WriteDefaults(); err != nil {
			return fmt.Errorf("failed to write presets: %w", err)
		}
		path, err := presets.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote default presets to %s\n", path)
		return nil
	},
}
