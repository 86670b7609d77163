package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readable-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI preferences",
	Long: `View and set persistent preferences for the score and stats
commands. Preferences are stored in ~/.readable/config.toml.

Available keys:
  output  - default output format: table or json
  color   - enable coloured table output: true or false`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one preference value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a preference value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store := preferences()
	if store == nil {
		return errors.New("preference store unavailable")
	}

	output := store.GetString(config.KeyOutput)
	if output == "" {
		output = "table (default)"
	}

	color := "true (default)"
	if enabled, ok := store.GetBool(config.KeyColor); ok {
		color = strconv.FormatBool(enabled)
	}

	cmd.Println("Current Preferences")
	cmd.Println("===================")
	cmd.Println()
	cmd.Printf("  output: %s\n", output)
	cmd.Printf("  color:  %s\n", color)
	cmd.Println()
	cmd.Printf("Config file: %s\n", store.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store := preferences()
	if store == nil {
		return errors.New("preference store unavailable")
	}

	value, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("key not set: %s", args[0])
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store := preferences()
	if store == nil {
		return errors.New("preference store unavailable")
	}

	key, raw := args[0], args[1]

	switch key {
	case config.KeyOutput:
		if raw != "table" && raw != "json" {
			return fmt.Errorf("invalid output format: %s (want table or json)", raw)
		}
		if err := store.Set(key, raw); err != nil {
			return fmt.Errorf("failed to save preference: %w", err)
		}

	case config.KeyColor:
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", raw)
		}
		if err := store.Set(key, enabled); err != nil {
			return fmt.Errorf("failed to save preference: %w", err)
		}

	default:
		return fmt.Errorf("unknown key: %s", key)
	}

	cmd.Printf("%s = %s\n", key, raw)
	return nil
}
