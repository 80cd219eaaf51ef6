package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default settings",
	Long: `View and change the defaults used when no flag overrides them.

Keys:
  decoration.kinds      classes to decorate, e.g. within,below
  decoration.intensity  tiny, normal, large, random or exact:a,w,b
  random.source         default, pcg, chacha8 or crypto
  random.seed           seed for pcg and chacha8
  output.rate           output runes per second (0 = unthrottled)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a default",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key...]",
	Short: "Restore defaults",
	Long:  `Restore the named keys to their defaults, or every key when none is named.`,
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Decoration]")
	cmd.Printf("  Kinds: %s\n", strings.Join(settings.Decoration.Kind.Names(), ", "))
	cmd.Printf("  Intensity: %s\n", settings.Decoration.Intensity)
	cmd.Println()

	cmd.Println("[Random]")
	cmd.Printf("  Source: %s\n", settings.Random.Source.Description())
	if settings.Random.HasSeed {
		cmd.Printf("  Seed: %d\n", settings.Random.Seed)
	} else {
		cmd.Printf("  Seed: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Output]")
	if settings.Output.Rate > 0 {
		cmd.Printf("  Rate: %d runes/s\n", settings.Output.Rate)
	} else {
		cmd.Printf("  Rate: unthrottled\n")
	}
	cmd.Println()

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Stored in %s\n", path)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			cmd.Printf("Valid keys: %s\n", strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	keys := args
	if len(keys) == 0 {
		keys = settingsService.Keys()
	}
	for _, key := range keys {
		if err := settingsService.Reset(key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	cmd.Printf("Reset %s\n", strings.Join(keys, ", "))
	return nil
}
