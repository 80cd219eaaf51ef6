package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

// ConfigDirEnv overrides the settings directory when --config-dir is unset.
const ConfigDirEnv = "ZALGO_CONFIG_DIR"

// SettingsFactory opens the settings service rooted at dir. An empty dir
// selects the default location.
type SettingsFactory func(dir string) (driving.SettingsService, error)

var (
	version = "dev"

	decorationService driving.DecorationService
	settingsService   driving.SettingsService
	settingsFactory   SettingsFactory

	verbose   bool
	quiet     bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "zalgo",
	Short: "Decorate text with combining marks",
	Long: `Zalgo stacks Unicode combining marks above, through and below every
character of its input, and strips them off again.

Input comes from arguments, a file or piped stdin. Output streams as it is
produced, so arbitrarily large inputs never sit in memory.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress warnings")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"settings directory (default $"+ConfigDirEnv+" or ~/.zalgo)")
}

// SetServices sets the services used by the commands.
func SetServices(decoration driving.DecorationService, settings driving.SettingsService) {
	decorationService = decoration
	settingsService = settings
}

// SetSettingsFactory defers opening settings until flags are parsed, so
// --config-dir can choose the directory.
func SetSettingsFactory(factory SettingsFactory) {
	settingsFactory = factory
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which commands use for
// cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	switch {
	case verbose:
		logger.SetVerbose(true)
	case quiet:
		logger.SetQuiet(true)
	}

	if settingsFactory == nil {
		return nil
	}
	dir := configDir
	if dir == "" {
		dir = os.Getenv(ConfigDirEnv)
	}
	settings, err := settingsFactory(dir)
	if err != nil {
		return err
	}
	settingsService = settings
	return nil
}
