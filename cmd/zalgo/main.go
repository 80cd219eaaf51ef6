// Command zalgo decorates text with combining marks and strips them again.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/zalgo-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driven/measure"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driven/random"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/zalgo-cli/internal/core/services"
	"github.com/custodia-labs/zalgo-cli/internal/normalisers/plaintext"
	"github.com/custodia-labs/zalgo-cli/internal/postprocessors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	stages := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(stages)

	decoration := services.NewDecorationService(
		random.NewFactory(),
		plaintext.New(),
		stages,
		measure.New(),
	)

	cli.SetVersion(version)
	cli.SetServices(decoration, nil)
	cli.SetSettingsFactory(openSettings)

	return cli.ExecuteContext(ctx)
}

// openSettings opens the TOML settings file in dir, or in ~/.zalgo when
// dir is empty.
func openSettings(dir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return services.NewSettingsService(store), nil
}
