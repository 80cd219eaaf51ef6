package random

import (
	"fmt"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

// Ensure Factory implements the interface.
var _ driven.RandomSourceFactory = (*Factory)(nil)

// Factory creates random sources by name.
type Factory struct{}

// NewFactory creates a new random source factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the source named by settings.
//
// A seed turns the default source into PCG so that seeded runs are
// reproducible. Seeding crypto is an error. Unseeded PCG and ChaCha8
// are seeded from the operating system.
func (f *Factory) Create(settings domain.RandomSettings) (driven.RandomSource, error) {
	name := settings.Source
	if name == "" {
		name = domain.RandomDefault
	}
	if !name.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRandomSource, name)
	}

	if settings.HasSeed && name == domain.RandomDefault {
		logger.Debug("Seed given for default source, using %s", domain.RandomPCG)
		name = domain.RandomPCG
	}
	if settings.HasSeed && !name.IsSeedable() {
		return nil, fmt.Errorf("%w: %s source cannot be seeded", domain.ErrInvalidInput, name)
	}

	seed := settings.Seed
	if !settings.HasSeed {
		seed = entropySeed()
	}

	switch name {
	case domain.RandomPCG:
		return NewPCG(seed), nil
	case domain.RandomChaCha8:
		return NewChaCha8(seed), nil
	case domain.RandomCrypto:
		return NewCrypto(), nil
	default:
		return Global{}, nil
	}
}

// Names returns the generator names this factory can build.
func (f *Factory) Names() []domain.RandomSourceName {
	names := make([]domain.RandomSourceName, len(domain.RandomSourceNames))
	copy(names, domain.RandomSourceNames)
	return names
}
