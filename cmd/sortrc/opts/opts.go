package opts

import (
	"context"
	"os"

	"github.com/walteh/sortrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
}

// defaultConfigFiles are probed in order when --config is not given
var defaultConfigFiles = []string{".sortrc", ".sortrc.yaml", ".sortrc.hcl", "sortrc.yaml"}

// LoadConfig loads the run configuration. With no --config flag and no
// default file present, an empty config is returned for flags to fill.
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	if o.ConfigFile != "" {
		cfg, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	for _, name := range defaultConfigFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		cfg, err := config.Load(ctx, name)
		if err != nil {
			return nil, errors.Errorf("loading config %s: %w", name, err)
		}
		return cfg, nil
	}

	return &config.Config{}, nil
}
