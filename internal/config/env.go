package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. Unset variables keep their zero
// value, so they never override another source during the merge.
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{Environment: env.ToMap(os.Environ())}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		var agg env.AggregateError
		if errors.As(err, &agg) && len(agg.Errors) > 0 {
			return fmt.Errorf("read env configs: %w", errors.Join(agg.Errors...))
		}
		return fmt.Errorf("read env configs: %w", err)
	}
	return nil
}
