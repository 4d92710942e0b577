package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial config per source. Sources are merged
// in the order they were added; a later non-zero field replaces an earlier
// one.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config source %d: %w", i, err)
		}
	}
	merged.setDefaults()

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// add records the result of reading one source.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON reads the file named by the most recent source that set
// JSONFilePath. Without one it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	for i := len(b.configs) - 1; i >= 0; i-- {
		if path := b.configs[i].JSONFilePath; path != "" {
			return b.add(parseJSON(path))
		}
	}
	return b
}
