package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/ykhdr/crack-hash/common/internal/kdl"
)

const DefaultConfigPath = "./config/config.kdl"

// InitializeConfig loads the KDL config at path over defaultCfg and sets up
// the global logger from it. An empty path falls back to DefaultConfigPath,
// and to defaultCfg alone when that file does not exist either.
func InitializeConfig[T any](path string, defaultCfg T) (*T, error) {
	cfg, err := load(path, defaultCfg)
	if err != nil {
		return nil, err
	}
	setupLogger(&cfg)
	return &cfg, nil
}

func load[T any](path string, defaultCfg T) (T, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); errors.Is(err, os.ErrNotExist) {
			return defaultCfg, nil
		}
		path = DefaultConfigPath
	}
	cfg, err := kdl.Unmarshal[T](path, defaultCfg)
	if err != nil {
		var nilT T
		return nilT, errors.Wrapf(err, "unmarshal kdl %s", path)
	}
	return cfg, nil
}
