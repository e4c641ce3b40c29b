package commands

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/agiangrant/carousel"
)

// ConfigFileName is the file looked up when --config is not given.
const ConfigFileName = "carousel.toml"

// errNoConfig is returned by findConfig when no directory up to the root
// holds ConfigFileName.
var errNoConfig = errors.New("no " + ConfigFileName + " found")

// findConfig walks up from dir looking for ConfigFileName.
func findConfig(dir string) (string, error) {
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoConfig
		}
		dir = parent
	}
}

// resolveConfigPath returns the explicit path, or the nearest config file.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "get working directory")
	}
	return findConfig(wd)
}

// loadOptions loads the configured options. Without --config and without a
// config file nearby, fallback is returned.
func loadOptions(fallback carousel.Options) (carousel.Options, string, error) {
	path, err := resolveConfigPath(cfgFile)
	if errors.Is(err, errNoConfig) {
		return fallback, "", nil
	}
	if err != nil {
		return carousel.Options{}, "", err
	}
	opts, err := carousel.LoadOptions(path)
	if err != nil {
		return carousel.Options{}, "", err
	}
	return opts, path, nil
}
