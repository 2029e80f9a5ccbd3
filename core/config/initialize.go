package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir unless one
// already exists, then loads whatever is there.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("Found existing %s, keeping it.", configPath)
	} else {
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
		logger.Printf("Wrote %s.", configPath)
	}

	return Load(fsys, dir)
}
