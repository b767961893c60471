package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/paths"
)

// ProjectFile is the parsed content of a project's packup.toml on its
// own, before merging with the defaults. The rules command uses it to
// tell which exclusions come from the project file.
type ProjectFile struct {
	Path   string
	Config Config
}

// FindProjectFile locates and parses the project config file under root.
// The returned bool reports whether one exists.
func FindProjectFile(root string) (*ProjectFile, bool, error) {
	for _, configPath := range paths.ConfigFilePaths(root) {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		pf, err := loadProjectFile(configPath)
		if err != nil {
			return nil, true, err
		}
		return pf, true, nil
	}
	return nil, false, nil
}

// loadProjectFile reads and parses a single packup.toml
func loadProjectFile(configPath string) (*ProjectFile, error) {
	logger := log.With().Str("configPath", configPath).Logger()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse TOML in %s", configPath)
	}

	logger.Debug().
		Int("excludeDirs", len(cfg.Exclude.Dirs)).
		Int("excludeFiles", len(cfg.Exclude.Files)).
		Int("excludeExtensions", len(cfg.Exclude.Extensions)).
		Msg("Project config loaded")

	return &ProjectFile{Path: configPath, Config: cfg}, nil
}
