package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/logging"
	"github.com/packup/packup/pkg/paths"
	"github.com/packup/packup/pkg/rules"
)

var log = logging.GetLogger("config")

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "PACKUP_"

// Config is the fully resolved packup configuration.
type Config struct {
	Deploy  DeployConfig  `koanf:"deploy" toml:"deploy"`
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`
	Bundle  BundleConfig  `koanf:"bundle" toml:"bundle"`
}

// DeployConfig configures the rule-driven deployment archive.
type DeployConfig struct {
	// Output is the destination archive path, resolved against the
	// project root unless absolute
	Output string `koanf:"output" toml:"output"`

	// Workers bounds the number of parallel staging copies
	Workers int `koanf:"workers" toml:"workers"`
}

// ExcludeConfig lists exclusion rule names by kind.
type ExcludeConfig struct {
	Dirs       []string `koanf:"dirs" toml:"dirs"`
	Files      []string `koanf:"files" toml:"files"`
	Extensions []string `koanf:"extensions" toml:"extensions"`
}

// BundleConfig configures the fixed-list app bundle.
type BundleConfig struct {
	// Dir is the directory holding the bundle files, resolved against
	// the project root
	Dir string `koanf:"dir" toml:"dir"`

	// Files are the bundle members inside Dir
	Files []string `koanf:"files" toml:"files"`

	// Output is the destination archive path
	Output string `koanf:"output" toml:"output"`
}

// RuleSet builds the exclusion rule set from the configured lists.
func (c *Config) RuleSet() *rules.Set {
	return rules.NewSet(c.Exclude.Dirs, c.Exclude.Files, c.Exclude.Extensions)
}

// Load resolves the configuration for a project root. overrides is an
// optional flat key map ("deploy.output") applied after every other
// layer, typically built from command-line flags.
func Load(root string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. Project file, first candidate wins
	for _, configPath := range paths.ConfigFilePaths(root) {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
		break
	}

	// 3. Environment overrides: PACKUP_DEPLOY_OUTPUT=x.zip -> deploy.output
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Programmatic overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("root", root).
		Int("excludeDirs", len(cfg.Exclude.Dirs)).
		Int("excludeFiles", len(cfg.Exclude.Files)).
		Int("excludeExtensions", len(cfg.Exclude.Extensions)).
		Msg("Configuration resolved")

	return cfg, nil
}

// Default returns the configuration built from the embedded defaults alone.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
