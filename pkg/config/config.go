package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/arthur-debert/midir/pkg/output"
	"github.com/arthur-debert/midir/pkg/searchpath"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "MIDIR_"

	// EnvConfigDir overrides the user configuration directory
	EnvConfigDir = "MIDIR_CONFIG_DIR"

	// UserConfigFile is the file name inside the user configuration directory
	UserConfigFile = "config.toml"
)

// projectConfigFiles are looked up in the working directory, first match wins
var projectConfigFiles = []string{".midir.toml", ".midir.yaml", ".midir.yml"}

// sections lists the top level tables, used to map environment variables back to keys
var sections = []string{"search_path", "root", "lsdir", "output"}

// Config is the decoded configuration
type Config struct {
	SearchPath SearchPathConfig `koanf:"search_path" toml:"search_path"`
	Root       RootConfig       `koanf:"root" toml:"root"`
	Lsdir      LsdirConfig      `koanf:"lsdir" toml:"lsdir"`
	Output     OutputConfig     `koanf:"output" toml:"output"`
}

// SearchPathConfig configures where the CLI's search path comes from
type SearchPathConfig struct {
	Env string `koanf:"env" toml:"env"`
}

// RootConfig holds defaults for the root commands
type RootConfig struct {
	Levels int    `koanf:"levels" toml:"levels"`
	Suffix string `koanf:"suffix" toml:"suffix"`
}

// LsdirConfig holds defaults for directory listing
type LsdirConfig struct {
	FullPath bool   `koanf:"full_path" toml:"full_path"`
	Files    bool   `koanf:"files" toml:"files"`
	Folders  bool   `koanf:"folders" toml:"folders"`
	Match    string `koanf:"match" toml:"match"`
}

// OutputConfig selects how results are printed
type OutputConfig struct {
	Format output.Format `koanf:"format" toml:"format"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile replaces project file discovery when set; it must exist
	ConfigFile string

	// WorkDir is searched for project files; defaults to the current directory
	WorkDir string

	// UserConfigDir overrides the XDG location of the user file
	UserConfigDir string

	// Overrides are applied last, keyed like "root.levels"
	Overrides map[string]interface{}
}

// Load reads and decodes configuration from every layer
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userPath := filepath.Join(userConfigDir(opts.UserConfigDir), UserConfigFile)
	if err := loadFileIfExists(k, userPath); err != nil {
		return nil, err
	}

	// 3. Project config
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	} else {
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		for _, name := range projectConfigFiles {
			path := filepath.Join(workDir, name)
			if _, err := os.Stat(path); err == nil {
				if err := loadFile(k, path); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	// 4. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return decode(k)
}

// TOML renders the configuration in the same shape the files use
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	if _, err := searchpath.LevelsFromValue(k.Get("root.levels")); err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), "invalid root.levels")
	}
	if _, err := searchpath.SuffixFromValue(k.Get("root.suffix")); err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), "invalid root.suffix")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

// loadFile picks the parser from the file extension; anything that is not
// YAML is read as TOML.
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

func userConfigDir(override string) string {
	if override != "" {
		return override
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, "midir")
}

// envValue skips empty variables so an exported-but-blank MIDIR_ROOT_LEVELS
// keeps the lower layers' value.
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKey(key), value
}

// envKey maps MIDIR_ROOT_LEVELS to root.levels. Variables outside the known
// sections map to "" and are skipped.
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(name, section+"_"); ok && rest != "" {
			return section + "." + rest
		}
	}
	return ""
}
