// Package config loads user defaults for xkpwgen from a configuration file.
//
// Two formats are supported, chosen by file extension:
//   - YAML (.yaml, .yml), parsed with gopkg.in/yaml.v3
//   - JSON with comments (.json, .jsonc), stripped with
//     github.com/tidwall/jsonc and parsed with encoding/json
//
// Unknown keys are rejected in both formats so that a typo such as
// "lenght" is reported instead of silently ignored. Values that are absent
// from the file keep their defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/xkpwgen/internal/model"
	"github.com/shinji-kodama/xkpwgen/internal/wordlist"
)

// ErrInvalid is matched by errors.Is for any configuration problem.
var ErrInvalid = errors.New("invalid configuration")

// appDir is the directory name under the user config directory.
const appDir = "xkpwgen"

// Config holds the defaults that command-line flags may override.
type Config struct {
	// Length is the number of words per passphrase.
	Length int `yaml:"length" json:"length"`

	// Number is the number of passphrases printed per run.
	Number int `yaml:"number" json:"number"`

	// Separator is placed between words. An empty string is allowed.
	Separator string `yaml:"separator" json:"separator"`

	// Colour is one of "yes", "no" or "auto".
	Colour string `yaml:"colour" json:"colour"`

	// Wordlist names a built-in list (see wordlist.Variants).
	Wordlist string `yaml:"wordlist" json:"wordlist"`

	// WordlistFile is a path to a custom list. When set it takes
	// precedence over Wordlist. A relative path in a config file is
	// resolved against the directory of that file.
	WordlistFile string `yaml:"wordlistFile" json:"wordlistFile"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Length:    4,
		Number:    5,
		Separator: " ",
		Colour:    model.ColourAuto.String(),
		Wordlist:  wordlist.DefaultVariant.String(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/xkpwgen/config.yaml (or the
// platform equivalent reported by os.UserConfigDir).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, appDir, "config.yaml"), nil
}

// Load reads the configuration at path on top of Default.
//
// When explicit is false a missing file is not an error and the defaults
// are returned; this is the behaviour for the default path. When explicit
// is true (the user passed --config) the file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: failed to read %s: %w", ErrInvalid, path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".json", ".jsonc":
		err = decodeJSONC(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config file extension %q (use .yaml, .yml, .json or .jsonc)", ErrInvalid, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	if cfg.WordlistFile != "" && !filepath.IsAbs(cfg.WordlistFile) {
		cfg.WordlistFile = filepath.Join(filepath.Dir(path), cfg.WordlistFile)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document decodes to io.EOF; treat it as "no overrides".
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func decodeJSONC(data []byte, cfg *Config) error {
	// Strip // and /* */ comments and trailing commas before parsing.
	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(clean))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("%w: length %d must not be negative", ErrInvalid, c.Length)
	}
	if c.Number < 0 {
		return fmt.Errorf("%w: number %d must not be negative", ErrInvalid, c.Number)
	}
	if _, err := model.ParseColourMode(c.Colour); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.WordlistFile == "" {
		if _, err := wordlist.ParseVariant(c.Wordlist); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}
