package config

import (
	"go/token"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/msggen/errors"
)

// DefaultFile is the configuration file looked up when none is named.
const DefaultFile = "msggen.toml"

// Config holds the generator settings.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Output is the generated file path. Empty means standard output.
	Output string
	// Schemas lists schema documents merged into one schema, in order.
	Schemas         []string
	GenerateSetters bool
}

type fileConfig struct {
	Package         string   `toml:"package"`
	Output          string   `toml:"output"`
	Schemas         []string `toml:"schemas"`
	GenerateSetters bool     `toml:"generate-setters"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Package:         "messages",
		GenerateSetters: true,
	}
}

// Load reads a TOML configuration file. Keys that are not recognised are
// rejected. Relative schema and output paths are resolved against the
// directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path(path).
			Cause(err).
			Detail("load config").
			Build()
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(path, keys[0]).
			Value(keys).
			Detail("unknown keys: %s", strings.Join(keys, ", ")).
			Build()
	}

	dir := filepath.Dir(path)
	if meta.IsDefined("package") {
		cfg.Package = strings.TrimSpace(raw.Package)
	}
	if meta.IsDefined("output") {
		cfg.Output = resolve(dir, strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("schemas") {
		cfg.Schemas = make([]string, 0, len(raw.Schemas))
		for _, s := range raw.Schemas {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Schemas = append(cfg.Schemas, resolve(dir, s))
			}
		}
	}
	if meta.IsDefined("generate-setters") {
		cfg.GenerateSetters = raw.GenerateSetters
	}

	if err := validatePackage(cfg.Package); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a configuration after command-line overrides are applied.
func (c Config) Validate() error {
	if err := validatePackage(c.Package); err != nil {
		return err
	}
	if len(c.Schemas) == 0 {
		return errors.New(errors.PhaseConfig, errors.KindFieldMissing).
			Path("schemas").
			Detail("no schema documents given").
			Build()
	}
	return nil
}

func validatePackage(name string) error {
	if token.IsIdentifier(name) && name != "_" {
		return nil
	}
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Path("package").
		Value(name).
		Detail("package %q is not a valid Go package name", name).
		Build()
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
