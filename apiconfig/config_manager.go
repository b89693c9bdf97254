package apiconfig

import (
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const EnvPrefix = "LSENGINE_"

// LoadFile reads the YAML config at path over the defaults. An empty path
// loads defaults and environment overrides only.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Load(nil)
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrapf(err, "config file %s", path)
	}
	return Load(file.Provider(path))
}

// Load layers the defaults, the YAML document behind provider and LSENGINE_
// environment variables, in that order. A double underscore in a variable
// name separates sections: LSENGINE_API__PUBLIC_PORT sets api.public_port.
func Load(provider koanf.Provider) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, errors.Wrap(err, "error loading defaults")
	}
	if provider != nil {
		if err := k.Load(provider, yaml.Parser()); err != nil {
			return Config{}, errors.Wrap(err, "error loading config")
		}
	}
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, "error loading env")
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, errors.Wrap(err, "error unmarshalling config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	logging.Debug("config loaded", types.Config, "data_dir", config.DataDir, "embedded_nats", config.Nats.Embedded)
	return config, nil
}

// Write renders config as YAML.
func Write(config Config, w io.Writer) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(config, "koanf"), nil); err != nil {
		logging.Error("error loading config", types.Config, "error", err)
		return err
	}
	output, err := k.Marshal(yaml.Parser())
	if err != nil {
		logging.Error("error marshalling config", types.Config, "error", err)
		return err
	}
	_, err = w.Write(output)
	return err
}
