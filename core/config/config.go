package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the name of the config file within its directory.
const ConfigurationName = "config.yaml"

// Configuration holds the interpreter's tunable settings.
type Configuration struct {
	// Prompt is printed before each input line is read.
	Prompt string `json:"prompt" validate:"required"`

	// Farewell is printed when the session ends.
	Farewell string `json:"farewell" validate:"required"`

	// RemoveUtility is the external binary spawned by `rm -rf`.
	RemoveUtility string `json:"remove_utility" validate:"required,startswith=/"`

	// HistoryFile, when set, receives one JSON line per executed input
	// line.
	HistoryFile string `json:"history_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
//
// Panics on failure because the default config is compiled in and
// checked by tests.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
