// Package config holds the shell's user-tunable settings, loaded from
// an optional config.yaml in the --config directory.
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

// ConfigurationName is the file name looked up in the config directory.
const ConfigurationName = "config.yaml"

// Configuration are the shell's settings. Keys absent from the file
// keep the embedded defaults at load time; keys set to a value that
// fails validation (such as an empty prompt) are rejected.
type Configuration struct {
	// Prompt is the primary prompt string.
	Prompt string `json:"prompt" validate:"required"`
	// HeredocPrompt is the secondary prompt used while collecting
	// here-documents.
	HeredocPrompt string `json:"heredoc_prompt" validate:"required"`
	// ColorPrompt renders the prompt in color on a terminal.
	ColorPrompt bool `json:"color_prompt"`
	// HistoryFile persists readline history between sessions. Empty
	// keeps history in memory only.
	HistoryFile string `json:"history_file"`
	// DefaultPath is the command search path used when PATH is unset.
	DefaultPath string `json:"default_path" validate:"required"`
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
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
