package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "minishell$ ", cfg.Prompt)
	assert.Equal(t, "> ", cfg.HeredocPrompt)
	assert.NotEmpty(t, cfg.DefaultPath)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, ".")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "etc/config.yaml", []byte("prompt: \"$ \"\ncolor_prompt: true\n"), 0644))

	cfg, err := Load(fs, "etc")
	require.NoError(t, err)

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.True(t, cfg.ColorPrompt)
	// Untouched keys keep their defaults.
	assert.Equal(t, "> ", cfg.HeredocPrompt)
}

func TestLoadAcceptsFilePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "etc/config.yaml", []byte("prompt: \"% \"\n"), 0644))

	cfg, err := Load(fs, "etc/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "% ", cfg.Prompt)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.yaml", []byte("prmopt: \"$ \"\n"), 0644))

	_, err := Load(fs, ".")
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.yaml", []byte("prompt: \"\"\n"), 0644))

	_, err := Load(fs, ".")
	assert.Error(t, err)
}
