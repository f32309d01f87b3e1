package configtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type inner struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port,omitempty"`
}

type outer struct {
	Name    string        `yaml:"name,omitempty"`
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Inner   inner         `yaml:"inner,omitempty"`
	Extra   string        `yaml:"extra" config:"allowempty"`
	Skipped string        `yaml:"-"`
}

func TestCheckYAMLTags(t *testing.T) {
	err := CheckYAMLTags(outer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "inner.address")
	require.NotContains(t, err.Error(), "enabled")
	require.NotContains(t, err.Error(), "extra")
	require.NotContains(t, err.Error(), "inner.port")

	type ok struct {
		Inner *inner `yaml:"inner,omitempty"`
	}
	require.Error(t, CheckYAMLTags(ok{}))
	require.NoError(t, CheckYAMLTags(struct {
		Port int `yaml:"port,omitempty"`
	}{}))
}
