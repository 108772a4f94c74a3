package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	withEnv := env(map[string]string{EnvTheme: "mono-card"})

	cases := []struct {
		name   string
		flag   string
		cfg    *Config
		getenv func(string) string
		want   string
	}{
		{name: "flag wins", flag: "bars", cfg: &Config{Theme: "card"}, getenv: withEnv, want: "bars"},
		{name: "config file before env", cfg: &Config{Theme: "card"}, getenv: withEnv, want: "card"},
		{name: "env when file is silent", cfg: Default(), getenv: withEnv, want: "mono-card"},
		{name: "default", cfg: nil, getenv: nil, want: DefaultTheme},
		{name: "blank values skipped", flag: "  ", cfg: &Config{Theme: " "}, getenv: env(nil), want: DefaultTheme},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ResolveTheme(tc.flag, tc.cfg, tc.getenv))
		})
	}
}

func TestResolveChipStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pipe", ResolveChipStyle(&Config{ChipStyle: "pipe"}, env(map[string]string{EnvChipStyle: "badge"})))
	assert.Equal(t, "pipe", ResolveChipStyle(Default(), env(map[string]string{EnvChipStyle: "pipe"})))
	assert.Equal(t, DefaultChipStyle, ResolveChipStyle(nil, nil))
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateConfig(nil))
	assert.NoError(t, ValidateConfig(Default()))
}
