package logger

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevel(t *testing.T) {
	cases := []struct {
		name  string
		env   string
		level string
		want  logrus.Level
	}{
		{"from_options", "", "debug", logrus.DebugLevel},
		{"env_overrides", "warn", "debug", logrus.WarnLevel},
		{"bad_name_falls_back_to_info", "", "loud", logrus.InfoLevel},
		{"empty_is_info", "", "", logrus.InfoLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.env != "" {
				t.Setenv("LOG_LEVEL", c.env)
			}
			Init(Options{Level: c.level})
			assert.Equal(t, c.want, Log.GetLevel())
		})
	}
}

func TestInitFormat(t *testing.T) {
	Init(Options{Format: "json"})
	_, ok := Log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok, "expected json formatter")

	t.Setenv("LOG_FORMAT", "text")
	Init(Options{Format: "json"})
	_, ok = Log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok, "expected env to force text formatter")
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	t.Cleanup(func() { Init(Options{}) })
	Init(Options{Level: "info", File: path, MaxSizeMB: 1})
	Log.Info("hello")

	require.FileExists(t, path)
}
