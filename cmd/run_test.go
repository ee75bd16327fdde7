package cmd

import (
	"testing"

	"raffler/config"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	original := log.GetLevel()
	t.Cleanup(func() {
		log.SetLevel(original)
		log.SetFormatter(&log.TextFormatter{})
	})

	cfg := config.NewTestConfig()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"
	require.NoError(t, ConfigureLogging(cfg))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	cfg.LogLevel = "chatty"
	assert.Error(t, ConfigureLogging(cfg))
}
