package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/content_platform_app/internal/platform/config"
	"github.com/SscSPs/content_platform_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	orig := loadConfig
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfig = orig })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	withConfig(t, &config.Config{
		JWTSecret:         "cli-test-secret",
		JWTIssuer:         "cmsctl-test",
		JWTExpiryDuration: time.Hour,
	})

	out, err := execute(t, "token", "user-42")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(out), "cli-test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "cmsctl-test", claims.Issuer)
}

func TestTokenCommand_RequiresUserID(t *testing.T) {
	withConfig(t, &config.Config{JWTSecret: "x", JWTExpiryDuration: time.Hour})
	_, err := execute(t, "token")
	assert.Error(t, err)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "token", "seed", "run-schedules"} {
		assert.True(t, names[want], want)
	}
}
