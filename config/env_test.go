package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"INVENTORY_SOURCE", "DASHBOARD_NAME", "STACK_NAME", "ALARM_TOPIC_NAME",
	"ALARM_EMAIL", "CDK_DEFAULT_ACCOUNT", "CDK_DEFAULT_REGION",
}

// unsetConfig clears every config variable for the duration of the test.
func unsetConfig(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetConfig(t)
	t.Setenv("INVENTORY_SOURCE", "inventory.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		InventorySource: "inventory.yaml",
		DashboardName:   defaultDashboardName,
		StackName:       defaultStackName,
		AlarmTopicName:  defaultAlarmTopicName,
	}, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	unsetConfig(t)
	t.Setenv("INVENTORY_SOURCE", "s3://bucket/inventory.yaml")
	t.Setenv("DASHBOARD_NAME", "Prod")
	t.Setenv("ALARM_EMAIL", "ops@example.com")
	t.Setenv("CDK_DEFAULT_REGION", "eu-west-1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "s3://bucket/inventory.yaml", cfg.InventorySource)
	assert.Equal(t, "Prod", cfg.DashboardName)
	assert.Equal(t, defaultStackName, cfg.StackName)
	assert.Equal(t, "ops@example.com", cfg.AlarmEmail)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoadEnvFile(t *testing.T) {
	unsetConfig(t)
	t.Setenv("STACK_NAME", "FromEnvironment")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("INVENTORY_SOURCE=inventory.yaml\nSTACK_NAME=FromFile\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "inventory.yaml", cfg.InventorySource)
	assert.Equal(t, "FromEnvironment", cfg.StackName)
}

func TestLoadMissingInventory(t *testing.T) {
	unsetConfig(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "INVENTORY_SOURCE")
}
