package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultDashboardName  = "ServiceWidgetSets"
	defaultStackName      = "WidgetSetsDashboardStack"
	defaultAlarmTopicName = "widgetset-alarms"
)

type Config struct {
	// InventorySource is a local path or an s3://bucket/key URI.
	InventorySource string
	DashboardName   string
	StackName       string
	AlarmTopicName  string
	// AlarmEmail is subscribed to the alarm topic when set.
	AlarmEmail string
	Account    string
	Region     string
}

// Load reads the given env files (".env" when none are given) and then the
// process environment. Variables already set in the environment win over the
// files, and a missing file is not an error.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "could not load env file")
	}

	source, err := checkEnv("INVENTORY_SOURCE")
	if err != nil {
		return nil, err
	}

	return &Config{
		InventorySource: source,
		DashboardName:   envOr("DASHBOARD_NAME", defaultDashboardName),
		StackName:       envOr("STACK_NAME", defaultStackName),
		AlarmTopicName:  envOr("ALARM_TOPIC_NAME", defaultAlarmTopicName),
		AlarmEmail:      os.Getenv("ALARM_EMAIL"),
		Account:         os.Getenv("CDK_DEFAULT_ACCOUNT"),
		Region:          os.Getenv("CDK_DEFAULT_REGION"),
	}, nil
}

func checkEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", errors.Errorf("%s environment variable is required", key)
	}
	return value, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
