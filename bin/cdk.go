package main

import (
	"context"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/rs/zerolog"

	"github.com/aws/constructs-go/constructs/v10"

	"github.com/30Piraten/widgetsets/config"
	"github.com/30Piraten/widgetsets/inventory"
	"github.com/30Piraten/widgetsets/render"
)

func NewWidgetSetsDashboardStack(scope constructs.Construct, id string, props *WidgetSetsDashboardStackProps,
	inv *inventory.Inventory, log zerolog.Logger) (awscdk.Stack, error) {
	if props == nil {
		props = &WidgetSetsDashboardStackProps{}
	}

	// Build every widget set before touching the construct tree
	built, err := buildWidgetSets(inv, log)
	if err != nil {
		return nil, err
	}

	resources := &DashboardResources{
		stack: initializeStack(scope, id, props),
	}

	// SNS topic for alarm notifications
	resources.alarmTopic = createMonitoringResources(resources.stack, props.AlarmTopicName, props.AlarmEmail)

	// CloudWatch dashboard and alarms
	resources.dashboard = render.NewDashboard(resources.stack, "WidgetSets", &render.DashboardProps{
		DashboardName: props.DashboardName,
		WidgetSets:    built.sets,
		ExtraRows:     built.regionalRows,
		AlarmTopic:    resources.alarmTopic,
	})

	createStackOutputs(resources)

	return resources.stack, nil
}

func main() {
	defer jsii.Close()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load .env and environment variables one time
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	inv, err := loadInventory(context.Background(), cfg.InventorySource, log)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.InventorySource).Msg("Failed to load inventory")
	}

	app := awscdk.NewApp(nil)
	_, err = NewWidgetSetsDashboardStack(app, cfg.StackName, &WidgetSetsDashboardStackProps{
		StackProps: awscdk.StackProps{
			Env: env(cfg),
		},
		DashboardName:  cfg.DashboardName,
		AlarmTopicName: cfg.AlarmTopicName,
		AlarmEmail:     cfg.AlarmEmail,
	}, inv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build widget sets")
	}

	app.Synth(nil)
}

func loadInventory(ctx context.Context, source string, log zerolog.Logger) (*inventory.Inventory, error) {
	var client inventory.ObjectGetter
	if inventory.IsS3Source(source) {
		s3Client, err := inventory.NewS3Client(ctx)
		if err != nil {
			return nil, err
		}
		client = s3Client
	}
	return inventory.NewLoader(client, log).Load(ctx, source)
}

// env determines the AWS environment (account+region) in which the stack is
// deployed. Alarms on region-scoped metrics require the stack to be in the
// same region as the resources.
func env(cfg *config.Config) *awscdk.Environment {
	e := &awscdk.Environment{}
	if cfg.Account != "" {
		e.Account = jsii.String(cfg.Account)
	}
	if cfg.Region != "" {
		e.Region = jsii.String(cfg.Region)
	}
	return e
}
