package render

import (
	"testing"
	"time"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/30Piraten/widgetsets/widgetset"
)

func testStack() awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), nil)
}

func TestMetric(t *testing.T) {
	m := Metric(widgetset.MetricSpec{
		Namespace:  "AWS/ECS",
		MetricName: "CPUUtilization",
		Dimensions: map[string]string{"ClusterName": "prod"},
		Statistic:  widgetset.StatisticAverage,
		Period:     time.Minute,
		Region:     "eu-west-1",
		Label:      "cpu",
	})

	assert.Equal(t, "AWS/ECS", *m.Namespace())
	assert.Equal(t, "CPUUtilization", *m.MetricName())
	assert.Equal(t, "Average", *m.Statistic())
	assert.Equal(t, "eu-west-1", *m.Region())
	assert.Equal(t, "cpu", *m.Label())
	assert.Equal(t, 60.0, *m.Period().ToSeconds(nil))
}

func TestDuration(t *testing.T) {
	assert.Nil(t, duration(0))
	assert.Equal(t, 5.0, *duration(5*time.Minute).ToMinutes(nil))
	assert.Equal(t, 30.0, *duration(30*time.Second).ToSeconds(nil))
}

func TestAlarmIDs(t *testing.T) {
	ids := alarmIDs{}
	assert.Equal(t, "TokensAlarm-Appsync", ids.next("TokensAlarm-Appsync"))
	assert.Equal(t, "TokensAlarm-Appsync-1", ids.next("TokensAlarm-Appsync"))
	assert.Equal(t, "CPU-Alarm-web", ids.next("CPU-Alarm-web"))
	assert.Equal(t, "TokensAlarm-Appsync-2", ids.next("TokensAlarm-Appsync"))
}

func testWidgetSets(t *testing.T) (*widgetset.AppsyncWidgetSet, *widgetset.EcsFargateWidgetSet, *widgetset.TgwWidgetSet) {
	t.Helper()

	appsync, err := widgetset.NewAppsyncWidgetSet(widgetset.AppsyncResource{
		ResourceARN: "arn:aws:appsync:us-east-1:123456789012:apis/abc123",
		Name:        "MyApi",
	})
	require.NoError(t, err)

	ecs, err := widgetset.NewEcsFargateWidgetSet(widgetset.EcsService{
		ServiceArn:   "arn:aws:ecs:us-east-1:123456789012:service/prod/web",
		ServiceName:  "web",
		RunningCount: 2,
	}, "prod")
	require.NoError(t, err)

	tgw, err := widgetset.NewTgwWidgetSet(widgetset.TransitGateway{
		ResourceARN: "arn:aws:ec2:us-east-1:123456789012:transit-gateway/tgw-0abc",
		Attachments: []widgetset.Attachment{
			{TransitGatewayAttachmentId: "tgw-attach-1", ResourceType: "vpc", ResourceId: "vpc-1"},
		},
	})
	require.NoError(t, err)

	return appsync, ecs, tgw
}

func TestNewWidgetSet(t *testing.T) {
	stack := testStack()
	_, ecs, tgw := testWidgetSets(t)

	ecsSet := NewWidgetSet(stack, "Ecs", ecs)
	assert.Len(t, ecsSet.Widgets(), len(ecs.WidgetSets()))
	assert.Len(t, ecsSet.Alarms(), 1)

	tgwSet := NewWidgetSet(stack, "Tgw", tgw)
	assert.Len(t, tgwSet.Widgets(), 4)
	assert.Empty(t, tgwSet.Alarms())

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Alarm"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CloudWatch::Alarm"), map[string]interface{}{
		"AlarmName":          "CPU-Alarm-web",
		"MetricName":         "CPUUtilization",
		"Namespace":          "AWS/ECS",
		"Statistic":          "Average",
		"Period":             60,
		"Threshold":          5,
		"EvaluationPeriods":  3,
		"DatapointsToAlarm":  3,
		"ComparisonOperator": "GreaterThanOrEqualToThreshold",
		"TreatMissingData":   "notBreaching",
	})
}

func TestNewDashboard(t *testing.T) {
	stack := testStack()
	appsync, ecs, tgw := testWidgetSets(t)
	regional := appsync.RegionalMetrics("us-east-1")

	topic := awssns.NewTopic(stack, jsii.String("Alarms"), nil)
	d := NewDashboard(stack, "Widgets", &DashboardProps{
		DashboardName: "ServiceWidgetSets",
		WidgetSets:    []widgetset.WidgetSet{appsync, ecs, tgw},
		ExtraRows:     []widgetset.Row{regional},
		AlarmTopic:    topic,
	})
	assert.Len(t, d.Alarms(), 2)
	assert.NotNil(t, d.Dashboard())

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Dashboard"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CloudWatch::Dashboard"), map[string]interface{}{
		"DashboardName": "ServiceWidgetSets",
	})
	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Alarm"), jsii.Number(2))
	template.HasResourceProperties(jsii.String("AWS::CloudWatch::Alarm"), map[string]interface{}{
		"AlarmName":         "TokensAlarm-Appsync",
		"Threshold":         1.1,
		"EvaluationPeriods": 2,
		"DatapointsToAlarm": 2,
		"TreatMissingData":  "notBreaching",
		"AlarmActions":      assertions.Match_AnyValue(),
	})
}

func TestNewDashboardRepeatedRegionalAlarm(t *testing.T) {
	stack := testStack()
	appsync, _, _ := testWidgetSets(t)
	appsync.RegionalMetrics("us-east-1")
	appsync.RegionalMetrics("us-east-1")

	d := NewDashboard(stack, "Widgets", &DashboardProps{
		WidgetSets: []widgetset.WidgetSet{appsync},
	})
	assert.Len(t, d.Alarms(), 2)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Alarm"), jsii.Number(2))
}
