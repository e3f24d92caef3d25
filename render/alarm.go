package render

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatchactions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/30Piraten/widgetsets/widgetset"
)

// Alarm creates a CloudWatch alarm for spec under scope.
func Alarm(scope constructs.Construct, id string, spec widgetset.AlarmSpec) awscloudwatch.Alarm {
	return awscloudwatch.NewAlarm(scope, jsii.String(id), &awscloudwatch.AlarmProps{
		AlarmName:          jsii.String(spec.Name),
		Metric:             Series(spec.Source),
		Threshold:          jsii.Number(spec.Threshold),
		EvaluationPeriods:  jsii.Number(float64(spec.EvaluationPeriods)),
		DatapointsToAlarm:  jsii.Number(float64(spec.DatapointsToAlarm)),
		ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_OR_EQUAL_TO_THRESHOLD,
		TreatMissingData:   treatMissingData(spec.TreatMissingData),
	})
}

// notify sends alarm state changes to topic.
func notify(alarm awscloudwatch.Alarm, topic awssns.ITopic) {
	alarm.AddAlarmAction(awscloudwatchactions.NewSnsAction(topic))
}

func treatMissingData(t widgetset.TreatMissingData) awscloudwatch.TreatMissingData {
	switch t {
	case widgetset.TreatMissingDataBreaching:
		return awscloudwatch.TreatMissingData_BREACHING
	case widgetset.TreatMissingDataIgnore:
		return awscloudwatch.TreatMissingData_IGNORE
	case widgetset.TreatMissingDataNotBreaching:
		return awscloudwatch.TreatMissingData_NOT_BREACHING
	default:
		return awscloudwatch.TreatMissingData_MISSING
	}
}
