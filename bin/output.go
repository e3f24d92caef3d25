package main

import (
	"strconv"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

func createStackOutputs(resources *DashboardResources) {
	awscdk.NewCfnOutput(resources.stack, jsii.String("DashboardNameOutput"), &awscdk.CfnOutputProps{
		Value: resources.dashboard.Dashboard().DashboardName(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("AlarmTopicArnOutput"), &awscdk.CfnOutputProps{
		Value: resources.alarmTopic.TopicArn(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("AlarmCountOutput"), &awscdk.CfnOutputProps{
		Value: jsii.String(strconv.Itoa(len(resources.dashboard.Alarms()))),
	})
}
