package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/jsii-runtime-go"
)

// Monitoring resources
func createMonitoringResources(stack awscdk.Stack, topicName, email string) awssns.ITopic {
	props := &awssns.TopicProps{
		DisplayName: jsii.String("Widget Set Alarms"),
	}
	if topicName != "" {
		props.TopicName = jsii.String(topicName)
	}
	topic := awssns.NewTopic(stack, jsii.String("WidgetSetAlarmTopic"), props)

	if email != "" {
		topic.AddSubscription(awssnssubscriptions.NewEmailSubscription(jsii.String(email), nil))
	}

	return topic
}
