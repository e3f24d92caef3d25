package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type WidgetSetsDashboardStackProps struct {
	awscdk.StackProps
	DashboardName  string
	AlarmTopicName string
	AlarmEmail     string
}

// common.go
func initializeStack(scope constructs.Construct, id string, props *WidgetSetsDashboardStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}

	if sprops.Description == nil {
		sprops.Description = jsii.String("CloudWatch widget sets for AppSync, ECS Fargate and Transit Gateway resources")
	}

	return awscdk.NewStack(scope, &id, &sprops)
}
