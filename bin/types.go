package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"

	"github.com/30Piraten/widgetsets/render"
)

type DashboardResources struct {
	stack      awscdk.Stack
	alarmTopic awssns.ITopic
	dashboard  render.Dashboard
}
