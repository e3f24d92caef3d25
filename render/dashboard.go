package render

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/30Piraten/widgetsets/widgetset"
)

type DashboardProps struct {
	DashboardName string
	// WidgetSets are laid out in order, each one's widgets in build order.
	WidgetSets []widgetset.WidgetSet
	// ExtraRows follow the widget sets, e.g. AppSync regional rows.
	ExtraRows []widgetset.Row
	// AlarmTopic, when set, receives every alarm's state changes.
	AlarmTopic awssns.ITopic
}

// Dashboard is a CloudWatch dashboard together with the alarms registered
// by its widget sets.
type Dashboard interface {
	constructs.Construct
	Dashboard() awscloudwatch.Dashboard
	Alarms() []awscloudwatch.Alarm
}

type dashboard struct {
	constructs.Construct
	dashboard awscloudwatch.Dashboard
	alarms    []awscloudwatch.Alarm
}

func NewDashboard(scope constructs.Construct, id string, props *DashboardProps) Dashboard {
	this := constructs.NewConstruct(scope, &id)

	var dashboardProps awscloudwatch.DashboardProps
	if props.DashboardName != "" {
		dashboardProps.DashboardName = jsii.String(props.DashboardName)
	}
	cw := awscloudwatch.NewDashboard(this, jsii.String("Dashboard"), &dashboardProps)

	d := &dashboard{Construct: this, dashboard: cw}

	for i, ws := range props.WidgetSets {
		set := NewWidgetSet(this, fmt.Sprintf("WidgetSet%d", i), ws)
		if widgets := set.Widgets(); len(widgets) > 0 {
			cw.AddWidgets(widgets...)
		}
		d.alarms = append(d.alarms, set.Alarms()...)
	}

	for _, row := range props.ExtraRows {
		cw.AddWidgets(Row(row))
	}

	if props.AlarmTopic != nil {
		for _, alarm := range d.alarms {
			notify(alarm, props.AlarmTopic)
		}
	}

	return d
}

func (d *dashboard) Dashboard() awscloudwatch.Dashboard {
	return d.dashboard
}

func (d *dashboard) Alarms() []awscloudwatch.Alarm {
	return d.alarms
}
