package render

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/constructs-go/constructs/v10"

	"github.com/30Piraten/widgetsets/widgetset"
)

// WidgetSet is the construct realizing one widgetset.WidgetSet: its widgets
// in display order and its alarms.
type WidgetSet interface {
	constructs.Construct
	Widgets() []awscloudwatch.IWidget
	Alarms() []awscloudwatch.Alarm
}

type widgetSet struct {
	constructs.Construct
	widgets []awscloudwatch.IWidget
	alarms  []awscloudwatch.Alarm
}

func NewWidgetSet(scope constructs.Construct, id string, ws widgetset.WidgetSet) WidgetSet {
	this := constructs.NewConstruct(scope, &id)

	alarms := make([]awscloudwatch.Alarm, 0, len(ws.AlarmSet()))
	ids := alarmIDs{}
	for _, spec := range ws.AlarmSet() {
		alarms = append(alarms, Alarm(this, ids.next(spec.Name), spec))
	}

	return &widgetSet{
		Construct: this,
		widgets:   Widgets(ws.WidgetSets()),
		alarms:    alarms,
	}
}

func (w *widgetSet) Widgets() []awscloudwatch.IWidget {
	return w.widgets
}

func (w *widgetSet) Alarms() []awscloudwatch.Alarm {
	return w.alarms
}

// alarmIDs hands out construct ids derived from alarm names. A name seen
// again gets a numeric suffix, since RegionalMetrics may add the same alarm
// more than once.
type alarmIDs map[string]int

func (ids alarmIDs) next(name string) string {
	n := ids[name]
	ids[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s-%d", name, n)
}
