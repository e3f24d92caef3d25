// Package widgetset builds CloudWatch dashboard widgets and alarms for
// individual AWS resources.
//
// Each builder derives metric dimensions from a resource descriptor, lays the
// resulting graphs out in rows and accumulates them, together with any
// threshold alarms, for a dashboard assembler to read back through the
// WidgetSet contract. Builders do no I/O; everything they produce is a
// declarative value realized later by the render package.
package widgetset

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/pkg/errors"
)

// WidgetSet exposes the widgets and alarms accumulated for one resource.
// Both accessors return elements in the order they were built, which is also
// the order they are displayed.
type WidgetSet interface {
	WidgetSets() []Widget
	AlarmSet() []AlarmSpec
}

var (
	_ WidgetSet = (*AppsyncWidgetSet)(nil)
	_ WidgetSet = (*EcsFargateWidgetSet)(nil)
	_ WidgetSet = (*TgwWidgetSet)(nil)
)

// accumulator holds the ordered widgets and alarms of a builder.
type accumulator struct {
	widgets []Widget
	alarms  []AlarmSpec
}

func (a *accumulator) WidgetSets() []Widget {
	return a.widgets
}

func (a *accumulator) AlarmSet() []AlarmSpec {
	return a.alarms
}

func (a *accumulator) addWidget(w Widget) {
	a.widgets = append(a.widgets, w)
}

func (a *accumulator) addAlarm(alarm AlarmSpec) {
	a.alarms = append(a.alarms, alarm)
}

// arnRegion returns the region section of resourceARN.
func arnRegion(resourceARN string) (string, error) {
	parsed, err := arn.Parse(resourceARN)
	if err != nil {
		return "", errors.Wrapf(err, "invalid resource ARN %q", resourceARN)
	}
	return parsed.Region, nil
}

// arnResourceID returns the region section of resourceARN and the last
// '/'-delimited segment of its resource section.
func arnResourceID(resourceARN string) (region, id string, err error) {
	parsed, err := arn.Parse(resourceARN)
	if err != nil {
		return "", "", errors.Wrapf(err, "invalid resource ARN %q", resourceARN)
	}
	i := strings.LastIndex(parsed.Resource, "/")
	if i < 0 {
		return "", "", errors.Errorf("resource ARN %q has no resource id", resourceARN)
	}
	return parsed.Region, parsed.Resource[i+1:], nil
}
