package render

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/jsii-runtime-go"

	"github.com/30Piraten/widgetsets/widgetset"
)

// Widget converts a graph, text or row spec into a CDK widget.
func Widget(w widgetset.Widget) awscloudwatch.IWidget {
	switch w := w.(type) {
	case widgetset.GraphWidgetSpec:
		return Graph(w)
	case widgetset.TextWidgetSpec:
		return Text(w)
	case widgetset.Row:
		return Row(w)
	default:
		panic(fmt.Sprintf("render: unknown widget type %T", w))
	}
}

func Graph(g widgetset.GraphWidgetSpec) awscloudwatch.GraphWidget {
	props := &awscloudwatch.GraphWidgetProps{
		Title:     jsii.String(g.Title),
		Left:      seriesList(g.Left),
		Right:     seriesList(g.Right),
		Stacked:   jsii.Bool(g.Stacked),
		Period:    duration(g.Period),
		Statistic: statistic(g.Statistic),
	}
	if g.Region != "" {
		props.Region = jsii.String(g.Region)
	}
	if g.Width > 0 {
		props.Width = jsii.Number(float64(g.Width))
	}
	return awscloudwatch.NewGraphWidget(props)
}

func Text(t widgetset.TextWidgetSpec) awscloudwatch.TextWidget {
	return awscloudwatch.NewTextWidget(&awscloudwatch.TextWidgetProps{
		Markdown: jsii.String(t.Markdown),
		Width:    jsii.Number(float64(t.Width)),
		Height:   jsii.Number(float64(t.Height)),
	})
}

func Row(r widgetset.Row) awscloudwatch.Row {
	return awscloudwatch.NewRow(Widgets(r.Widgets)...)
}

// Widgets converts widgets in order.
func Widgets(widgets []widgetset.Widget) []awscloudwatch.IWidget {
	out := make([]awscloudwatch.IWidget, 0, len(widgets))
	for _, w := range widgets {
		out = append(out, Widget(w))
	}
	return out
}
