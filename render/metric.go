// Package render realizes widgetset values as aws-cdk-go CloudWatch constructs.
package render

import (
	"fmt"
	"time"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/jsii-runtime-go"

	"github.com/30Piraten/widgetsets/widgetset"
)

// Metric converts a MetricSpec into a CDK metric.
func Metric(m widgetset.MetricSpec) awscloudwatch.Metric {
	props := &awscloudwatch.MetricProps{
		Namespace:     jsii.String(m.Namespace),
		MetricName:    jsii.String(m.MetricName),
		DimensionsMap: dimensions(m.Dimensions),
		Statistic:     statistic(m.Statistic),
		Period:        duration(m.Period),
	}
	if m.Region != "" {
		props.Region = jsii.String(m.Region)
	}
	if m.Label != "" {
		props.Label = jsii.String(m.Label)
	}
	return awscloudwatch.NewMetric(props)
}

// Expression converts an ExpressionSpec into a CDK math expression.
func Expression(e widgetset.ExpressionSpec) awscloudwatch.MathExpression {
	using := make(map[string]awscloudwatch.IMetric, len(e.UsingMetrics))
	for name, m := range e.UsingMetrics {
		using[name] = Metric(m)
	}

	props := &awscloudwatch.MathExpressionProps{
		Expression:   jsii.String(e.Expression),
		UsingMetrics: &using,
		Period:       duration(e.Period),
	}
	if e.Label != "" {
		props.Label = jsii.String(e.Label)
	}
	return awscloudwatch.NewMathExpression(props)
}

// Series converts either kind of series into a CDK metric.
func Series(s widgetset.Series) awscloudwatch.IMetric {
	switch s := s.(type) {
	case widgetset.MetricSpec:
		return Metric(s)
	case widgetset.ExpressionSpec:
		return Expression(s)
	default:
		panic(fmt.Sprintf("render: unknown series type %T", s))
	}
}

func seriesList(series []widgetset.Series) *[]awscloudwatch.IMetric {
	if len(series) == 0 {
		return nil
	}
	metrics := make([]awscloudwatch.IMetric, 0, len(series))
	for _, s := range series {
		metrics = append(metrics, Series(s))
	}
	return &metrics
}

func dimensions(dims map[string]string) *map[string]*string {
	if len(dims) == 0 {
		return nil
	}
	out := make(map[string]*string, len(dims))
	for k, v := range dims {
		out[k] = jsii.String(v)
	}
	return &out
}

func statistic(s widgetset.Statistic) *string {
	if s == "" {
		return nil
	}
	return jsii.String(string(s))
}

func duration(d time.Duration) awscdk.Duration {
	if d <= 0 {
		return nil
	}
	if d%time.Minute == 0 {
		return awscdk.Duration_Minutes(jsii.Number(d.Minutes()))
	}
	return awscdk.Duration_Seconds(jsii.Number(d.Seconds()))
}
