package widgetset

import "time"

// Statistic is the aggregation applied to a metric over its period.
type Statistic string

const (
	StatisticSampleCount Statistic = "SampleCount"
	StatisticSum         Statistic = "Sum"
	StatisticAverage     Statistic = "Average"
	StatisticMaximum     Statistic = "Maximum"
)

// TreatMissingData controls how an alarm evaluates periods without datapoints.
type TreatMissingData string

const (
	TreatMissingDataBreaching    TreatMissingData = "breaching"
	TreatMissingDataNotBreaching TreatMissingData = "notBreaching"
	TreatMissingDataIgnore       TreatMissingData = "ignore"
	TreatMissingDataMissing      TreatMissingData = "missing"
)

// Dashboard grid
const (
	LayoutWidth  = 24
	GraphWidth   = 8
	BannerHeight = 1
)

const DefaultPeriod = time.Minute

// Series is anything a graph axis or an alarm can plot: a MetricSpec or an
// ExpressionSpec.
type Series interface {
	isSeries()
}

type MetricSpec struct {
	Namespace  string
	MetricName string
	Dimensions map[string]string
	Statistic  Statistic
	Period     time.Duration
	// Region is only set when the metric lives outside the widget's region.
	Region string
	Label  string
}

// ExpressionSpec is a metric math expression over named metrics.
type ExpressionSpec struct {
	Expression   string
	Label        string
	UsingMetrics map[string]MetricSpec
	Period       time.Duration
}

func (MetricSpec) isSeries()     {}
func (ExpressionSpec) isSeries() {}

// Widget is one dashboard element: a GraphWidgetSpec, a TextWidgetSpec or a
// Row of widgets.
type Widget interface {
	isWidget()
}

type GraphWidgetSpec struct {
	Title   string
	Region  string
	Left    []Series
	Right   []Series
	Width   int
	Stacked bool
	// Period and Statistic override the per-metric values when set.
	Period    time.Duration
	Statistic Statistic
}

// TextWidgetSpec is a markdown banner.
type TextWidgetSpec struct {
	Markdown string
	Width    int
	Height   int
}

// Row lays its widgets out left to right.
type Row struct {
	Widgets []Widget
}

func (GraphWidgetSpec) isWidget() {}
func (TextWidgetSpec) isWidget()  {}
func (Row) isWidget()             {}

func NewRow(widgets ...Widget) Row {
	return Row{Widgets: widgets}
}

// AlarmSpec is a threshold alarm. The comparison is always
// greater-than-or-equal-to the threshold.
type AlarmSpec struct {
	Name              string
	Source            Series
	DatapointsToAlarm int
	Threshold         float64
	EvaluationPeriods int
	TreatMissingData  TreatMissingData
}

// Rows returns the Row elements of widgets, skipping top-level banners.
func Rows(widgets []Widget) []Row {
	var rows []Row
	for _, w := range widgets {
		if row, ok := w.(Row); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// banner is a full-width, single-line markdown widget.
func banner(markdown string) TextWidgetSpec {
	return TextWidgetSpec{
		Markdown: markdown,
		Width:    LayoutWidth,
		Height:   BannerHeight,
	}
}

func metric(namespace, name string, statistic Statistic, dimensions map[string]string) MetricSpec {
	return MetricSpec{
		Namespace:  namespace,
		MetricName: name,
		Dimensions: dimensions,
		Statistic:  statistic,
		Period:     DefaultPeriod,
	}
}
