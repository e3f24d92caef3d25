package widgetset

import (
	"fmt"

	"github.com/pkg/errors"
)

const appsyncNamespace = "AWS/AppSync"

// AppsyncResource describes one AppSync GraphQL API as reported by discovery.
type AppsyncResource struct {
	ResourceARN string `yaml:"ResourceARN" json:"ResourceARN"`
	Name        string `yaml:"name" json:"name"`
}

// AppsyncWidgetSet graphs requests, errors and latency of one AppSync API.
type AppsyncWidgetSet struct {
	accumulator

	name            string
	graphqlEndpoint string
	region          string
}

// NewAppsyncWidgetSet builds one row of three graphs for the API: total
// requests, 4XX/5XX errors and maximum latency.
func NewAppsyncWidgetSet(res AppsyncResource) (*AppsyncWidgetSet, error) {
	region, endpoint, err := arnResourceID(res.ResourceARN)
	if err != nil {
		return nil, errors.Wrapf(err, "appsync api %q", res.Name)
	}

	ws := &AppsyncWidgetSet{
		name:            res.Name,
		graphqlEndpoint: endpoint,
		region:          region,
	}
	suffix := fmt.Sprintf("%s %s", ws.name, ws.graphqlEndpoint)

	// TotalRequests is drawn from 4XXError sample counts.
	requests := ws.metric("4XXError", StatisticSampleCount)
	requests.Label = "Requests " + suffix

	ws.addWidget(NewRow(
		GraphWidgetSpec{
			Title:  "TotalRequests " + suffix,
			Region: ws.region,
			Left:   []Series{requests},
			Width:  GraphWidth,
		},
		GraphWidgetSpec{
			Title:   "Errors " + suffix,
			Region:  ws.region,
			Left:    []Series{ws.metric("4XXError", StatisticSum)},
			Right:   []Series{ws.metric("5XXError", StatisticSum)},
			Width:   GraphWidth,
			Stacked: true,
		},
		GraphWidgetSpec{
			Title:  "Latency " + suffix,
			Region: ws.region,
			Left:   []Series{ws.metric("Latency", StatisticMaximum)},
			Width:  GraphWidth,
		},
	))

	return ws, nil
}

// GraphqlEndpoint is the API id parsed from the resource ARN.
func (ws *AppsyncWidgetSet) GraphqlEndpoint() string {
	return ws.graphqlEndpoint
}

func (ws *AppsyncWidgetSet) Region() string {
	return ws.region
}

// RegionalMetrics builds the account-wide token consumption graphs for region.
// The row is returned to the caller and is not added to the widget set, while
// the tokens-per-request alarm is appended to the alarm set on every call.
func (ws *AppsyncWidgetSet) RegionalMetrics(region string) Row {
	dimensions := func() map[string]string {
		return map[string]string{"Region": region}
	}
	requests := metric(appsyncNamespace, "Requests", StatisticSampleCount, dimensions())
	tokens := metric(appsyncNamespace, "TokensConsumed", StatisticSampleCount, dimensions())

	tokensPerRequest := ExpressionSpec{
		Expression: "tokens/requests",
		Label:      "Tokens per request",
		UsingMetrics: map[string]MetricSpec{
			"tokens":   tokens,
			"requests": requests,
		},
		Period: DefaultPeriod,
	}

	ws.addAlarm(AlarmSpec{
		Name:              "TokensAlarm-Appsync",
		Source:            tokensPerRequest,
		DatapointsToAlarm: 2,
		Threshold:         1.1,
		EvaluationPeriods: 2,
		TreatMissingData:  TreatMissingDataNotBreaching,
	})

	return NewRow(
		GraphWidgetSpec{
			Title:  "Requests " + region,
			Region: region,
			Left:   []Series{requests},
			Width:  GraphWidth,
		},
		GraphWidgetSpec{
			Title:  "Tokens Consumed " + region,
			Region: region,
			Left:   []Series{tokens},
			Width:  GraphWidth,
		},
		GraphWidgetSpec{
			Title:  "Tokens used",
			Region: region,
			Left:   []Series{tokensPerRequest},
			Width:  GraphWidth,
		},
	)
}

func (ws *AppsyncWidgetSet) metric(name string, statistic Statistic) MetricSpec {
	return metric(appsyncNamespace, name, statistic, map[string]string{
		"GraphQLAPIId": ws.graphqlEndpoint,
	})
}
