package widgetset

import (
	"fmt"

	"github.com/pkg/errors"
)

const ecsNamespace = "AWS/ECS"

// EcsService describes one ECS Fargate service as reported by discovery.
type EcsService struct {
	ServiceArn   string `yaml:"serviceArn" json:"serviceArn"`
	ServiceName  string `yaml:"serviceName" json:"serviceName"`
	RunningCount int    `yaml:"runningCount" json:"runningCount"`
}

// EcsFargateWidgetSet shows a console banner and CPU/memory utilisation for
// one ECS service, and alarms on its CPU.
type EcsFargateWidgetSet struct {
	accumulator

	region      string
	serviceName string
	clusterName string
}

func NewEcsFargateWidgetSet(service EcsService, clusterName string) (*EcsFargateWidgetSet, error) {
	region, err := arnRegion(service.ServiceArn)
	if err != nil {
		return nil, errors.Wrapf(err, "ecs service %q", service.ServiceName)
	}

	ws := &EcsFargateWidgetSet{
		region:      region,
		serviceName: service.ServiceName,
		clusterName: clusterName,
	}

	ws.addWidget(banner(ws.markdown(service.RunningCount)))

	cpu := ws.metric("CPUUtilization")
	memory := ws.metric("MemoryUtilization")

	ws.addWidget(NewRow(GraphWidgetSpec{
		Title:     "CPU/Memory Utilisation",
		Region:    ws.region,
		Left:      []Series{cpu},
		Right:     []Series{memory},
		Width:     LayoutWidth,
		Period:    DefaultPeriod,
		Statistic: StatisticAverage,
	}))

	ws.addAlarm(AlarmSpec{
		Name:              "CPU-Alarm-" + ws.serviceName,
		Source:            cpu,
		DatapointsToAlarm: 3,
		Threshold:         5,
		EvaluationPeriods: 3,
		TreatMissingData:  TreatMissingDataNotBreaching,
	})

	return ws, nil
}

func (ws *EcsFargateWidgetSet) markdown(runningTasks int) string {
	console := fmt.Sprintf("https://%s.console.aws.amazon.com/ecs/home?region=%s#/clusters/%s",
		ws.region, ws.region, ws.clusterName)
	return fmt.Sprintf("***ECS Fargate Service [%s](%s/services/%s/details) [%s](%s/services) Tasks: %d***",
		ws.serviceName, console, ws.serviceName, ws.clusterName, console, runningTasks)
}

func (ws *EcsFargateWidgetSet) metric(name string) MetricSpec {
	m := metric(ecsNamespace, name, StatisticAverage, map[string]string{
		"ClusterName": ws.clusterName,
		"ServiceName": ws.serviceName,
	})
	m.Region = ws.region
	return m
}
