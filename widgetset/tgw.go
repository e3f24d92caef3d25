package widgetset

import (
	"fmt"

	"github.com/pkg/errors"
)

const tgwNamespace = "AWS/TransitGateway"

// Attachment resource types reported by EC2.
const (
	AttachmentTypeVpc     = "vpc"
	AttachmentTypePeering = "peering"
)

// TransitGateway describes one transit gateway and its attachments as
// reported by discovery.
type TransitGateway struct {
	ResourceARN string       `yaml:"ResourceARN" json:"ResourceARN"`
	Attachments []Attachment `yaml:"attachments" json:"attachments"`
}

type Attachment struct {
	TransitGatewayAttachmentId string `yaml:"TransitGatewayAttachmentId" json:"TransitGatewayAttachmentId"`
	ResourceType               string `yaml:"ResourceType" json:"ResourceType"`
	ResourceId                 string `yaml:"ResourceId" json:"ResourceId"`
}

// TgwWidgetSet graphs traffic and drops of a transit gateway, first in
// aggregate and then once per attachment. It raises no alarms.
type TgwWidgetSet struct {
	accumulator

	tgwID  string
	region string
}

func NewTgwWidgetSet(res TransitGateway) (*TgwWidgetSet, error) {
	region, tgwID, err := arnResourceID(res.ResourceARN)
	if err != nil {
		return nil, errors.Wrap(err, "transit gateway")
	}

	ws := &TgwWidgetSet{
		tgwID:  tgwID,
		region: region,
	}

	ws.addWidget(banner(fmt.Sprintf("### TGW [%s](%s#TransitGatewayDetails:transitGatewayId=%s) Attachments:%d Peers:%d",
		tgwID, ws.console(), tgwID, len(res.Attachments), CountPeers(res.Attachments))))
	ws.addWidget(ws.trafficRow(map[string]string{
		"TransitGateway": tgwID,
	}))

	for _, attachment := range res.Attachments {
		ws.addWidget(banner(ws.attachmentMarkdown(attachment)))
		ws.addWidget(ws.trafficRow(map[string]string{
			"TransitGateway":           tgwID,
			"TransitGatewayAttachment": attachment.TransitGatewayAttachmentId,
		}))
	}

	return ws, nil
}

func (ws *TgwWidgetSet) TgwID() string {
	return ws.tgwID
}

// CountPeers returns the number of peering attachments.
func CountPeers(attachments []Attachment) int {
	peers := 0
	for _, attachment := range attachments {
		if attachment.ResourceType == AttachmentTypePeering {
			peers++
		}
	}
	return peers
}

func (ws *TgwWidgetSet) console() string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/vpc/home?region=%s", ws.region, ws.region)
}

func (ws *TgwWidgetSet) attachmentMarkdown(attachment Attachment) string {
	id := attachment.TransitGatewayAttachmentId
	vpc := ""
	if attachment.ResourceType == AttachmentTypeVpc {
		vpc = fmt.Sprintf(" - [%s](%s#VpcDetails:VpcId=%s)", attachment.ResourceId, ws.console(), attachment.ResourceId)
	}
	return fmt.Sprintf("**Attachment [%s](%s#TransitGatewayAttachmentDetails:transitGatewayAttachmentId=%s) Type:%s%s**",
		id, ws.console(), id, attachment.ResourceType, vpc)
}

// trafficRow builds the bytes, packets and dropped graphs for one dimension set.
func (ws *TgwWidgetSet) trafficRow(dimensions map[string]string) Row {
	m := func(name string, statistic Statistic) MetricSpec {
		dims := make(map[string]string, len(dimensions))
		for k, v := range dimensions {
			dims[k] = v
		}
		return metric(tgwNamespace, name, statistic, dims)
	}

	return NewRow(
		GraphWidgetSpec{
			Title:  "Bytes In/Out",
			Region: ws.region,
			Left:   []Series{m("BytesIn", StatisticSum)},
			Right:  []Series{m("BytesOut", StatisticSum)},
			Width:  GraphWidth,
			Period: DefaultPeriod,
		},
		GraphWidgetSpec{
			Title:  "Packets In/Out",
			Region: ws.region,
			Left:   []Series{m("PacketsIn", StatisticSum)},
			Right:  []Series{m("PacketsOut", StatisticSum)},
			Width:  GraphWidth,
			Period: DefaultPeriod,
		},
		GraphWidgetSpec{
			Title:  "Dropped packets/bytes",
			Region: ws.region,
			Left: []Series{
				m("PacketsDropCountNoRoute", StatisticSampleCount),
				m("PacketsDropCountBlackhole", StatisticSampleCount),
			},
			Right: []Series{
				m("BytesDropCountNoRoute", StatisticSampleCount),
				m("BytesDropCountBlackhole", StatisticSampleCount),
			},
			Width:  GraphWidth,
			Period: DefaultPeriod,
		},
	)
}
