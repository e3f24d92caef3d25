package main

import (
	"github.com/rs/zerolog"

	"github.com/30Piraten/widgetsets/inventory"
	"github.com/30Piraten/widgetsets/widgetset"
)

// builtWidgetSets is everything the dashboard is assembled from.
type builtWidgetSets struct {
	sets         []widgetset.WidgetSet
	regionalRows []widgetset.Row
}

// buildWidgetSets creates one builder per inventory resource: AppSync APIs,
// then ECS services cluster by cluster, then transit gateways. Each AppSync
// region gets one regional row, whose alarm is kept by the first API seen in
// that region.
func buildWidgetSets(inv *inventory.Inventory, log zerolog.Logger) (*builtWidgetSets, error) {
	built := &builtWidgetSets{}

	regionOwners := map[string]bool{}
	var regional []*widgetset.AppsyncWidgetSet
	for _, api := range inv.AppSync {
		ws, err := widgetset.NewAppsyncWidgetSet(api)
		if err != nil {
			return nil, err
		}
		built.sets = append(built.sets, ws)
		if !regionOwners[ws.Region()] {
			regionOwners[ws.Region()] = true
			regional = append(regional, ws)
		}
	}
	for _, ws := range regional {
		built.regionalRows = append(built.regionalRows, ws.RegionalMetrics(ws.Region()))
	}

	for _, cluster := range inv.Ecs {
		for _, service := range cluster.Services {
			ws, err := widgetset.NewEcsFargateWidgetSet(service, cluster.ClusterName)
			if err != nil {
				return nil, err
			}
			built.sets = append(built.sets, ws)
		}
	}

	for _, tgw := range inv.TransitGateways {
		ws, err := widgetset.NewTgwWidgetSet(tgw)
		if err != nil {
			return nil, err
		}
		log.Debug().
			Str("transit_gateway", ws.TgwID()).
			Int("attachments", len(tgw.Attachments)).
			Int("peers", widgetset.CountPeers(tgw.Attachments)).
			Msg("Built transit gateway widgets")
		built.sets = append(built.sets, ws)
	}

	log.Info().
		Int("resources", inv.Count()).
		Int("widget_sets", len(built.sets)).
		Int("regional_rows", len(built.regionalRows)).
		Int("alarms", built.alarmCount()).
		Msg("Built widget sets")
	return built, nil
}

func (b *builtWidgetSets) alarmCount() int {
	n := 0
	for _, ws := range b.sets {
		n += len(ws.AlarmSet())
	}
	return n
}
