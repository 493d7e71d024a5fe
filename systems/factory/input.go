package factory

import (
	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/archetypes"
	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/devices"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput builds a manager from profile against devs and spawns the
// input entity that UpdateInput drives.
func CreateInput(ecs *ecs.ECS, profile cfg.InputConfig, devs cfg.Devices, collectors ...components.Collector) (*donburi.Entry, error) {
	manager := actions.NewManager()
	table, err := profile.Build(manager, devs)
	if err != nil {
		return nil, err
	}

	var xr []*devices.XR
	for _, hand := range []*devices.XR{devs.Left, devs.Right} {
		if hand != nil {
			xr = append(xr, hand)
		}
	}

	input := archetypes.Input.Spawn(ecs)
	components.Input.Set(input, &components.InputData{
		Manager:    manager,
		Collectors: collectors,
		XR:         xr,
		Actions:    table,
		FrameTime:  profile.FrameTime,
	})
	return input, nil
}
