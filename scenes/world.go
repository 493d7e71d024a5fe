package scenes

import (
	"image/color"
	"log"
	"sort"
	"sync"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/systems"
	"github.com/automoto/actionmap/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActionScene runs the action manager inside an ECS world, moves a pawn
// with the resulting actions and draws both.
type ActionScene struct {
	ecs        *ecs.ECS
	profile    cfg.InputConfig
	devices    cfg.Devices
	collectors []components.Collector
	once       sync.Once
	err        error
}

// NewActionScene creates a scene binding profile against devs. Nothing
// is built until the first Update.
func NewActionScene(profile cfg.InputConfig, devs cfg.Devices, collectors ...components.Collector) *ActionScene {
	return &ActionScene{profile: profile, devices: devs, collectors: collectors}
}

// Update advances one frame. It returns the profile build error, if any,
// on every call.
func (s *ActionScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.ecs.Update()
	return nil
}

func (s *ActionScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Input returns the scene's input data, nil before the first Update.
func (s *ActionScene) Input() *components.InputData {
	if s.ecs == nil {
		return nil
	}
	entry, ok := components.Input.First(s.ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

func (s *ActionScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input runs first so every later system sees this frame's actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePawn))

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawInputDebug)

	entry, err := factory.CreateInput(ecs, s.profile, s.devices, s.collectors...)
	if err != nil {
		s.err = err
		return
	}
	factory.CreateArena(ecs, cfg.C.Width, cfg.C.Height)
	factory.CreatePawn(ecs, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	s.ecs = ecs

	if cfg.Debug.LogEvents {
		logActionEvents(components.Input.Get(entry).Actions)
	}
}

// logActionEvents subscribes a logger to every event of every action.
func logActionEvents(table map[string]*actions.Action) {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		a := table[id]
		a.Started().Add(func(a *actions.Action) { log.Printf("%s started", a.ID()) })
		a.Ongoing().Add(func(a *actions.Action) {
			if cfg.Debug.LogValues {
				log.Printf("%s", systems.DescribeAction(a))
			}
		})
		a.Canceled().Add(func(a *actions.Action) { log.Printf("%s canceled", a.ID()) })
		a.Completed().Add(func(a *actions.Action) { log.Printf("%s completed: %s", a.ID(), systems.DescribeAction(a)) })
	}
}
