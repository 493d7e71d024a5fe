package main

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/devices"
	"github.com/automoto/actionmap/ebitensource"
	"github.com/automoto/actionmap/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	flag "github.com/spf13/pflag"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene     Scene
	collector *ebitensource.Collector
}

func NewGame(profile config.InputConfig) *Game {
	devs := newDevices()

	collector := ebitensource.New(ebitensource.Ebiten, devs.Keyboard, devs.Mouse, devs.Left, devs.Right)
	collector.Deadzone = profile.AnalogDeadzone

	return &Game{
		scene:     scenes.NewActionScene(profile, devs, collector),
		collector: collector,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.collector.SetViewport(config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newDevices() config.Devices {
	return config.Devices{
		Keyboard: devices.NewKeyboard(config.DeviceKeyboard),
		Mouse:    devices.NewMouse(config.DeviceMouse),
		Left:     devices.NewXR(config.DeviceXRLeft, devices.Left),
		Right:    devices.NewXR(config.DeviceXRRight, devices.Right),
	}
}

func main() {
	path := flag.StringP("config", "c", "", "input profile to load (yaml, json or toml)")
	check := flag.Bool("check", false, "build the profile against the default devices and exit")
	dump := flag.Bool("dump-config", false, "print the effective profile as yaml and exit")
	flag.BoolVar(&config.Debug.LogEvents, "log-events", config.Debug.LogEvents, "log action events")
	flag.BoolVar(&config.Debug.LogValues, "log-values", config.Debug.LogValues, "log axis values while an action runs")
	flag.Parse()

	profile := config.Input
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			log.Fatalf("Failed to load input profile: %v", err)
		}
		profile = loaded
	}

	if *dump {
		if err := config.Dump(os.Stdout, profile); err != nil {
			log.Fatalf("Failed to write input profile: %v", err)
		}
		return
	}

	if *check {
		table, err := profile.Build(actions.NewManager(), newDevices())
		if err != nil {
			log.Fatalf("Invalid input profile: %v", err)
		}
		fmt.Printf("%d actions ok\n", len(table))
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(profile)); err != nil {
		log.Fatal(err)
	}
}
