// Command actionterm runs an input profile in a terminal, fed by tcell key
// and mouse events, and prints every action's state each frame.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/devices"
	"github.com/automoto/actionmap/scenes"
	"github.com/automoto/actionmap/systems"
	"github.com/automoto/actionmap/termsource"
	"github.com/gdamore/tcell/v2"
	flag "github.com/spf13/pflag"
)

type terminal struct {
	screen    tcell.Screen
	scene     *scenes.ActionScene
	collector *termsource.Collector
	quit      chan struct{}
}

func newTerminal(profile config.InputConfig, hold float64) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	devs := config.Devices{
		Keyboard: devices.NewKeyboard(config.DeviceKeyboard),
		Mouse:    devices.NewMouse(config.DeviceMouse),
		Left:     devices.NewXR(config.DeviceXRLeft, devices.Left),
		Right:    devices.NewXR(config.DeviceXRRight, devices.Right),
	}
	collector := termsource.New(devs.Keyboard, devs.Mouse, 100)
	collector.HoldTimeout = hold

	// Seed the viewport; later sizes arrive as resize events
	w, h := screen.Size()
	collector.Handle(tcell.NewEventResize(w, h))

	return &terminal{
		screen:    screen,
		scene:     scenes.NewActionScene(profile, devs, collector),
		collector: collector,
		quit:      make(chan struct{}),
	}, nil
}

// poll forwards screen events to the collector until Ctrl-C.
func (t *terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
			close(t.quit)
			return
		}
		t.collector.Handle(ev)
	}
}

func (t *terminal) run(frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	go t.poll()

	for {
		select {
		case <-t.quit:
			return nil
		case <-ticker.C:
			if err := t.scene.Update(); err != nil {
				return err
			}
			t.draw()
		}
	}
}

func (t *terminal) draw() {
	t.screen.Clear()
	t.print(0, 0, tcell.StyleDefault.Bold(true), "actionterm: Ctrl-C quits")

	input := t.scene.Input()
	for i := 0; i < input.Manager.Len(); i++ {
		a := input.Manager.Action(i)
		style := tcell.StyleDefault
		if a.Running() {
			style = style.Foreground(tcell.ColorYellow)
		}
		t.print(0, i+2, style, systems.DescribeAction(a))
	}
	t.screen.Show()
}

func (t *terminal) print(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func main() {
	path := flag.StringP("config", "c", "", "input profile to load (yaml, json or toml)")
	hold := flag.Float64("hold", termsource.DefaultHoldTimeout, "seconds a key stays held after its last repeat")
	logPath := flag.String("log", "", "write the action event log to this file")
	flag.Parse()

	// The screen owns stdout
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		config.Debug.LogEvents = false
	}

	profile := config.Input
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load input profile: %v\n", err)
			os.Exit(1)
		}
		profile = loaded
	}

	term, err := newTerminal(profile, *hold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = term.run(time.Duration(profile.FrameTime * float64(time.Second)))
	term.screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
