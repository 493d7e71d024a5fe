// Package termsource feeds action devices from tcell terminal events.
//
// Terminals report key presses and repeats but no key releases, so a key
// counts as held until it has not been seen for HoldTimeout seconds.
//
//	c := termsource.New(keyboard, mouse, 64)
//	go screen.ChannelEvents(c.Events(), quit)
//	for {
//		c.Collect(dt)
//		manager.Update(dt)
//	}
package termsource

import (
	"log"

	"github.com/automoto/actionmap/devices"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTimeout covers the usual key repeat delay of terminals.
const DefaultHoldTimeout = 0.6

// Collector queues tcell events and applies them to a keyboard and a
// mouse once per frame. Nil devices are skipped.
type Collector struct {
	Keyboard *devices.Keyboard
	Mouse    *devices.Mouse

	// HoldTimeout is how long a key stays pressed after its last event,
	// in seconds.
	HoldTimeout float64

	events chan tcell.Event
	held   map[devices.Button]float64
	width  int
	height int
}

// New creates a collector with room for queue pending events.
func New(keyboard *devices.Keyboard, mouse *devices.Mouse, queue int) *Collector {
	return &Collector{
		Keyboard:    keyboard,
		Mouse:       mouse,
		HoldTimeout: DefaultHoldTimeout,
		events:      make(chan tcell.Event, queue),
		held:        make(map[devices.Button]float64),
	}
}

// Events is the queue Collect drains. It can be handed to
// tcell.Screen.ChannelEvents, which closes it when done.
func (c *Collector) Events() chan<- tcell.Event {
	return c.events
}

// Handle queues ev without blocking. It reports false when the queue is
// full and the event was dropped.
func (c *Collector) Handle(ev tcell.Event) bool {
	select {
	case c.events <- ev:
		return true
	default:
		log.Printf("Warning: input queue full, dropping %T", ev)
		return false
	}
}

// Collect ages held keys by dt and applies every queued event.
func (c *Collector) Collect(dt float64) {
	for b, left := range c.held {
		left -= dt
		if left > 0 {
			c.held[b] = left
			continue
		}
		delete(c.held, b)
		if c.Keyboard != nil {
			c.Keyboard.Release(b)
		}
	}

	for c.events != nil {
		select {
		case ev, ok := <-c.events:
			if !ok {
				c.events = nil
				return
			}
			c.apply(ev)
		default:
			return
		}
	}
}

func (c *Collector) apply(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.pressKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventMouse:
		if c.Mouse == nil {
			return
		}
		c.Mouse.SetButtons(rawButtons(ev.Buttons()))
		x, y := ev.Position()
		c.Mouse.Move(float64(x), float64(y), float64(c.width), float64(c.height))
	case *tcell.EventResize:
		c.width, c.height = ev.Size()
		if c.Mouse != nil {
			p := c.Mouse.Absolute()
			c.Mouse.Move(p[0], p[1], float64(c.width), float64(c.height))
		}
	}
}

func (c *Collector) pressKey(key tcell.Key, r rune, mod tcell.ModMask) {
	if c.Keyboard == nil {
		return
	}
	buttons := translateKey(key, r, mod)
	if len(buttons) == 0 {
		return
	}
	for _, b := range buttons {
		c.Keyboard.Press(b)
		c.held[b] = c.HoldTimeout
	}
}

var mouseButtons = [...]struct {
	mask    tcell.ButtonMask
	binding devices.Button
}{
	{tcell.Button1, devices.MousePrimary},
	{tcell.Button2, devices.MouseSecondary},
	{tcell.Button3, devices.MouseAuxiliary},
	{tcell.Button4, devices.MouseFourth},
	{tcell.Button5, devices.MouseFifth},
}

func rawButtons(mask tcell.ButtonMask) uint8 {
	var raw uint8
	for _, b := range mouseButtons {
		if mask&b.mask != 0 {
			raw |= devices.RawMouseButton(b.binding)
		}
	}
	return raw
}
