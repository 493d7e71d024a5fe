package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer of the host scene
const Default ecs.LayerID = 0

// Config holds the host window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	LogEvents bool // Log every action event
	LogValues bool // Log axis values while an action is running
}

// Global configuration instances
var C *Config
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "actionmap",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogEvents: true,
		LogValues: false,
	}
}
