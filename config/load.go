package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g.
// ACTIONMAP_FRAME_TIME=0.02.
const EnvPrefix = "ACTIONMAP"

// Load reads a binding profile from path. Any format viper understands
// works (YAML, TOML, JSON). Scalar settings missing from the file keep the
// values of the default profile; a file without actions keeps the default
// actions.
func Load(path string) (InputConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("validate", Input.Validate)
	v.SetDefault("frame_time", Input.FrameTime)
	v.SetDefault("analog_deadzone", Input.AnalogDeadzone)

	if err := v.ReadInConfig(); err != nil {
		return InputConfig{}, fmt.Errorf("read input config %s: %w", path, err)
	}

	var c InputConfig
	if err := v.Unmarshal(&c); err != nil {
		return InputConfig{}, fmt.Errorf("decode input config %s: %w", path, err)
	}

	if len(c.Actions) == 0 {
		log.Printf("Warning: %s declares no actions, using the default profile", path)
		c.Actions = Input.Actions
	}
	if c.FrameTime <= 0 {
		log.Printf("Warning: invalid frame_time %v, using %v", c.FrameTime, Input.FrameTime)
		c.FrameTime = Input.FrameTime
	}
	return c, nil
}
