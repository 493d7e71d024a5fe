package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes c as a YAML profile that Load accepts.
func Dump(w io.Writer, c InputConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode input config: %w", err)
	}
	return enc.Close()
}
