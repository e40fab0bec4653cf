package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const configHeader = `# shipctl configuration
# Shared by 'shipctl verify' and 'shipctl generate' so every generated
# artifact references the same entry point, port variable, and image.
`

// MarshalYAML renders the install timeout as a duration string so the
// generated file round-trips through the loader.
func (v VerifyConfig) MarshalYAML() (interface{}, error) {
	return map[string]interface{}{
		"strict":         v.Strict,
		"installTimeout": v.InstallTimeout.String(),
	}, nil
}

// DefaultConfigYAML returns the default configuration rendered as a
// commented YAML document, used by 'shipctl init'.
func DefaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing encoder: %w", err)
	}

	return buf.Bytes(), nil
}
