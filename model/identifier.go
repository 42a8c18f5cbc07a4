package model

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Identifier uniquely identifies a package within a dependency graph.
type Identifier struct {
	Type      string `json:"type" yaml:"type"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
}

// ToCoordinates returns the "type:namespace:name:version" form of the identifier.
func (i Identifier) ToCoordinates() string {
	return strings.Join([]string{i.Type, i.Namespace, i.Name, i.Version}, ":")
}

// String returns the identifier coordinates
func (i Identifier) String() string {
	return i.ToCoordinates()
}

// ParseIdentifier parses "type:namespace:name:version" coordinates. Missing
// trailing components are left empty.
func ParseIdentifier(coordinates string) Identifier {
	parts := strings.SplitN(coordinates, ":", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return Identifier{Type: parts[0], Namespace: parts[1], Name: parts[2], Version: parts[3]}
}

// UnmarshalYAML accepts either a mapping or a coordinates scalar
func (i *Identifier) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*i = ParseIdentifier(node.Value)
		return nil
	}
	type identifier Identifier
	var decoded identifier
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*i = Identifier(decoded)
	return nil
}
