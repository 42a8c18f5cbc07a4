package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PackageList is the serialised analyzer output
type PackageList struct {
	Packages []*Package `json:"packages" yaml:"packages"`
}

// DecodePackages decodes YAML or JSON package data, either a "packages" document or a plain sequence.
func DecodePackages(data []byte) ([]*Package, error) {
	node := &yaml.Node{}
	if err := yaml.Unmarshal(data, node); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		var packages []*Package
		if err := node.Decode(&packages); err != nil {
			return nil, fmt.Errorf("failed to decode packages: %w", err)
		}
		return packages, nil
	case yaml.MappingNode:
		list := &PackageList{}
		if err := node.Decode(list); err != nil {
			return nil, fmt.Errorf("failed to decode packages: %w", err)
		}
		return list.Packages, nil
	}
	return nil, fmt.Errorf("unsupported packages document kind: %v", node.Kind)
}
