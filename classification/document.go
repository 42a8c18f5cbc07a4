package classification

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Category describes a license category
type Category struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Categorization assigns a license to categories
type Categorization struct {
	ID         string   `json:"id" yaml:"id"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Document is the serialised license classification
type Document struct {
	Categories      []*Category       `json:"categories,omitempty" yaml:"categories,omitempty"`
	Categorizations []*Categorization `json:"categorizations,omitempty" yaml:"categorizations,omitempty"`
}

// Table converts the document into a category table. Categorizations that
// refer to an undeclared category are rejected when categories are declared.
func (d *Document) Table() (Table, error) {
	declared := map[string]bool{}
	for _, category := range d.Categories {
		if category == nil || category.Name == "" {
			return nil, fmt.Errorf("category name was empty")
		}
		if declared[category.Name] {
			return nil, fmt.Errorf("duplicate category %v", category.Name)
		}
		declared[category.Name] = true
	}
	table := Table{}
	for _, categorization := range d.Categorizations {
		if categorization == nil || categorization.ID == "" {
			return nil, fmt.Errorf("categorization license id was empty")
		}
		for _, name := range categorization.Categories {
			if len(declared) > 0 && !declared[name] {
				return nil, fmt.Errorf("license %v refers to undeclared category %v", categorization.ID, name)
			}
			table[name] = append(table[name], categorization.ID)
		}
	}
	return table, nil
}

// Decode decodes YAML or JSON classification data. Besides the document form
// a plain "category: [ids]" mapping is accepted.
func Decode(data []byte) (Table, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode license classifications: %w", err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return Table{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to decode license classifications: expected mapping but had %v", root.Tag)
	}
	if isDocument(root) {
		document := &Document{}
		if err := root.Decode(document); err != nil {
			return nil, fmt.Errorf("failed to decode license classifications: %w", err)
		}
		return document.Table()
	}
	table := Table{}
	if err := root.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode license classifications: %w", err)
	}
	return table, nil
}

func isDocument(node *yaml.Node) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case "categories", "categorizations":
			return true
		}
	}
	return false
}

// Load loads classification table from URL using the supplied storage service.
func Load(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (Table, error) {
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load license classifications from %s: %w", URL, err)
	}
	table, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return table, nil
}
