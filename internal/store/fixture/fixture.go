// Package fixture imports inventories from YAML or JSON files.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/gildedrose/internal/model"
)

// File is the on-disk layout of a fixture: either a bare list of items or
// an "items" key holding one.
type File struct {
	Items []model.Item `yaml:"items"`
}

// Read loads the fixture at path. JSON is accepted since it is valid YAML.
func Read(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	items, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// Parse decodes fixture bytes and validates every item.
func Parse(b []byte) ([]model.Item, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(doc.Content) == 0 {
		return []model.Item{}, nil
	}

	var items []model.Item
	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		var f File
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
		items = f.Items
	} else if err := root.Decode(&items); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	out := make([]model.Item, 0, len(items))
	for i, it := range items {
		v, err := model.NewItem(it.Name, it.SellIn, it.Quality)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
