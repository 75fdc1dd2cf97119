package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// The schema document is the single declarative source for a taxonomy:
// categories own groups, groups optionally carry per-position attribute
// rules. Everything else (fallback policy, X sentinel) is behavior, not data.

type schemaDoc struct {
	Categories []schemaCategory `yaml:"categories"`
}

type schemaCategory struct {
	Code        string        `yaml:"code"`
	Description string        `yaml:"description"`
	Groups      []schemaGroup `yaml:"groups"`
}

type schemaGroup struct {
	Code        string       `yaml:"code"`
	Description string       `yaml:"description"`
	Attributes  []schemaRule `yaml:"attributes"`
}

type schemaRule struct {
	Position int           `yaml:"position"`
	Options  []schemaEntry `yaml:"options"`
}

type schemaEntry struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// Parse builds an immutable Taxonomy from a YAML schema document. It rejects
// documents that violate the structural invariants: codes must be single
// uppercase ASCII letters, categories must be unique and own at least one
// group, attribute positions must fall in 3-6 and be unique per pair.
func Parse(data []byte) (*Taxonomy, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy schema: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy schema declares no categories")
	}

	t := &Taxonomy{
		categories: make([]Entry, 0, len(doc.Categories)),
		byCategory: make(map[string]*category, len(doc.Categories)),
	}

	for _, sc := range doc.Categories {
		if err := checkCode(sc.Code); err != nil {
			return nil, fmt.Errorf("category %q: %w", sc.Code, err)
		}
		if _, dup := t.byCategory[sc.Code]; dup {
			return nil, fmt.Errorf("duplicate category %q", sc.Code)
		}
		if len(sc.Groups) == 0 {
			return nil, fmt.Errorf("category %q declares no groups", sc.Code)
		}

		c := &category{
			entry:   Entry{Code: sc.Code, Description: sc.Description},
			groups:  make([]Entry, 0, len(sc.Groups)),
			byGroup: make(map[string]*group, len(sc.Groups)),
		}

		for _, sg := range sc.Groups {
			g, err := parseGroup(sc.Code, sg)
			if err != nil {
				return nil, err
			}
			if _, dup := c.byGroup[sg.Code]; dup {
				return nil, fmt.Errorf("category %q: duplicate group %q", sc.Code, sg.Code)
			}
			c.groups = append(c.groups, g.entry)
			c.byGroup[sg.Code] = g
		}

		t.categories = append(t.categories, c.entry)
		t.byCategory[sc.Code] = c
	}

	return t, nil
}

func parseGroup(categoryCode string, sg schemaGroup) (*group, error) {
	if err := checkCode(sg.Code); err != nil {
		return nil, fmt.Errorf("category %q group %q: %w", categoryCode, sg.Code, err)
	}

	g := &group{
		entry:     Entry{Code: sg.Code, Description: sg.Description},
		positions: make(map[int]*rule, len(sg.Attributes)),
	}

	pair := categoryCode + sg.Code
	for _, sr := range sg.Attributes {
		if sr.Position < MinAttributePosition || sr.Position > MaxAttributePosition {
			return nil, fmt.Errorf("pair %s: attribute position %d out of range", pair, sr.Position)
		}
		if _, dup := g.positions[sr.Position]; dup {
			return nil, fmt.Errorf("pair %s: duplicate rule for position %d", pair, sr.Position)
		}
		if len(sr.Options) == 0 {
			return nil, fmt.Errorf("pair %s position %d: rule declares no options", pair, sr.Position)
		}

		r := &rule{
			options: make([]Entry, 0, len(sr.Options)),
			byCode:  make(map[string]string, len(sr.Options)),
		}
		for _, so := range sr.Options {
			if err := checkCode(so.Code); err != nil {
				return nil, fmt.Errorf("pair %s position %d option %q: %w", pair, sr.Position, so.Code, err)
			}
			if _, dup := r.byCode[so.Code]; dup {
				return nil, fmt.Errorf("pair %s position %d: duplicate option %q", pair, sr.Position, so.Code)
			}
			r.options = append(r.options, Entry{Code: so.Code, Description: so.Description})
			r.byCode[so.Code] = so.Description
		}
		g.positions[sr.Position] = r
	}

	return g, nil
}

// LoadFile parses a taxonomy schema from a YAML file on disk. Used for
// caller-supplied taxonomies; the built-in reference data comes from Default.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy schema: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func checkCode(code string) error {
	if len(code) != 1 || code[0] < 'A' || code[0] > 'Z' {
		return fmt.Errorf("code must be a single uppercase letter, got %q", code)
	}
	return nil
}
