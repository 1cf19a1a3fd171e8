package content

import (
	"io/fs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	ItemDoc      = "doc"
	ItemCategory = "category"
)

// SidebarItem is a doc reference or a category of items. Draft items are
// kept in the source but never rendered.
type SidebarItem struct {
	Type  string        `yaml:"type"`
	ID    string        `yaml:"id"`
	Label string        `yaml:"label"`
	Items []SidebarItem `yaml:"items"`
	Draft bool          `yaml:"draft"`
}

// UnmarshalYAML accepts a bare string as shorthand for a doc item.
func (i *SidebarItem) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var id string
	if err := unmarshal(&id); err == nil {
		*i = SidebarItem{Type: ItemDoc, ID: id}
		return nil
	}

	type plain SidebarItem
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*i = SidebarItem(p)
	if i.Type == "" {
		if len(i.Items) > 0 || (i.Label != "" && i.ID == "") {
			i.Type = ItemCategory
		} else {
			i.Type = ItemDoc
		}
	}
	return nil
}

// Sidebar is an ordered list of top-level items.
type Sidebar []SidebarItem

// Sidebars maps a sidebar name to its tree.
type Sidebars map[string]Sidebar

// LoadSidebars parses a sidebars YAML file from fsys.
func LoadSidebars(fsys fs.FS, name string) (Sidebars, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var sidebars Sidebars
	if err := yaml.Unmarshal(data, &sidebars); err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}

	for sidebarName, sb := range sidebars {
		if err := sb.validate(); err != nil {
			return nil, errors.Wrapf(err, "sidebar %s", sidebarName)
		}
	}
	return sidebars, nil
}

func (s Sidebar) validate() error {
	for _, it := range s {
		switch it.Type {
		case ItemDoc:
			if it.ID == "" {
				return errors.New("doc item without id")
			}
		case ItemCategory:
			if it.Label == "" {
				return errors.New("category without label")
			}
			if err := Sidebar(it.Items).validate(); err != nil {
				return errors.Wrap(err, it.Label)
			}
		default:
			return errors.Errorf("unknown item type %q", it.Type)
		}
	}
	return nil
}

// Visible returns the tree with draft items removed. Categories left with no
// visible children are removed as well.
func (s Sidebar) Visible() Sidebar {
	out := make(Sidebar, 0, len(s))
	for _, it := range s {
		if it.Draft {
			continue
		}
		if it.Type == ItemCategory {
			children := Sidebar(it.Items).Visible()
			if len(children) == 0 {
				continue
			}
			it.Items = children
		}
		out = append(out, it)
	}
	return out
}

// DocIDs returns the visible doc ids in navigation order.
func (s Sidebar) DocIDs() []string {
	var ids []string
	for _, it := range s.Visible() {
		if it.Type == ItemDoc {
			ids = append(ids, it.ID)
			continue
		}
		ids = append(ids, Sidebar(it.Items).DocIDs()...)
	}
	return ids
}

// Neighbors returns the ids before and after id in navigation order. Either
// may be empty.
func (s Sidebar) Neighbors(id string) (prev, next string) {
	ids := s.DocIDs()
	for i, cur := range ids {
		if cur != id {
			continue
		}
		if i > 0 {
			prev = ids[i-1]
		}
		if i < len(ids)-1 {
			next = ids[i+1]
		}
		return prev, next
	}
	return "", ""
}

// CategoryKey is the translation key for a category label.
func CategoryKey(sidebarName, label string) string {
	return "sidebar." + sidebarName + ".category." + label
}
