package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tabs/pkg/tabs"
)

// Tab kinds understood by Build.
const (
	KindText     = "text"
	KindTextarea = "textarea"
)

// Layout describes a tab panel: where its bar sits, which tabs it holds and
// which one starts active.
type Layout struct {
	Placement tabs.Placement      `yaml:"placement,omitempty"`
	Align     tabs.Align          `yaml:"align,omitempty"`
	Active    string              `yaml:"active,omitempty"`
	Theme     string              `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Border    string              `yaml:"border,omitempty" validate:"omitempty,oneof=normal thick rounded double"`
	Tabs      []Tab               `yaml:"tabs" validate:"required,min=1,dive"`
	Bindings  map[string][]string `yaml:"keys,omitempty" validate:"omitempty,dive,keys,key_action,endkeys,min=1,dive,required"`
}

// Tab is one entry of a layout. A bare string decodes as a text tab with
// that key.
type Tab struct {
	Key         string `yaml:"key" validate:"required,tab_key"`
	Kind        string `yaml:"kind,omitempty" validate:"omitempty,oneof=text textarea"`
	Text        string `yaml:"text,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// UnmarshalYAML accepts either a mapping or a scalar key and defaults the
// kind to text.
func (t *Tab) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = Tab{Key: value.Value, Kind: KindText}
		return nil
	case yaml.MappingNode:
		type rawTab Tab
		var raw rawTab
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*t = Tab(raw)
		if t.Kind == "" {
			t.Kind = KindText
		}
		return nil
	default:
		return fmt.Errorf("line %d: tab must be a key or a mapping", value.Line)
	}
}

// TabKeys returns the tab keys in order.
func (l *Layout) TabKeys() []string {
	keys := make([]string, len(l.Tabs))
	for i, tab := range l.Tabs {
		keys[i] = tab.Key
	}
	return keys
}
