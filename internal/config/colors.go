package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/rain"
)

// Color is a console colour id that reads from YAML as either a number or
// a colour name ("white", "darkgreen") and is written back by name.
type Color int

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var id int
	if err := n.Decode(&id); err == nil {
		*c = Color(id)
		return nil
	}
	id, err := palette.Parse(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = Color(id)
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	if palette.Valid(int(c)) {
		return palette.Name(int(c)), nil
	}
	return int(c), nil
}

// ColorSpec is one explicit colour triple in a config file.
type ColorSpec struct {
	Head Color `yaml:"head"`
	Fade Color `yaml:"fade"`
	Tail Color `yaml:"tail"`
}

func (s ColorSpec) Triple() rain.ColorTriple {
	return rain.ColorTriple{Head: int(s.Head), Fade: int(s.Fade), Tail: int(s.Tail)}
}
