package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// ShapeConfig describes a custom shape: its rotation-0 cells, how many
// rotation states to derive from them, the pivot, and the fallback kicks
// for every state. The zero kick is always tried first and is not listed.
type ShapeConfig struct {
	Name      string     `yaml:"name"`
	Cells     [][2]int   `yaml:"cells"`
	Rotations int        `yaml:"rotations"`
	Pivot     string     `yaml:"pivot"` // "center" (default) or "corner"
	Kicks     KickConfig `yaml:"kicks"`
}

// KickConfig lists fallback offsets per rotation state and direction.
// Leave both empty for a shape that only rotates in place.
type KickConfig struct {
	CW  [][][2]int `yaml:"cw"`
	CCW [][][2]int `yaml:"ccw"`
}

var errNoShapes = errors.New("config: no custom shapes defined")

func (s ShapeConfig) pivot() (engine.Pivot, error) {
	switch s.Pivot {
	case "", "center":
		return engine.PivotCenter, nil
	case "corner":
		return engine.PivotCorner, nil
	default:
		return engine.PivotCenter, fmt.Errorf("shape %q: unknown pivot %q", s.Name, s.Pivot)
	}
}

func (s ShapeConfig) validate() error {
	if s.Name == "" {
		return errors.New("shape without a name")
	}
	if len(s.Cells) == 0 {
		return fmt.Errorf("shape %q has no cells", s.Name)
	}
	if s.Rotations < 1 {
		return fmt.Errorf("shape %q: rotations must be at least 1, got %d", s.Name, s.Rotations)
	}
	if _, err := s.pivot(); err != nil {
		return err
	}
	if len(s.Kicks.CW) == 0 && len(s.Kicks.CCW) == 0 {
		return nil
	}
	if len(s.Kicks.CW) != s.Rotations || len(s.Kicks.CCW) != s.Rotations {
		return fmt.Errorf("shape %q: %d rotations need %d kick entries per direction, got cw=%d ccw=%d",
			s.Name, s.Rotations, s.Rotations, len(s.Kicks.CW), len(s.Kicks.CCW))
	}
	return nil
}

// Shape compiles the definition into an engine shape.
func (s ShapeConfig) Shape() (*engine.Shape, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	pivot, _ := s.pivot()

	kicks := engine.NewKickTable(kickEntries(s.Kicks.CW, s.Rotations), kickEntries(s.Kicks.CCW, s.Rotations))
	states := engine.BuildRotations(points(s.Cells), s.Rotations, pivot)
	return engine.NewShape(s.Name, states, kicks, pivot), nil
}

// BuildCatalog compiles custom shape definitions into a catalog, keeping
// their order.
func BuildCatalog(defs []ShapeConfig) (*engine.Catalog, error) {
	if len(defs) == 0 {
		return nil, errNoShapes
	}

	seen := make(map[string]bool, len(defs))
	shapes := make([]*engine.Shape, 0, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			return nil, fmt.Errorf("config: shape %q defined twice", def.Name)
		}
		seen[def.Name] = true

		shape, err := def.Shape()
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return engine.NewCatalog(shapes...), nil
}

func points(pairs [][2]int) []core.Point {
	out := make([]core.Point, len(pairs))
	for i, p := range pairs {
		out[i] = core.P(p[0], p[1])
	}
	return out
}

func kickEntries(entries [][][2]int, states int) [][]core.Point {
	out := make([][]core.Point, states)
	for i := range entries {
		out[i] = points(entries[i])
	}
	return out
}
