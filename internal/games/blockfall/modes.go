package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the shape set a game draws from.
type Mode string

const (
	ModeStandard Mode = "standard" // seven tetrominoes, standard kicks
	ModeClassic  Mode = "classic"  // L, J, O and a two-state I with sideways kicks
	ModeBar      Mode = "bar"      // the I piece only
	ModeCustom   Mode = "custom"   // shapes from the configuration file
)

// Modes returns every built-in mode in display order.
func Modes() []Mode {
	return []Mode{ModeStandard, ModeClassic, ModeBar, ModeCustom}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeStandard:
		return "Blockfall"
	case ModeClassic:
		return "Blockfall (Classic)"
	case ModeBar:
		return "Blockfall (Bars Only)"
	case ModeCustom:
		return "Blockfall (Custom Shapes)"
	default:
		return string(m)
	}
}

// Catalog returns the mode's built-in shapes. Custom mode starts from the
// standard set until Configure installs the configured shapes.
func (m Mode) Catalog() *engine.Catalog {
	switch m {
	case ModeClassic:
		return engine.ClassicCatalog()
	case ModeBar:
		return engine.BarCatalog()
	default:
		return engine.StandardCatalog()
	}
}

func init() {
	for _, m := range Modes() {
		registry.Register(string(m), func() registry.Game {
			return New(m)
		})
	}
}
