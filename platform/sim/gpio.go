//go:build !tinygo && !baremetal

package sim

import "github.com/harveysanders/apblinky/platform"

// GPIO is a simulated output register. Set wins over clear when a bit is in
// both masks.
type GPIO struct {
	out    uint32
	writes int
}

var _ platform.GPIOPort = (*GPIO)(nil)

// Output returns the output register.
func (g *GPIO) Output() uint32 { return g.out }

// SetClear drives the bits in set high and those in clear low.
func (g *GPIO) SetClear(set, clear uint32) {
	g.out = (g.out &^ clear) | set
	g.writes++
}

// Level returns the level driven on pin n.
func (g *GPIO) Level(n uint8) bool { return g.out&platform.Bit(n) != 0 }

// Writes returns how many times SetClear was called.
func (g *GPIO) Writes() int { return g.writes }

// Preset forces the output register without counting a write.
func (g *GPIO) Preset(out uint32) { g.out = out }
