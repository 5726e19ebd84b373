package model

// Offset is a cell position relative to a pattern anchor
type Offset struct {
	Row    int
	Column int
}

// Pattern is a named constellation of live cells
type Pattern struct {
	Name  string
	Cells []Offset
}

var (
	// Glider travels one cell down and one cell right every four generations
	Glider = Pattern{
		Name:  "glider",
		Cells: []Offset{{0, 0}, {1, 1}, {2, -1}, {2, 0}, {2, 1}},
	}

	// Exploder burns through several generations before settling
	Exploder = Pattern{
		Name:  "exploder",
		Cells: []Offset{{0, 0}, {1, -1}, {1, 0}, {1, 1}, {2, -1}, {2, 1}, {3, 0}},
	}

	// Blinker alternates between horizontal and vertical with period 2
	Blinker = Pattern{
		Name:  "blinker",
		Cells: []Offset{{0, 0}, {0, 1}, {0, 2}},
	}

	// Block is a 2x2 still life
	Block = Pattern{
		Name:  "block",
		Cells: []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}

	// Beehive is a six cell still life, stood on its end
	Beehive = Pattern{
		Name:  "beehive",
		Cells: []Offset{{0, 0}, {1, -1}, {1, 1}, {2, -1}, {2, 1}, {3, 0}},
	}

	staticPatterns = [...]Pattern{Block, Beehive}
)

// Source supplies uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Placement records where a pattern was stamped
type Placement struct {
	Pattern Pattern
	Row     int
	Column  int
}

// Stamp sets every cell of p alive relative to (row, column). Existing cells are kept.
func (g *Grid) Stamp(p Pattern, row, column int) {
	for _, o := range p.Cells {
		g.Set(row+o.Row, column+o.Column, true)
	}
}

// randomAnchor draws row from [0, height] and column from [0, width], both inclusive.
// An anchor on the upper bound wraps to 0.
func (g *Grid) randomAnchor(rng Source) (int, int) {
	row := rng.IntN(g.height + 1)
	column := rng.IntN(g.width + 1)
	return row, column
}

func (g *Grid) stampRandom(p Pattern, rng Source) Placement {
	row, column := g.randomAnchor(rng)
	g.Stamp(p, row, column)
	return Placement{Pattern: p, Row: row, Column: column}
}

// AddGlider adds a glider at a random anchor
func (g *Grid) AddGlider(rng Source) Placement {
	return g.stampRandom(Glider, rng)
}

// AddExploder adds an exploder at a random anchor
func (g *Grid) AddExploder(rng Source) Placement {
	return g.stampRandom(Exploder, rng)
}

// AddOscillator adds a blinker oscillator at a random anchor
func (g *Grid) AddOscillator(rng Source) Placement {
	return g.stampRandom(Blinker, rng)
}

// AddStatic adds either a block or a beehive, chosen with equal odds, at a random anchor
func (g *Grid) AddStatic(rng Source) Placement {
	row, column := g.randomAnchor(rng)
	p := staticPatterns[rng.IntN(len(staticPatterns))]
	g.Stamp(p, row, column)
	return Placement{Pattern: p, Row: row, Column: column}
}
