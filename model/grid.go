package model

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus-life/rules"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive side
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Size is the read-only pair of grid dimensions
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Grid is a toroidal Game of Life board. Row and column indices wrap on every access.
type Grid struct {
	width  int
	height int
	cells  [][]bool

	workers int
	pool    *GridPool
}

// Option configures optional Grid behavior
type Option func(*Grid)

// WithWorkers computes each generation in n row bands. Values below 2 keep the sequential path.
func WithWorkers(n int) Option {
	return func(g *Grid) {
		g.workers = n
	}
}

// WithPool recycles the discarded generation buffer through pool
func WithPool(pool *GridPool) Option {
	return func(g *Grid) {
		g.pool = pool
	}
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width=%d height=%d", width, height)
	}
	g := newBlankGrid(width, height)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewSquareGrid creates an all-dead grid whose height equals its width
func NewSquareGrid(width int, opts ...Option) (*Grid, error) {
	return NewGrid(width, width, opts...)
}

func newBlankGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  newCells(width, height),
	}
}

func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Properties returns the configured grid dimensions
func (g *Grid) Properties() Size {
	return Size{Width: g.width, Height: g.height}
}

// reset resizes a pooled grid and clears it
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for _, row := range g.cells {
		clear(row)
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, column int, alive bool) {
	g.cells[wrap(row, g.height)][wrap(column, g.width)] = alive
}

// Alive returns the state of a cell
func (g *Grid) Alive(row, column int) bool {
	return g.cells[wrap(row, g.height)][wrap(column, g.width)]
}

// NeighborCount counts the living cells among the 8 toroidal neighbors of (row, column)
func (g *Grid) NeighborCount(row, column int) int {
	row, column = wrap(row, g.height), wrap(column, g.width)

	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := wrap(row+dr, g.height)
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells[r][wrap(column+dc, g.width)] {
				count++
			}
		}
	}
	return count
}

// Advance computes the next generation into a separate buffer. If it differs
// from the current one it is swapped in and Advance reports true; otherwise the
// grid is left untouched and Advance reports false.
func (g *Grid) Advance() bool {
	next := g.scratch()
	defer GridToPool(next, g.pool)

	g.nextGeneration(next.cells)
	if g.sameCells(next.cells) {
		return false
	}

	g.cells, next.cells = next.cells, g.cells
	return true
}

func (g *Grid) scratch() *Grid {
	if g.pool != nil {
		return g.pool.Get(g.width, g.height)
	}
	return newBlankGrid(g.width, g.height)
}

// nextGeneration writes every cell of the next generation into dst
func (g *Grid) nextGeneration(dst [][]bool) {
	if g.workers <= 1 || g.height < 2 {
		g.nextRows(dst, 0, g.height)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(g.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.nextRows(dst, startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is only a barrier
	_ = eg.Wait()
}

func (g *Grid) nextRows(dst [][]bool, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for column := range g.width {
			dst[row][column] = rules.ApplyConwayRules(g.NeighborCount(row, column), g.cells[row][column])
		}
	}
}

func (g *Grid) sameCells(other [][]bool) bool {
	for row := range g.cells {
		if !slices.Equal(g.cells[row], other[row]) {
			return false
		}
	}
	return true
}

// Equal reports whether both grids have the same dimensions and cell contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	return g.sameCells(other.cells)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}
