package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "# "
	gridPosDead  = ". "

	clearScreenSeq = "\033[H\033[2J"
)

// String renders one line per row with a two character token per cell
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (len(gridPosDead)*g.width + 1))
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalRenderer writes frames to a text console
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display writes the rendered grid
func (r *TerminalRenderer) Display(g *Grid) error {
	if _, err := io.WriteString(r.out, g.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Println writes a single status line
func (r *TerminalRenderer) Println(a ...any) error {
	if _, err := fmt.Fprintln(r.out, a...); err != nil {
		return errors.Wrap(err, "[Println] failed to write line")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, clearScreenSeq); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
