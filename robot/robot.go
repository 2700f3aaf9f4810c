// Package robot implements the painting robot: a grid-walking client of
// the word machine. It binds the machine's I/O capability to a panel
// grid, answering each input request with the color under the robot and
// consuming outputs alternately as paint and steering commands.
package robot

import (
	"fmt"
	"io"

	"github.com/ezrec/intvm/translate"
	"github.com/ezrec/intvm/vm"
)

var f = translate.From

// Color of a panel.
type Color int

//go:generate go tool stringer -linecomment -type=Color
const (
	COLOR_BLACK = Color(0) // black
	COLOR_WHITE = Color(1) // white
)

// Point is a panel position. Y grows downward.
type Point struct {
	X, Y int
}

// ErrCommand reports an output word outside the robot's vocabulary.
type ErrCommand vm.Word

func (ec ErrCommand) Error() string {
	return f("bad robot command %v", vm.Word(ec))
}

// Robot walks a panel grid, reporting the color under itself on every
// input request and consuming outputs in pairs: first a color to paint,
// then a turn direction followed by one step forward. The machine never
// sees the grid; the alternation is the robot's own two-state toggle.
type Robot struct {
	Position Point
	Heading  Point
	Panels   map[Point]Color

	turning bool
}

var _ vm.Handler = (*Robot)(nil)

// New creates a robot at the origin, facing up, over an unpainted grid.
func New() (rb *Robot) {
	rb = &Robot{
		Heading: Point{0, -1},
		Panels:  map[Point]Color{},
	}

	return
}

// Receive reports the color under the robot; unpainted panels are black.
func (rb *Robot) Receive() (value vm.Word, err error) {
	value = vm.Word(rb.Panels[rb.Position])

	return
}

// Send consumes the next output word: a paint color, then a turn
// command (0 left, 1 right) that also advances the robot one step.
func (rb *Robot) Send(value vm.Word) (err error) {
	if value != 0 && value != 1 {
		err = ErrCommand(value)
		return
	}

	if !rb.turning {
		rb.Panels[rb.Position] = Color(value)
		rb.turning = true
		return
	}

	if value == 0 {
		rb.Heading = Point{rb.Heading.Y, -rb.Heading.X}
	} else {
		rb.Heading = Point{-rb.Heading.Y, rb.Heading.X}
	}
	rb.Position.X += rb.Heading.X
	rb.Position.Y += rb.Heading.Y
	rb.turning = false

	return
}

// Painted returns the number of panels painted at least once.
func (rb *Robot) Painted() int {
	return len(rb.Panels)
}

// Bounds returns the corners of the painted region.
func (rb *Robot) Bounds() (lo Point, hi Point) {
	first := true
	for pt := range rb.Panels {
		if first {
			lo, hi = pt, pt
			first = false
			continue
		}
		lo.X = min(lo.X, pt.X)
		lo.Y = min(lo.Y, pt.Y)
		hi.X = max(hi.X, pt.X)
		hi.Y = max(hi.Y, pt.Y)
	}

	return
}

// Render writes the painted region as a netpbm P1 bitmap. White panels
// are blank (0) pixels, everything else is set (1).
func (rb *Robot) Render(out io.Writer) (err error) {
	lo, hi := rb.Bounds()

	_, err = fmt.Fprintf(out, "P1\n%d %d\n", hi.X-lo.X+1, hi.Y-lo.Y+1)
	if err != nil {
		return
	}

	for y := lo.Y; y <= hi.Y; y++ {
		line := make([]byte, 0, hi.X-lo.X+2)
		for x := lo.X; x <= hi.X; x++ {
			if rb.Panels[Point{x, y}] == COLOR_WHITE {
				line = append(line, '0')
			} else {
				line = append(line, '1')
			}
		}
		line = append(line, '\n')

		_, err = out.Write(line)
		if err != nil {
			return
		}
	}

	return
}
