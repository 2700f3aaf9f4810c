package robot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intvm/vm"
)

func TestRobot_Walk(t *testing.T) {
	assert := assert.New(t)

	rb := New()

	steps := [](struct {
		paint vm.Word
		turn  vm.Word
	}){
		{1, 0}, {0, 0}, {1, 0}, {1, 0}, {0, 1}, {1, 0}, {1, 0},
	}

	for n, step := range steps {
		if n == 4 {
			// Back over the origin, which is now white.
			assert.Equal(Point{0, 0}, rb.Position)
			value, err := rb.Receive()
			assert.NoError(err)
			assert.Equal(vm.Word(1), value)
		}

		assert.NoError(rb.Send(step.paint))
		assert.NoError(rb.Send(step.turn))
	}

	assert.Equal(6, rb.Painted())
	assert.Equal(Point{0, -1}, rb.Position)
	assert.Equal(Point{-1, 0}, rb.Heading)
}

func TestRobot_Machine(t *testing.T) {
	assert := assert.New(t)

	// Output-only program walking the same path as TestRobot_Walk.
	var image []vm.Word
	for _, value := range []vm.Word{1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0} {
		image = append(image, 104, value)
	}
	image = append(image, 99)

	rb := New()
	err := vm.New(image, rb).Run()
	assert.NoError(err)

	assert.Equal(6, rb.Painted())
	assert.Equal(Point{0, -1}, rb.Position)
}

func TestRobot_BadCommand(t *testing.T) {
	assert := assert.New(t)

	rb := New()
	err := rb.Send(2)
	assert.ErrorContains(err, "2")

	var cerr ErrCommand
	assert.ErrorAs(err, &cerr)
	assert.Equal(ErrCommand(2), cerr)
}

func TestRobot_Render(t *testing.T) {
	assert := assert.New(t)

	rb := New()
	rb.Panels[Point{0, 0}] = COLOR_WHITE
	rb.Panels[Point{2, 1}] = COLOR_WHITE
	rb.Panels[Point{1, 0}] = COLOR_BLACK

	out := &bytes.Buffer{}
	assert.NoError(rb.Render(out))
	assert.Equal("P1\n3 2\n011\n110\n", out.String())
}
