package network

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intvm/vm"
)

var chainImage = []vm.Word{
	3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0,
}

var ringImage = []vm.Word{
	3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
	27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5,
}

func TestNetwork_Chain(t *testing.T) {
	assert := assert.New(t)

	net := &Network{
		Image:  chainImage,
		Phases: []vm.Word{4, 3, 2, 1, 0},
	}

	signal, err := net.Run(0)
	assert.NoError(err)
	assert.Equal(vm.Word(43210), signal)
}

func TestNetwork_ChainLonger(t *testing.T) {
	assert := assert.New(t)

	net := &Network{
		Image: []vm.Word{
			3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101,
			5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0,
		},
		Phases: []vm.Word{0, 1, 2, 3, 4},
	}

	signal, err := net.Run(0)
	assert.NoError(err)
	assert.Equal(vm.Word(54321), signal)
}

func TestNetwork_Ring(t *testing.T) {
	assert := assert.New(t)

	net := &Network{
		Image:    ringImage,
		Phases:   []vm.Word{9, 8, 7, 6, 5},
		Feedback: true,
	}

	signal, err := net.Run(0)
	assert.NoError(err)
	assert.Equal(vm.Word(139629729), signal)
}

func TestNetwork_RingLonger(t *testing.T) {
	assert := assert.New(t)

	net := &Network{
		Image: []vm.Word{
			3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54,
			5, 55, 1005, 55, 26, 1001, 54, -5, 54, 1105, 1, 12, 1,
			53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55,
			53, 4, 53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10,
		},
		Phases:   []vm.Word{9, 7, 8, 5, 6},
		Feedback: true,
	}

	signal, err := net.Run(0)
	assert.NoError(err)
	assert.Equal(vm.Word(18216), signal)
}

func TestMaxSignal_Chain(t *testing.T) {
	assert := assert.New(t)

	best, err := MaxSignal(chainImage, []vm.Word{0, 1, 2, 3, 4}, false, 0)
	assert.NoError(err)
	assert.Equal(vm.Word(43210), best)
}

func TestMaxSignal_Ring(t *testing.T) {
	assert := assert.New(t)

	best, err := MaxSignal(ringImage, []vm.Word{5, 6, 7, 8, 9}, true, 0)
	assert.NoError(err)
	assert.Equal(vm.Word(139629729), best)
}

func TestNetwork_FaultIsolated(t *testing.T) {
	assert := assert.New(t)

	// Both machines fault on a bad opcode after one exchange; the
	// network reports the fault instead of deadlocking.
	net := &Network{
		Image:  []vm.Word{3, 5, 4, 5, 98, 0, 99},
		Phases: []vm.Word{0, 0},
	}

	_, err := net.Run(0)
	assert.ErrorIs(err, vm.ErrOpcode{})
}
