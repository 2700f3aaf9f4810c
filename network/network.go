// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package network composes word machines into point-to-point pipelines:
// open chains, where the final machine's output stream yields the
// result, and feedback rings, where final outputs are looped back into
// the first machine until every machine halts.
package network

import (
	"errors"
	"log"
	"sync"

	"github.com/ezrec/intvm/internal"
	"github.com/ezrec/intvm/io"
	"github.com/ezrec/intvm/vm"
)

// LINK_DEPTH is the buffer depth of each inter-machine link. A link
// holds at most a phase plus one in-flight signal at a time.
const LINK_DEPTH = 8

// Network runs one machine per phase value, connected in series by word
// links. Machine i consumes link i and produces link i+1; with Feedback
// set, values from the final link are forwarded back into link 0.
//
// Machines share nothing: each owns its memory and registers, and the
// links are the only synchronization points.
type Network struct {
	Verbose  bool      // Set to enable verbose logging.
	Image    []vm.Word // Program image, copied into every machine.
	Phases   []vm.Word // One phase word, seeded per machine before start.
	Feedback bool      // Ring topology: feed final outputs back to the first machine.
}

// Run wires up the machines, seeds one phase per inbound link plus the
// initial signal into the first, and runs every machine on its own
// goroutine. It returns the last value observed on the final link once
// all machines have halted.
func (net *Network) Run(signal vm.Word) (result vm.Word, err error) {
	count := len(net.Phases)

	links := make([]chan vm.Word, count+1)
	for n := range links {
		links[n] = make(chan vm.Word, LINK_DEPTH)
	}

	for n, phase := range net.Phases {
		links[n] <- phase
	}
	links[0] <- signal

	errs := make([]error, count)
	var group sync.WaitGroup
	for n := range count {
		pipe := &io.Pipe{In: links[n], Out: links[n+1]}
		mach := vm.New(net.Image, pipe)
		mach.Verbose = net.Verbose

		group.Add(1)
		go func() {
			defer group.Done()
			defer pipe.Close()

			err := mach.Run()
			if errors.Is(err, io.ErrEndOfStream) {
				// Upstream halted first; normal termination.
				err = nil
			}
			errs[n] = err
		}()
	}

	// The observer is the only agent touching two links, and does so
	// strictly sequentially: read one value, forward it, repeat. The
	// final unconsumed output is the network's answer.
	for value := range links[count] {
		result = value
		if net.Feedback {
			links[0] <- value
		}
	}

	group.Wait()
	err = errors.Join(errs...)

	if net.Verbose {
		log.Printf("network: phases %v signal %v", net.Phases, result)
	}

	return
}

// MaxSignal runs the network once per permutation of phases and returns
// the best final signal.
func MaxSignal(image []vm.Word, phases []vm.Word, feedback bool, signal vm.Word) (best vm.Word, err error) {
	var found bool
	for perm := range internal.Permutations(phases) {
		net := &Network{Image: image, Phases: perm, Feedback: feedback}

		var result vm.Word
		result, err = net.Run(signal)
		if err != nil {
			return
		}

		if !found || result > best {
			found = true
			best = result
		}
	}

	return
}
