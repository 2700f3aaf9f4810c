// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/intvm/io"
	"github.com/ezrec/intvm/network"
	"github.com/ezrec/intvm/robot"
	"github.com/ezrec/intvm/vm"
)

func main() {
	var program string
	var inputs string
	var chain string
	var ring string
	var all bool
	var paint bool
	var white bool
	var start int64
	var verbose bool

	flag.StringVar(&program, "p", "-", "Program image file")
	flag.StringVar(&inputs, "i", "", "Scripted input words, comma separated")
	flag.StringVar(&chain, "chain", "", "Phase words for a serial chain")
	flag.StringVar(&ring, "ring", "", "Phase words for a feedback ring")
	flag.BoolVar(&all, "a", false, "Search all phase permutations for the best signal")
	flag.BoolVar(&paint, "robot", false, "Drive the painting robot, netpbm on stdout")
	flag.BoolVar(&white, "white", false, "Start the robot on a white panel")
	flag.Int64Var(&start, "start", 0, "Initial signal for a chain or ring")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	src := os.Stdin
	if program != "-" {
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()
		src = inf
	}

	image, err := vm.ParseImage(src)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	switch {
	case chain != "" || ring != "":
		feedback := ring != ""
		text := chain
		if feedback {
			text = ring
		}

		phases, err := vm.ParseImage(strings.NewReader(text))
		if err != nil {
			log.Fatalf("phases: %v", err)
		}

		signal := vm.Word(start)
		if all {
			signal, err = network.MaxSignal(image, phases, feedback, signal)
		} else {
			net := &network.Network{
				Verbose:  verbose,
				Image:    image,
				Phases:   phases,
				Feedback: feedback,
			}
			signal, err = net.Run(signal)
		}
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(signal)
	case paint:
		rb := robot.New()
		if white {
			rb.Panels[robot.Point{}] = robot.COLOR_WHITE
		}

		mach := vm.New(image, rb)
		mach.Verbose = verbose
		if err := mach.Run(); err != nil {
			log.Fatal(err)
		}

		if verbose {
			log.Printf("robot: painted %v panels", rb.Painted())
		}
		if err := rb.Render(os.Stdout); err != nil {
			log.Fatal(err)
		}
	case inputs != "":
		script := &io.Script{}
		script.Values, err = vm.ParseImage(strings.NewReader(inputs))
		if err != nil {
			log.Fatalf("inputs: %v", err)
		}

		mach := vm.New(image, script)
		mach.Verbose = verbose
		if err := mach.Run(); err != nil {
			log.Fatal(err)
		}

		for _, value := range script.Emitted {
			fmt.Println(value)
		}
	default:
		con := &io.Console{Input: os.Stdin, Output: os.Stdout}

		mach := vm.New(image, con)
		mach.Verbose = verbose
		if err := mach.Run(); err != nil {
			log.Fatal(err)
		}
	}
}
