package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nevisdale/nestic/internal/cpu"
	"github.com/pkg/profile"
)

func main() {
	var steps int
	var trace bool
	var profileMode string
	var peek string

	flag.IntVar(&steps, "steps", 0, "Stop after this many instructions (0: until BRK)")
	flag.BoolVar(&trace, "trace", false, "Log every executed instruction")
	flag.StringVar(&profileMode, "profile", "", "Profile the run: cpu or mem")
	flag.StringVar(&peek, "peek", "", "Comma separated addresses to print after the run, e.g. 0x10,0x0200")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] program.bin\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	peekAddrs, err := parseAddrs(peek)
	if err != nil {
		log.Fatalf("-peek: %v", err)
	}

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("-profile: unknown mode %q", profileMode)
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("couldn't read program: %v", err)
	}

	c := cpu.New()
	if trace {
		c.SetTracer(log.New(os.Stderr, "", 0))
	}
	if err := c.Load(program); err != nil {
		log.Fatalf("couldn't load program: %v", err)
	}
	c.Reset()

	if steps > 0 {
		_, err = c.RunSteps(steps)
	} else {
		err = c.Run()
	}

	fmt.Println(c.State())
	for _, addr := range peekAddrs {
		fmt.Printf("$%04X: %02X\n", addr, c.MemRead(addr))
	}
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

func parseAddrs(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	var addrs []uint16
	for _, part := range strings.Split(s, ",") {
		addr, err := strconv.ParseUint(strings.TrimSpace(part), 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %w", part, err)
		}
		addrs = append(addrs, uint16(addr))
	}
	return addrs, nil
}
