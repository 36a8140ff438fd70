package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pocket32-go/bus"
	"pocket32-go/services/sim"
	"pocket32-go/x/timex"
)

type config struct {
	script string
	tick   time.Duration
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.script, "script", "", "run a command script (\"-\" for stdin) instead of the terminal UI")
	flag.DurationVar(&cfg.tick, "tick", sim.DefaultTick, "UI loop period")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pocketsim [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the pocket tool menu against simulated buttons, LCD, IR and radio.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()
	var err error
	if cfg.script != "" {
		err = runScript(cfg)
	} else {
		err = runTUI(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScript(cfg config) error {
	var src io.Reader = os.Stdin
	if cfg.script != "-" {
		f, err := os.Open(cfg.script)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	return sim.NewRunner(os.Stdout, cfg.tick).Run(src)
}

func runTUI(cfg config) error {
	ctx, cancel := context.WithCancel(context.Background())

	b := bus.NewBus(32)
	m := sim.NewMachine(b, timex.System{})
	model := sim.NewModel(b)
	done := make(chan struct{})
	go func() {
		m.Run(ctx, cfg.tick)
		close(done)
	}()

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	cancel()
	<-done
	m.Close()
	return err
}
