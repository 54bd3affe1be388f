package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sierpinski/internal/app"
	"sierpinski/internal/render"
	"sierpinski/internal/sims/elementary"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	engine := cfg.Engine()
	if err := engine.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger.SetOutput(os.Stderr)
	}
	logger.Printf("starting Rule 90 simulation\n%s", engine.Parameters())

	// Without a window the grid goes straight to the terminal row by row.
	if cfg.Output == "" && !app.HasDisplay {
		if err := streamText(engine); err != nil && !render.IsBrokenPipe(err) {
			log.Fatal(err)
		}
		return
	}

	start := time.Now()
	grid, err := elementary.EvolveConfig(ctx, engine)
	if err != nil {
		log.Fatalf("evolve: %v", err)
	}
	logger.Printf("simulation finished in %s: %d active cells", time.Since(start).Round(time.Microsecond), grid.Active())

	if cfg.Output != "" {
		if err := render.WriteFile(cfg.Output, grid, cfg.Format, cfg.Scale); err != nil {
			log.Fatal(err)
		}
		logger.Printf("wrote %s", cfg.Output)
		return
	}

	logger.Printf("displaying %q", app.Title(grid.H))
	if err := app.Run(grid, cfg); err != nil {
		log.Fatal(err)
	}
}

func streamText(engine elementary.Config) error {
	tw := render.NewTextWriter(os.Stdout)
	err := elementary.Stream(engine.Width, engine.Generations, func(_ int, row []uint8) error {
		return tw.WriteRow(row)
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}
