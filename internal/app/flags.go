package app

import (
	"flag"
	"strings"

	"sierpinski/internal/render"
	"sierpinski/internal/sims/elementary"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Generations int
	Workers     int

	Scale  int
	TPS    int
	Reveal int

	Output     string
	Format     string
	ConfigFile string
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := elementary.DefaultConfig()
	return &Config{
		Width:       d.Width,
		Generations: d.Generations,
		Workers:     d.Workers,
		Scale:       3,
		TPS:         60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "number of cells per generation")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to compute")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (0 or 1 runs sequentially)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.Reveal, "reveal", c.Reveal, "generations revealed per second in the viewer (0 shows all)")
	fs.StringVar(&c.Output, "o", c.Output, "write the grid to this file instead of displaying it")
	fs.StringVar(&c.Format, "format", c.Format, "output format: "+strings.Join(render.Formats(), ", ")+" (default from -o extension)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with width, generations and workers")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log progress and a run summary to stderr")
}

// Resolve merges ConfigFile, if any, underneath the flags that were set
// explicitly on fs.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}
	file, err := elementary.LoadConfig(c.ConfigFile)
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["width"] {
		c.Width = file.Width
	}
	if !set["generations"] {
		c.Generations = file.Generations
	}
	if !set["workers"] {
		c.Workers = file.Workers
	}
	return nil
}

// Engine returns the evolution parameters.
func (c *Config) Engine() elementary.Config {
	e := elementary.DefaultConfig()
	e.Width = c.Width
	e.Generations = c.Generations
	e.Workers = c.Workers
	return e
}
