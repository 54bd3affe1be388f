package elementary

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"sierpinski/internal/core"
)

// Config holds parameters for a Rule 90 run.
type Config struct {
	Width       int `json:"width"`
	Generations int `json:"generations"`
	// Workers above one selects the parallel engine.
	Workers int  `json:"workers"`
	Rule    Rule `json:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 401, Generations: 128, Rule: Rule90}
}

// FromMap populates a Config from a string map. Unparsable or out-of-range
// entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON configuration file. Keys missing from the file
// keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects dimensions or worker counts the engine cannot run.
func (c Config) Validate() error {
	if err := validate(c.Width, c.Generations); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidWorkers, "workers %d", c.Workers)
	}
	return nil
}

// Parameters describes the run for renderers and run summaries.
func (c Config) Parameters() core.ParameterSnapshot {
	engine := "sequential"
	if c.Workers > 1 {
		engine = strconv.Itoa(c.Workers) + " workers"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("width", "Width", c.Width),
				intParam("generations", "Generations", c.Generations),
				intParam("seed", "Seed column", c.Width/2),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: "90"},
				{Key: "workers", Label: "Mode", Type: core.ParamTypeString, Value: engine},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
