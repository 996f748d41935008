package kmst

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the run configuration consumed by the solver binary.
type Config struct {
	Instances   []string `json:"instances"`
	Formulation string   `json:"formulation"` // MTZ, SCF or MCF
	Solver      string   `json:"solver"`      // gurobi (ortools is rejected, see Backend)
	DataPath    string   `json:"data_path"`
	TimeLimit   float64  `json:"time_limit,omitempty"` // engine wall clock budget in seconds, 0 = none
}

// LoadConfig reads a JSON configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("kmst: bad config %s: %s", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration before any instance is processed.
func (c *Config) Validate() error {
	if len(c.Instances) == 0 {
		return fmt.Errorf("kmst: no instances configured")
	}
	if _, err := ParseFormulation(c.Formulation); err != nil {
		return err
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("kmst: negative time limit %g", c.TimeLimit)
	}
	if _, err := Backend(c.Solver, c.TimeLimit); err != nil {
		return err
	}
	return nil
}
