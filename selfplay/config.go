package selfplay

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	gm "github.com/petthauk/chess-ml/goosemg"
	"github.com/petthauk/chess-ml/tuner"
)

// Config controls a self-play training session. Zero fields in a loaded file
// keep their defaults.
type Config struct {
	Games      int           `yaml:"games"`
	MoveBudget time.Duration `yaml:"move_budget"`
	MaxNodes   int           `yaml:"max_nodes"` // per decision, 0 = time only
	MaxPlies   int           `yaml:"max_plies"`
	StartFEN   string        `yaml:"start_fen"`
	Seed       int64         `yaml:"seed"`

	// Network shape: hidden layer sizes between the encoder and the single output.
	Hidden     []int `yaml:"hidden"`
	SideToMove bool  `yaml:"side_to_move"`

	Train tuner.TrainConfig `yaml:"train"`
	// Bootstrap enables the per-move update toward the search score.
	Bootstrap   bool    `yaml:"bootstrap"`
	BootstrapLR float64 `yaml:"bootstrap_lr"`

	WeightsPath string `yaml:"weights"`
	ResultsPath string `yaml:"results"`
	PGNDir      string `yaml:"pgn_dir"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Games:       1,
		MoveBudget:  2 * time.Second,
		MaxPlies:    400,
		StartFEN:    gm.FENStartPos,
		Seed:        1,
		Hidden:      []int{30},
		Train:       tuner.DefaultTrainConfig(),
		Bootstrap:   true,
		BootstrapLR: 0.1,
		WeightsPath: "data/weights.json",
		ResultsPath: "data/results.json",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("selfplay: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("selfplay: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the runner cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Games < 0:
		return fmt.Errorf("selfplay: games must be >= 0, got %d", c.Games)
	case c.MaxPlies <= 0:
		return fmt.Errorf("selfplay: max_plies must be > 0, got %d", c.MaxPlies)
	case c.MoveBudget <= 0 && c.MaxNodes <= 0:
		return fmt.Errorf("selfplay: need a move_budget or max_nodes")
	}
	for _, h := range c.Hidden {
		if h <= 0 {
			return fmt.Errorf("selfplay: hidden layer size %d", h)
		}
	}
	if _, err := gm.ParseFEN(c.StartFEN); err != nil {
		return fmt.Errorf("selfplay: start_fen: %w", err)
	}
	return nil
}
