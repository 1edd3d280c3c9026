package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/roadgrid/classify"
	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/search"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log output formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Config is the decoded settings file.
type Config struct {
	Classifier Classifier `toml:"classifier"`
	Routing    Routing    `toml:"routing"`
	Depot      *Point     `toml:"depot"`
	Log        Log        `toml:"log"`
	Incidents  []Incident `toml:"incidents"`
}

// Classifier holds image classification settings.
type Classifier struct {
	Threshold int `toml:"threshold"`
}

// Routing selects the search strategy.
type Routing struct {
	Tier     string `toml:"tier"`
	Strategy string `toml:"strategy"`
}

// Point is a raster cell.
type Point struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// Node converts p to a graph node.
func (p Point) Node() graph.Node { return graph.Node{X: p.X, Y: p.Y} }

// Log holds logger settings.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Incident is a pre-reported emergency.
type Incident struct {
	X           int    `toml:"x"`
	Y           int    `toml:"y"`
	Tier        string `toml:"tier"`
	Description string `toml:"description"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Classifier: Classifier{Threshold: classify.DefaultThreshold},
		Routing:    Routing{Tier: search.TierStandard.String()},
		Log:        Log{Level: "info", Format: FormatText},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads TOML from r over Default and validates the result.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if t := c.Classifier.Threshold; t < 0 || t > 255 {
		errs = append(errs, fmt.Errorf("classifier.threshold %d outside [0, 255]", t))
	}
	if _, err := search.ParseTier(c.Routing.Tier); err != nil {
		errs = append(errs, fmt.Errorf("routing.tier: %w", err))
	}
	if c.Routing.Strategy != "" {
		if _, err := search.ParseStrategy(c.Routing.Strategy); err != nil {
			errs = append(errs, fmt.Errorf("routing.strategy: %w", err))
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := c.Formatter(); err != nil {
		errs = append(errs, err)
	}
	for i, inc := range c.Incidents {
		if _, err := search.ParseTier(inc.Tier); err != nil {
			errs = append(errs, fmt.Errorf("incidents[%d].tier: %w", i, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Strategy returns the routing strategy: the explicit override when set,
// otherwise the strategy of the configured tier.
func (c *Config) Strategy() (search.Strategy, error) {
	if c.Routing.Strategy != "" {
		return search.ParseStrategy(c.Routing.Strategy)
	}
	tier, err := search.ParseTier(c.Routing.Tier)
	if err != nil {
		return 0, err
	}
	return search.StrategyFor(tier), nil
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Formatter maps log.format to a charm log formatter. An empty format means
// text.
func (c *Config) Formatter() (log.Formatter, error) {
	switch strings.ToLower(c.Log.Format) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("log.format %q: want text, json or logfmt", c.Log.Format)
}
