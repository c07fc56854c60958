package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

/*
	{
	"log": { "level": "info" },
	"ai": {
		"enabled": true,
		"color": "white",			// Options: "red" or "white"
		"difficulty": 3,			// 1 (very easy) to 5 (very hard)
		"random_move_chance": 0.3,	// Only used at difficulty 1
		"seed": 0					// 0 seeds from the clock
	},
	"display": { "color": true }
	}
*/

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

type Config struct {
	Log struct {
		Level string `json:"level"`
	} `json:"log"`
	AI struct {
		Enabled          bool     `json:"enabled"`
		Color            string   `json:"color"`
		Difficulty       int      `json:"difficulty"`
		RandomMoveChance *float64 `json:"random_move_chance,omitempty"`
		Seed             int64    `json:"seed"`
	} `json:"ai"`
	Display struct {
		Color bool `json:"color"`
	} `json:"display"`
}

// Global config instance
var Cfg = Default()

// Default is the configuration used when CONFIG_PATH is not set.
func Default() Config {
	var c Config
	c.Log.Level = "info"
	c.AI.Enabled = true
	c.AI.Color = "white"
	c.AI.Difficulty = 3
	c.Display.Color = true
	return c
}

// LoadConfig reads the file named by CONFIG_PATH into Cfg. An unset
// variable keeps the defaults.
func LoadConfig() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil
	}
	c, err := Load(configPath)
	if err != nil {
		return err
	}
	Cfg = c
	return nil
}

// Load decodes the file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	c := Default()

	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("[config] - error opening config file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("[config] - error decoding JSON: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate normalizes the AI section: the color is lowercased and the
// difficulty clamped into [MinDifficulty, MaxDifficulty].
func (c *Config) Validate() error {
	c.AI.Color = strings.ToLower(strings.TrimSpace(c.AI.Color))
	if c.AI.Color != "red" && c.AI.Color != "white" {
		return fmt.Errorf("[config] - ai.color must be \"red\" or \"white\", got %q", c.AI.Color)
	}
	c.AI.Difficulty = ClampDifficulty(c.AI.Difficulty)
	if p := c.AI.RandomMoveChance; p != nil && (*p < 0 || *p > 1) {
		return fmt.Errorf("[config] - ai.random_move_chance must be within [0, 1], got %v", *p)
	}
	return nil
}

func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
