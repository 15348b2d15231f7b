package corral

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config aggregates all gameplay tuning. One sub-config per entity kind.
// DefaultConfig holds the canonical values; a YAML tuning file can override
// any subset of them.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Person PersonConfig `yaml:"person"`
	Cow    CowConfig    `yaml:"cow"`
	Fence  FenceConfig  `yaml:"fence"`
}

// WorldConfig covers the play field and game rules that belong to no single
// entity.
type WorldConfig struct {
	Width       int     `yaml:"width"`        // logical screen width in pixels
	Height      int     `yaml:"height"`       // logical screen height in pixels
	EdgeMargin  float64 `yaml:"edge_margin"`  // inset of the play bounds from the screen edge
	CowCount    int     `yaml:"cow_count"`    // cows spawned at setup
	FollowRange float64 `yaml:"follow_range"` // max distance at which space picks up a cow
	TPS         int     `yaml:"tps"`          // target ticks per second
	SettleTicks int     `yaml:"settle_ticks"` // warm-up ticks run during setup
}

// PersonConfig tunes the player entity.
type PersonConfig struct {
	Speed            float64 `yaml:"speed"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	DistancePerFrame float64 `yaml:"distance_per_frame"`
}

// CowConfig tunes cow movement and behavior.
type CowConfig struct {
	NormalSpeed      float64 `yaml:"normal_speed"`      // random-walk speed
	TargetSpeed      float64 `yaml:"target_speed"`      // speed while following the herder
	TargetPadding    float64 `yaml:"target_padding"`    // close-enough distance per axis
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	DistancePerFrame float64 `yaml:"distance_per_frame"`
}

// FenceConfig tunes the enclosure geometry.
type FenceConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	EdgeWidth    float64 `yaml:"edge_width"`    // thickness of the collision ring
	OpeningWidth float64 `yaml:"opening_width"` // width of the gap in the top edge
}

// DefaultConfig returns the canonical tuning values.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:       960,
			Height:      640,
			EdgeMargin:  50,
			CowCount:    6,
			FollowRange: 50,
			TPS:         60,
			SettleTicks: 10,
		},
		Person: PersonConfig{
			Speed:            150,
			Width:            40,
			Height:           60,
			DistancePerFrame: 20,
		},
		Cow: CowConfig{
			NormalSpeed:      60,
			TargetSpeed:      90,
			TargetPadding:    40,
			Width:            60,
			Height:           45,
			DistancePerFrame: 30,
		},
		Fence: FenceConfig{
			Width:        300,
			Height:       300,
			EdgeWidth:    60,
			OpeningWidth: 80,
		},
	}
}

// LoadConfig returns the default config, overridden by the YAML tuning file
// at path when path is non-empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("corral: read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("corral: parse tuning file %s: %w", path, err)
	}
	return cfg, nil
}
