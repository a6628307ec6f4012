// Package config holds the immutable initialization surface: pool category
// definitions, wave definitions and combat tunables. Loaded once from YAML,
// never mutated afterwards.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wavebreaker/parameter"
)

// PoolCategory defines one recyclable entity category
type PoolCategory struct {
	// Tag groups poolable entities of the same template
	Tag string `yaml:"tag"`

	// TemplateID names the component template applied on acquire
	TemplateID string `yaml:"templateId"`

	// InitialSize is the handle count pre-populated at startup
	InitialSize int `yaml:"initialSize"`
}

// WaveDefinition is one configured batch of enemies
type WaveDefinition struct {
	Name string `yaml:"name"`

	// EnemyCount is the total number of enemies spawned for this wave
	EnemyCount int `yaml:"enemyCount"`

	// SpawnInterval is seconds between spawns within the wave
	SpawnInterval float64 `yaml:"spawnInterval"`
}

// Tunables are the combat and scheduling constants, all seconds/units/points
type Tunables struct {
	AttackRange      float64 `yaml:"attackRange"`
	AttackCooldown   float64 `yaml:"attackCooldown"`
	MoveSpeed        float64 `yaml:"moveSpeed"`
	SpawnRadius      float64 `yaml:"spawnRadius"`
	TimeBetweenWaves float64 `yaml:"timeBetweenWaves"`

	PlayerHealth  int `yaml:"playerHealth"`
	EnemyHealth   int `yaml:"enemyHealth"`
	ContactDamage int `yaml:"contactDamage"`

	ProjectileSpeed     float64 `yaml:"projectileSpeed"`
	ProjectileTTL       float64 `yaml:"projectileTTL"`
	ProjectileHitRadius float64 `yaml:"projectileHitRadius"`
	ProjectileDamage    int     `yaml:"projectileDamage"`

	// ScorePerKill is points awarded through the mediator per enemy death
	ScorePerKill int `yaml:"scorePerKill"`
}

// Config is the complete initialization surface
type Config struct {
	Pools    []PoolCategory   `yaml:"pools"`
	Waves    []WaveDefinition `yaml:"waves"`
	Tunables Tunables         `yaml:"tunables"`
}

// Default returns the built-in configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Pools: []PoolCategory{
			{Tag: parameter.TagEnemy, TemplateID: parameter.TemplateEnemyBasic, InitialSize: parameter.PoolSizeEnemy},
			{Tag: parameter.TagProjectile, TemplateID: parameter.TemplateProjectileBolt, InitialSize: parameter.PoolSizeProjectile},
		},
		Waves: []WaveDefinition{
			{Name: "First Contact", EnemyCount: 3, SpawnInterval: 2.0},
			{Name: "Skirmish", EnemyCount: 5, SpawnInterval: 1.5},
			{Name: "Onslaught", EnemyCount: 8, SpawnInterval: 1.0},
		},
		Tunables: Tunables{
			AttackRange:         parameter.AttackRangeFloat,
			AttackCooldown:      parameter.AttackCooldownFloat,
			MoveSpeed:           parameter.MoveSpeedFloat,
			SpawnRadius:         parameter.SpawnRadiusFloat,
			TimeBetweenWaves:    parameter.TimeBetweenWavesFloat,
			PlayerHealth:        parameter.PlayerInitialHP,
			EnemyHealth:         parameter.EnemyInitialHP,
			ContactDamage:       parameter.EnemyContactDamage,
			ProjectileSpeed:     parameter.ProjectileSpeedFloat,
			ProjectileTTL:       parameter.ProjectileTTLFloat,
			ProjectileHitRadius: parameter.ProjectileHitRadiusFloat,
			ProjectileDamage:    parameter.ProjectileDamage,
			ScorePerKill:        10,
		},
	}
}

// Load reads and validates a YAML configuration file
// Fields absent from the file keep their Default values
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	if len(c.Pools) == 0 {
		return fmt.Errorf("no pool categories configured")
	}
	seen := make(map[string]bool, len(c.Pools))
	for _, p := range c.Pools {
		if p.Tag == "" {
			return fmt.Errorf("pool category with empty tag")
		}
		if seen[p.Tag] {
			return fmt.Errorf("duplicate pool category %q", p.Tag)
		}
		seen[p.Tag] = true
		if p.InitialSize < 0 {
			return fmt.Errorf("pool category %q: negative initial size", p.Tag)
		}
	}

	for i, w := range c.Waves {
		if w.EnemyCount <= 0 {
			return fmt.Errorf("wave %d (%s): enemy count must be positive", i, w.Name)
		}
		if w.SpawnInterval < 0 {
			return fmt.Errorf("wave %d (%s): negative spawn interval", i, w.Name)
		}
	}

	t := c.Tunables
	if t.AttackRange <= 0 || t.MoveSpeed <= 0 || t.SpawnRadius <= 0 {
		return fmt.Errorf("tunables: attackRange, moveSpeed and spawnRadius must be positive")
	}
	if t.PlayerHealth <= 0 {
		return fmt.Errorf("tunables: playerHealth must be positive")
	}
	return nil
}
