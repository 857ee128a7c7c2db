// Package config loads game settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// LoggingConfig selects how the developer log is written.
type LoggingConfig struct {
	// Level is the lowest level written.
	Level string `mapstructure:"level"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
	// File redirects log output to a file; empty writes to stderr.
	File string `mapstructure:"file"`
}

// GameConfig holds turn-resolution tuning.
type GameConfig struct {
	// SPConsumption is the SP drained from every character before each of its turns.
	SPConsumption int `mapstructure:"sp_consumption"`
	// PoisonDivisor divides a poisoned character's max HP to get per-turn poison damage.
	PoisonDivisor int `mapstructure:"poison_divisor"`
	// ViewRadius bounds line-of-sight checks for target visibility.
	ViewRadius int `mapstructure:"view_radius"`
	// Locale selects the game-log message catalog, e.g. "en-US".
	Locale string `mapstructure:"locale"`
	// Seed selects a deterministic random source when non-zero.
	Seed uint64 `mapstructure:"seed"`
	// WaitBase is the wait time a speed-100 character accrues per turn.
	WaitBase int `mapstructure:"wait_base"`
	// Player is the character template the player is built from.
	Player string `mapstructure:"player"`
	// MeleeSkill is used when the player walks into a hostile character.
	// Empty disables bump attacks.
	MeleeSkill string `mapstructure:"melee_skill"`
	// LogCapacity bounds the game log.
	LogCapacity int `mapstructure:"log_capacity"`
}

// ContentConfig locates the read-only content tables.
type ContentConfig struct {
	// Dir is the root directory holding skills/, walls/, tiles/, items/ and statuses/.
	Dir string `mapstructure:"dir"`
	// LocaleDir holds the game-log catalogs; empty uses <Dir>/locales.
	LocaleDir string `mapstructure:"locale_dir"`
}

// Locales returns the effective catalog directory.
func (c ContentConfig) Locales() string {
	if c.LocaleDir != "" {
		return c.LocaleDir
	}
	return filepath.Join(c.Dir, "locales")
}

// ScriptingConfig holds Lua settings for custom power routines and NPC
// behaviour preconditions.
type ScriptingConfig struct {
	// PowerDir holds *.lua files defining custom power routines. Empty disables them.
	PowerDir string `mapstructure:"power_dir"`
	// AIDir holds *.lua files defining behaviour preconditions. Empty disables them.
	AIDir string `mapstructure:"ai_dir"`
	// InstructionLimit bounds the opcodes a single routine may execute.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// FrontendConfig holds presentation pacing for the terminal frontend.
type FrontendConfig struct {
	// FramesPerTick scales the declared frame count of every animation.
	FramesPerTick int `mapstructure:"frames_per_tick"`
	// Color enables ANSI color output.
	Color bool `mapstructure:"color"`
}

// Config is the full settings tree.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Game      GameConfig      `mapstructure:"game"`
	Content   ContentConfig   `mapstructure:"content"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
	Frontend  FrontendConfig  `mapstructure:"frontend"`
}

// problems collects every violated invariant.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate checks every section and reports all violations at once.
func (c Config) Validate() error {
	var p problems
	c.Logging.validate(&p)
	c.Game.validate(&p)
	p.require(c.Content.Dir != "", "content.dir must not be empty")
	p.require(c.Scripting.InstructionLimit >= 0, "scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit)
	p.require(c.Frontend.FramesPerTick >= 1, "frontend.frames_per_tick must be >= 1, got %d", c.Frontend.FramesPerTick)
	if len(p) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(p...))
	}
	return nil
}

func (l LoggingConfig) validate(p *problems) {
	p.require(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"logging.level must be debug, info, warn or error, got %q", l.Level)
	p.require(l.Format == "json" || l.Format == "console",
		"logging.format must be json or console, got %q", l.Format)
}

func (g GameConfig) validate(p *problems) {
	p.require(g.SPConsumption >= 0, "game.sp_consumption must be >= 0, got %d", g.SPConsumption)
	p.require(g.PoisonDivisor >= 1, "game.poison_divisor must be >= 1, got %d", g.PoisonDivisor)
	p.require(g.ViewRadius >= 1, "game.view_radius must be >= 1, got %d", g.ViewRadius)
	p.require(g.WaitBase >= 1, "game.wait_base must be >= 1, got %d", g.WaitBase)
	p.require(g.Player != "", "game.player must not be empty")
	p.require(g.LogCapacity >= 1, "game.log_capacity must be >= 1, got %d", g.LogCapacity)
	_, err := language.Parse(g.Locale)
	p.require(err == nil, "game.locale %q is not a BCP 47 tag", g.Locale)
}

// Load reads the YAML file at path over the defaults, lets RUINS_*
// environment variables override any key (RUINS_GAME_SEED for game.seed),
// then validates.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("RUINS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return LoadFromViper(v)
}

// LoadFromViper decodes and validates the settings held by v.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults installs the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("game.sp_consumption", 1)
	v.SetDefault("game.poison_divisor", 20)
	v.SetDefault("game.view_radius", 8)
	v.SetDefault("game.locale", "en-US")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.wait_base", 100)
	v.SetDefault("game.player", "adventurer")
	v.SetDefault("game.melee_skill", "strike")
	v.SetDefault("game.log_capacity", 200)

	v.SetDefault("content.dir", "content")

	v.SetDefault("scripting.instruction_limit", 100_000)

	v.SetDefault("frontend.frames_per_tick", 1)
	v.SetDefault("frontend.color", true)
}
