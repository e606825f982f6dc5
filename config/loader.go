package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/COMOCO0102/Game-plan/constants"
)

const (
	// EnvPrefix scopes environment overrides, e.g. GAMEPLAN_GRID_SIZE
	EnvPrefix = "GAMEPLAN"

	defaultConfigRelPath = "configs/game-plan.yaml"
)

var ErrConfigNotFound = errors.New("config file not found")

// Loader reads defaults, .env, environment and an optional YAML file into a validated Config
type Loader struct {
	v        *viper.Viper
	path     string
	validate *validator.Validate
}

// NewLoader prepares a loader. An explicit path must exist; without one
// configs/game-plan.yaml is searched upward from the working directory and may be absent.
func NewLoader(path string) (*Loader, error) {
	// missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if resolved != "" {
		v.SetConfigFile(resolved)
	}

	return &Loader{
		v:        v,
		path:     resolved,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.size", constants.GridSize)
	v.SetDefault("grid.wall_density", constants.WallDensity)
	v.SetDefault("countdown.seconds", constants.MaxCountdown)
	v.SetDefault("countdown.interval", constants.CountdownInterval)
	v.SetDefault("difficulty.level", 0)
	v.SetDefault("keys.up", "w")
	v.SetDefault("keys.down", "s")
	v.SetDefault("keys.left", "a")
	v.SetDefault("keys.right", "d")
	v.SetDefault("keys.wall", "space")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", "logs/game-plan.log")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", false)
	v.SetDefault("log.dev", false)
}

func resolvePath(path string) (string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		if !fileExist(abs) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, abs)
		}
		return abs, nil
	}

	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigUpward(curDir), nil
}

// findConfigUpward returns the first configs/game-plan.yaml above startDir, "" if none
func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}

// Path returns the config file in use, "" when running on defaults and environment only
func (l *Loader) Path() string {
	return l.path
}

// Load reads the file (if any) and returns the validated configuration
func (l *Loader) Load() (Config, error) {
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", l.path, err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := l.v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := l.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and key bindings
func (l *Loader) Validate(cfg Config) error {
	if err := l.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Bindings(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Watch calls onChange with the re-read configuration whenever the file changes.
// Without a config file there is nothing to watch and Watch returns false.
func (l *Loader) Watch(onChange func(Config, error)) bool {
	if l.path == "" {
		return false
	}
	l.v.OnConfigChange(func(fsnotify.Event) {
		onChange(l.decode())
	})
	l.v.WatchConfig()
	return true
}
