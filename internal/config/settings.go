package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings — параметры запуска, которые можно переопределить файлом config.toml.
type Settings struct {
	ScreenWidth        int     `toml:"screen_width"`
	ScreenHeight       int     `toml:"screen_height"`
	EntitySize         float64 `toml:"entity_size"`
	SpawnIntervalMs    int     `toml:"spawn_interval_ms"`
	RetargetIntervalMs int     `toml:"retarget_interval_ms"`
	EnemySpeed         float64 `toml:"enemy_speed"`
	MaxEnemies         int     `toml:"max_enemies"`
	HaltOnGameOver     bool    `toml:"halt_on_gameover"`
	Seed               int64   `toml:"seed"`
	PlayerSprite       string  `toml:"player_sprite"`
	EnemySprite        string  `toml:"enemy_sprite"`
	ShowRegions        bool    `toml:"show_regions"`
	ShowHUD            bool    `toml:"show_hud"`
	PprofAddr          string  `toml:"pprof_addr"`
	WindowTitle        string  `toml:"window_title"`
}

// Default возвращает настройки, совпадающие с константами пакета.
func Default() Settings {
	return Settings{
		ScreenWidth:        ScreenWidth,
		ScreenHeight:       ScreenHeight,
		EntitySize:         EntitySize,
		SpawnIntervalMs:    SpawnInterval,
		RetargetIntervalMs: RetargetTime,
		EnemySpeed:         EnemyMoveSpeed,
		MaxEnemies:         MaxEnemies,
		Seed:               DefaultSeed,
		PlayerSprite:       DefaultSprite,
		EnemySprite:        DefaultSprite,
		WindowTitle:        DefaultTitle,
	}
}

// Load читает TOML поверх значений по умолчанию.
// Отсутствующий файл не считается ошибкой.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("WARNING: unknown settings key %q in %s", key.String(), path)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Save записывает настройки в TOML.
func (s Settings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}

func (s Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0:
		return fmt.Errorf("screen_width must be positive, got %d", s.ScreenWidth)
	case s.ScreenHeight <= 0:
		return fmt.Errorf("screen_height must be positive, got %d", s.ScreenHeight)
	case s.EntitySize <= 0:
		return fmt.Errorf("entity_size must be positive, got %g", s.EntitySize)
	case s.SpawnIntervalMs <= 0:
		return fmt.Errorf("spawn_interval_ms must be positive, got %d", s.SpawnIntervalMs)
	case s.RetargetIntervalMs <= 0:
		return fmt.Errorf("retarget_interval_ms must be positive, got %d", s.RetargetIntervalMs)
	case s.EnemySpeed < 0:
		return fmt.Errorf("enemy_speed must not be negative, got %g", s.EnemySpeed)
	case s.MaxEnemies < 0:
		return fmt.Errorf("max_enemies must not be negative, got %d", s.MaxEnemies)
	case s.PlayerSprite == "" || s.EnemySprite == "":
		return errors.New("player_sprite and enemy_sprite must be set")
	}
	return nil
}

func (s Settings) SpawnInterval() time.Duration {
	return time.Duration(s.SpawnIntervalMs) * time.Millisecond
}

func (s Settings) RetargetInterval() time.Duration {
	return time.Duration(s.RetargetIntervalMs) * time.Millisecond
}
