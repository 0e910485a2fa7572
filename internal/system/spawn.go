package system

import (
	"time"

	"go-avoid-enemies/internal/component"
	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/event"
	"go-avoid-enemies/internal/types"
	"go-avoid-enemies/internal/utils"
	"go-avoid-enemies/pkg/geom"
)

// Стороны сцены, с которых появляются враги
const (
	EdgeTop = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	edgeCount
)

// SpawnConfig — параметры появления врагов
type SpawnConfig struct {
	Interval     time.Duration
	ScreenWidth  int
	ScreenHeight int
	EnemySpeed   float64
	MaxEnemies   int // 0 — без ограничения
	Sprite       string
}

// SpawnSystem создаёт врагов на краях сцены с фиксированным интервалом
type SpawnSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	movement        *MovementSystem
	cfg             SpawnConfig
	timer           *utils.Stopwatch
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, movement *MovementSystem, cfg SpawnConfig) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		movement:        movement,
		cfg:             cfg,
		timer:           utils.NewStopwatch(false), // Запускается первым кликом
	}
}

// Start возобновляет таймер появления.
func (s *SpawnSystem) Start() {
	s.timer.Start()
}

// Pause останавливает таймер появления без сброса.
func (s *SpawnSystem) Pause() {
	s.timer.Pause()
}

func (s *SpawnSystem) Elapsed() time.Duration {
	return s.timer.Elapsed()
}

// Update создаёт не больше одного врага за кадр: лишнее накопленное время отбрасывается.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer.Advance(deltaTime)
	if s.timer.IsPaused() || s.timer.Elapsed() < s.cfg.Interval {
		return
	}
	s.timer.Restart()

	if s.cfg.MaxEnemies > 0 && len(s.ecs.EnemyOrder) >= s.cfg.MaxEnemies {
		return
	}
	s.Spawn(s.SpawnPoint())
}

// SpawnPoint выбирает случайную сторону сцены и случайную точку на ней.
func (s *SpawnSystem) SpawnPoint() geom.Vec2 {
	w, h := s.cfg.ScreenWidth, s.cfg.ScreenHeight
	switch edge := s.rng.Intn(edgeCount); edge {
	case EdgeTop, EdgeBottom:
		return geom.Vec2{X: float64(s.rng.Intn(w)), Y: float64(h * edge)}
	default:
		return geom.Vec2{X: float64(w * (edge - EdgeLeft)), Y: float64(s.rng.Intn(h))}
	}
}

// Spawn создаёт врага в точке pos, нацеленного на игрока.
func (s *SpawnSystem) Spawn(pos geom.Vec2) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Sprites[id] = &component.Sprite{Name: s.cfg.Sprite}
	s.ecs.AddEnemy(id, &component.Enemy{
		TargetID:      s.ecs.PlayerID,
		Speed:         s.cfg.EnemySpeed,
		RetargetTimer: *utils.NewStopwatch(true),
	})
	s.movement.Retarget(id)

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}
