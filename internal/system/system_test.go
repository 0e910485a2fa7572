package system

import (
	"math"
	"testing"
	"time"

	"go-avoid-enemies/internal/component"
	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/event"
	"go-avoid-enemies/internal/types"
	"go-avoid-enemies/internal/utils"
	"go-avoid-enemies/pkg/geom"
)

const eps = 1e-9

type fakeInput struct {
	pos     geom.Vec2
	clicked bool
}

func (f *fakeInput) CursorPosition() geom.Vec2 { return f.pos }
func (f *fakeInput) JustClicked() bool        { return f.clicked }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func newWorld(playerX, playerY float64) *entity.ECS {
	ecs := entity.NewECS(64)
	ecs.PlayerID = ecs.NewEntity()
	ecs.Positions[ecs.PlayerID] = &component.Position{X: playerX, Y: playerY}
	ecs.Players[ecs.PlayerID] = &component.Player{}
	return ecs
}

func newSpawner(ecs *entity.ECS, seed int64, d *event.Dispatcher) *SpawnSystem {
	return NewSpawnSystem(ecs, utils.NewPRNGService(seed), d, NewMovementSystem(ecs, 500*time.Millisecond), SpawnConfig{
		Interval:     100 * time.Millisecond,
		ScreenWidth:  920,
		ScreenHeight: 920,
		EnemySpeed:   300,
		Sprite:       "Entity.Enemy",
	})
}

func TestPlayerFollowsCursor(t *testing.T) {
	ecs := newWorld(0, 0)
	input := &fakeInput{}
	s := NewPlayerSystem(ecs, input)

	for _, p := range []geom.Vec2{{X: 10, Y: 20}, {X: -300, Y: 5000}, {X: 919.5, Y: 0.25}} {
		input.pos = p
		s.Update()
		if got := ecs.Positions[ecs.PlayerID].Vec(); got != p {
			t.Errorf("Expected player at %v, got %v", p, got)
		}
	}
}

func TestSpawnRetargetsImmediately(t *testing.T) {
	ecs := newWorld(100, 100)
	s := newSpawner(ecs, 1, event.NewDispatcher())

	id := s.Spawn(geom.Vec2{})
	dir := ecs.Enemies[id].Direction
	want := math.Sqrt2 / 2
	if math.Abs(dir.X-want) > eps || math.Abs(dir.Y-want) > eps {
		t.Errorf("Expected direction (%.3f, %.3f), got %v", want, want, dir)
	}
	if ecs.Enemies[id].TargetID != ecs.PlayerID {
		t.Errorf("Expected target %d, got %d", ecs.PlayerID, ecs.Enemies[id].TargetID)
	}
	if ecs.Sprites[id].Name != "Entity.Enemy" {
		t.Errorf("Unexpected sprite %q", ecs.Sprites[id].Name)
	}
}

func TestRetargetIsUnitVector(t *testing.T) {
	ecs := newWorld(0, 0)
	m := NewMovementSystem(ecs, 500*time.Millisecond)
	s := newSpawner(ecs, 3, event.NewDispatcher())
	id := s.Spawn(geom.Vec2{X: 1, Y: 1})

	targets := []geom.Vec2{{X: 460, Y: 17}, {X: -3, Y: 900}, {X: 1, Y: 0.999}, {X: 1000, Y: 1000}}
	for _, target := range targets {
		ecs.Positions[ecs.PlayerID].Set(target)
		m.Retarget(id)
		if l := ecs.Enemies[id].Direction.Len(); math.Abs(l-1) > eps {
			t.Errorf("Expected unit direction toward %v, got length %f", target, l)
		}
	}
}

func TestRetargetOnTargetStops(t *testing.T) {
	ecs := newWorld(50, 50)
	s := newSpawner(ecs, 1, event.NewDispatcher())
	id := s.Spawn(geom.Vec2{X: 50, Y: 50})
	if dir := ecs.Enemies[id].Direction; dir != (geom.Vec2{}) {
		t.Errorf("Expected zero direction on target, got %v", dir)
	}
}

func TestMovementAdvance(t *testing.T) {
	ecs := newWorld(0, 0)
	m := NewMovementSystem(ecs, 500*time.Millisecond)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 10, Y: 20}
	dir := geom.Vec2{X: 0.6, Y: -0.8}
	ecs.AddEnemy(id, &component.Enemy{TargetID: ecs.PlayerID, Direction: dir, Speed: 300, RetargetTimer: *utils.NewStopwatch(true)})

	dt := 1.0 / 60
	m.Update(dt)
	got := ecs.Positions[id].Vec()
	want := geom.Vec2{X: 10 + dir.X*300*dt, Y: 20 + dir.Y*300*dt}
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if ecs.Enemies[id].Direction != dir {
		t.Errorf("Expected direction unchanged before retarget, got %v", ecs.Enemies[id].Direction)
	}
}

func TestMovementExactAxisStep(t *testing.T) {
	ecs := newWorld(1000, 0)
	m := NewMovementSystem(ecs, 500*time.Millisecond)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 0, Y: 0}
	ecs.AddEnemy(id, &component.Enemy{TargetID: ecs.PlayerID, Direction: geom.Vec2{X: 1}, Speed: 300, RetargetTimer: *utils.NewStopwatch(true)})

	m.Update(0.25)
	if got := ecs.Positions[id].Vec(); got != (geom.Vec2{X: 75}) {
		t.Errorf("Expected (75, 0), got %v", got)
	}
}

func TestMovementRetargetCadence(t *testing.T) {
	ecs := newWorld(0, 500)
	m := NewMovementSystem(ecs, 500*time.Millisecond)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 0, Y: 0}
	ecs.AddEnemy(id, &component.Enemy{TargetID: ecs.PlayerID, Direction: geom.Vec2{X: 1}, Speed: 0, RetargetTimer: *utils.NewStopwatch(true)})

	// 0.4 s: ещё рано
	for i := 0; i < 4; i++ {
		m.Update(0.1)
	}
	if d := ecs.Enemies[id].Direction; d != (geom.Vec2{X: 1}) {
		t.Fatalf("Expected no retarget before 500ms, got %v", d)
	}

	m.Update(0.1)
	if d := ecs.Enemies[id].Direction; math.Abs(d.X) > eps || math.Abs(d.Y-1) > eps {
		t.Errorf("Expected retarget toward (0, 1) after 500ms, got %v", d)
	}
	if ms := ecs.Enemies[id].RetargetTimer.Ms(); ms != 0 {
		t.Errorf("Expected retarget timer reset, got %dms", ms)
	}
}

func TestSpawnPointsOnEdges(t *testing.T) {
	ecs := newWorld(0, 0)
	s := newSpawner(ecs, 12345, event.NewDispatcher())
	seen := map[int]bool{}

	for i := 0; i < 2000; i++ {
		p := s.SpawnPoint()
		switch {
		case p.Y == 0:
			seen[EdgeTop] = true
		case p.Y == 920:
			seen[EdgeBottom] = true
		case p.X == 0:
			seen[EdgeLeft] = true
		case p.X == 920:
			seen[EdgeRight] = true
		default:
			t.Fatalf("Spawn point %v is not on a window edge", p)
		}
		if p.X < 0 || p.X > 920 || p.Y < 0 || p.Y > 920 {
			t.Fatalf("Spawn point %v is outside the window", p)
		}
	}
	if len(seen) != edgeCount {
		t.Errorf("Expected all %d edges to be used, got %v", edgeCount, seen)
	}
}

func TestSpawnCadence(t *testing.T) {
	ecs := newWorld(460, 460)
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec, event.EnemySpawned)
	s := newSpawner(ecs, 9, d)

	// Таймер не запущен: ничего не появляется
	for i := 0; i < 10; i++ {
		s.Update(0.05)
	}
	if len(ecs.EnemyOrder) != 0 || s.Elapsed() != 0 {
		t.Fatalf("Expected no spawns before Start, got %d (elapsed %v)", len(ecs.EnemyOrder), s.Elapsed())
	}

	s.Start()
	s.Update(0.05)
	if len(ecs.EnemyOrder) != 0 {
		t.Fatalf("Expected no spawn after 50ms, got %d", len(ecs.EnemyOrder))
	}
	s.Update(0.05)
	if len(ecs.EnemyOrder) != 1 {
		t.Fatalf("Expected one spawn after 100ms, got %d", len(ecs.EnemyOrder))
	}

	// Длинный кадр даёт только одного врага
	s.Update(0.5)
	if len(ecs.EnemyOrder) != 2 {
		t.Errorf("Expected at most one spawn per frame, got %d", len(ecs.EnemyOrder))
	}
	if len(rec.events) != 2 {
		t.Errorf("Expected 2 EnemySpawned events, got %d", len(rec.events))
	}

	s.Pause()
	s.Update(1)
	if len(ecs.EnemyOrder) != 2 {
		t.Errorf("Expected no spawns while paused, got %d", len(ecs.EnemyOrder))
	}
}

func TestSpawnCap(t *testing.T) {
	ecs := newWorld(460, 460)
	s := NewSpawnSystem(ecs, utils.NewPRNGService(5), event.NewDispatcher(), NewMovementSystem(ecs, time.Second), SpawnConfig{
		Interval: 100 * time.Millisecond, ScreenWidth: 920, ScreenHeight: 920, EnemySpeed: 300, MaxEnemies: 3,
	})
	s.Start()
	for i := 0; i < 20; i++ {
		s.Update(0.1)
	}
	if len(ecs.EnemyOrder) != 3 {
		t.Errorf("Expected spawning capped at 3, got %d", len(ecs.EnemyOrder))
	}
}

func TestCollisionAndGameOver(t *testing.T) {
	ecs := newWorld(100, 100)
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec, event.PlayerCaught, event.EnemyContact)
	states := NewStateSystem(ecs, d)
	collisions := NewCollisionSystem(ecs, d)

	place := func(x, y float64) types.EntityID {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{X: x, Y: y}
		ecs.AddEnemy(id, &component.Enemy{TargetID: ecs.PlayerID})
		return id
	}
	place(300, 300)

	if !states.Start() {
		t.Fatal("Expected Start to leave paused state")
	}
	if states.Start() {
		t.Error("Expected second Start to be a no-op")
	}
	if n := collisions.Update(); n != 0 || states.Current() != component.RunningState {
		t.Fatalf("Expected no contact, got %d contacts, state %v", n, states.Current())
	}

	place(132, 132)
	place(90, 140)
	if n := collisions.Update(); n != 2 {
		t.Errorf("Expected 2 contacts, got %d", n)
	}
	if states.Current() != component.GameOverState {
		t.Fatalf("Expected gameover, got %v", states.Current())
	}

	// Игрок ушёл, но gameover не снимается
	ecs.Positions[ecs.PlayerID].Set(geom.Vec2{X: 800, Y: 800})
	collisions.Update()
	collisions.Update()
	if states.Current() != component.GameOverState {
		t.Errorf("Expected gameover to be permanent, got %v", states.Current())
	}
	if states.Start() {
		t.Error("Expected Start to fail after gameover")
	}

	caught := 0
	for _, e := range rec.events {
		if e.Type == event.PlayerCaught {
			caught++
		}
	}
	if caught != 1 {
		t.Errorf("Expected exactly one PlayerCaught event, got %d", caught)
	}
}
