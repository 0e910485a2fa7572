package utils

import "time"

// Stopwatch — таймер, который копит время кадров.
// Пока он на паузе, Advance ничего не делает.
type Stopwatch struct {
	elapsed time.Duration
	running bool
}

// NewStopwatch создает таймер; startImmediately запускает его сразу.
func NewStopwatch(startImmediately bool) *Stopwatch {
	return &Stopwatch{running: startImmediately}
}

// Start запускает или возобновляет отсчёт без сброса.
func (s *Stopwatch) Start() {
	s.running = true
}

func (s *Stopwatch) Pause() {
	s.running = false
}

func (s *Stopwatch) IsPaused() bool {
	return !s.running
}

// Restart обнуляет накопленное время и запускает таймер.
func (s *Stopwatch) Restart() {
	s.elapsed = 0
	s.running = true
}

// Advance добавляет deltaTime секунд к работающему таймеру.
func (s *Stopwatch) Advance(deltaTime float64) {
	if !s.running || deltaTime <= 0 {
		return
	}
	s.elapsed += time.Duration(deltaTime * float64(time.Second))
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Ms возвращает накопленное время в миллисекундах.
func (s *Stopwatch) Ms() int64 {
	return s.elapsed.Milliseconds()
}
