package scenes

import (
	"io/fs"
	"time"

	"github.com/automoto/navpatrol/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// Simulation runs the patrol world without a window.
type Simulation struct {
	ecs      *ecs.ECS
	tickRate int
	ticks    int
	running  bool
	stopChan chan struct{}

	// OnTick, if set, runs after every tick with the tick count.
	OnTick func(e *ecs.ECS, tick int)
}

func NewSimulation(fsys fs.FS, tickRate int) *Simulation {
	return &Simulation{
		ecs:      NewPatrolWorld(fsys, false, nil),
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until Stop is called.
func (s *Simulation) Run() {
	s.running = true
	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	log.Info("simulation started", "tps", s.tickRate)

	for {
		select {
		case <-s.stopChan:
			s.running = false
			log.Info("simulation stopped", "ticks", s.ticks)
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// RunTicks advances n ticks as fast as possible.
func (s *Simulation) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func (s *Simulation) Stop() {
	close(s.stopChan)
}

// Step runs one tick.
func (s *Simulation) Step() {
	s.ecs.Update()
	s.ticks++
	if s.OnTick != nil {
		s.OnTick(s.ecs, s.ticks)
	}
}

func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) Ticks() int {
	return s.ticks
}

// WaitForAssets delivers queued loads between ticks until none are pending or the timeout
// passes. It reports whether everything arrived.
func (s *Simulation) WaitForAssets(timeout time.Duration) bool {
	entry, ok := components.Loading.First(s.ecs.World)
	if !ok {
		return true
	}
	loader := components.Loading.Get(entry).Loader
	deadline := time.Now().Add(timeout)
	for loader.Pending() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
		loader.Poll()
	}
	return true
}
