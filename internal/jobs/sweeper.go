package jobs

import (
	"context"
	"log"
	"time"
)

// Sweeper runs the escalation engine on a fixed interval. Reads of the
// job list never trigger a sweep; they only observe state this loop
// has already written.
type Sweeper struct {
	engine   *Engine
	interval time.Duration
}

func NewSweeper(engine *Engine, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{engine: engine, interval: interval}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	n, err := s.engine.Sweep(time.Now())
	if err != nil {
		log.Printf("escalation sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("escalation sweep: %d transition(s)", n)
	}
}
