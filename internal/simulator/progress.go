package simulator

import (
	"context"
	"sync/atomic"
)

type progressReporter struct {
	done chan struct{}
}

// startProgress logs completed hand counts at the configured interval using
// the injected clock, so tests can drive it deterministically. Disabled when
// ProgressEvery is zero.
func (s *Simulator) startProgress(ctx context.Context, played *atomic.Int64) *progressReporter {
	r := &progressReporter{done: make(chan struct{})}
	if s.config.ProgressEvery <= 0 {
		close(r.done)
		return r
	}

	ticker := s.config.Clock.NewTicker(s.config.ProgressEvery, "progress")
	go func() {
		defer close(r.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.config.Logger.Info("simulation progress",
					"played", played.Load(),
					"total", s.config.Hands,
				)
			}
		}
	}()
	return r
}

func (r *progressReporter) wait() {
	<-r.done
}
