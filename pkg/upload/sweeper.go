package upload

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Sweeper deletes staged files left behind by requests that never cleaned
// up, for example after a crash.
type Sweeper struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
	log      *slog.Logger
	now      func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
	done     chan struct{}
}

func NewSweeper(dir string, interval, maxAge time.Duration, log *slog.Logger) *Sweeper {
	return &Sweeper{
		dir:      dir,
		maxAge:   maxAge,
		interval: interval,
		log:      log.With("component", "upload-sweeper"),
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the sweep loop.
func (s *Sweeper) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.log.Info("starting", "dir", s.dir, "interval", s.interval, "max_age", s.maxAge)

	go func() {
		defer close(s.done)
		s.Sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopChan:
				s.log.Info("stopped")
				return
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight sweep.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	if s.started.Load() {
		<-s.done
	}
}

// Sweep removes staged files older than maxAge and returns how many.
func (s *Sweeper) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read dir", "error", err)
		}
		return 0
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsStaged(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn("remove stale upload", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.log.Info("removed stale uploads", "count", removed)
	}
	return removed
}
