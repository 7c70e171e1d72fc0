package snapshot

import (
	"log/slog"
)

// Saver writes snapshots in the background. Mutations call Trigger and move
// on; the saver goroutine serializes whatever state the source reports at
// flush time, so rapid successive triggers coalesce into one write and the
// last write always wins. A save failure is logged and the in-memory state
// stays the only copy of the latest change; no retry, no queued write.
type Saver struct {
	path    string
	source  func() Data
	trigger chan struct{}
	quit    chan struct{}
	done    chan struct{}
}

// NewSaver starts the background goroutine. source must be safe to call from
// another goroutine (the ledger's Snapshot method is).
func NewSaver(path string, source func() Data) *Saver {
	s := &Saver{
		path:    path,
		source:  source,
		trigger: make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Trigger requests a snapshot write. Never blocks; a trigger arriving while
// one is already pending is absorbed.
func (s *Saver) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Close stops the saver after one final synchronous flush.
func (s *Saver) Close() {
	close(s.quit)
	<-s.done
}

func (s *Saver) run() {
	defer close(s.done)
	for {
		select {
		case <-s.trigger:
			s.flush()
		case <-s.quit:
			// absorb a pending trigger, then flush the latest state
			select {
			case <-s.trigger:
			default:
			}
			s.flush()
			return
		}
	}
}

func (s *Saver) flush() {
	if err := Write(s.path, s.source()); err != nil {
		slog.Error("Snapshot save failed", "path", s.path, "error", err)
	}
}
