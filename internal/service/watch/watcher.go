// Package watch is the continuous checker: a two-state machine that, while
// active, re-analyzes a session's mesh whenever its topology fingerprint
// changes and announces newly introduced problems for a short while.
package watch

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/swtya/meshlint/internal/service/lint"
	"github.com/swtya/meshlint/internal/session"
)

var (
	ErrAlreadyWatching = errors.New("continuous check already active")
	ErrNotWatching     = errors.New("continuous check not active")
)

// AnnounceTimeout is how long an announcement stays up before the next
// notification is allowed to clear it.
const AnnounceTimeout = 3 * time.Second

// Stream is the change-notification subscription boundary the watcher
// attaches to while active.
type Stream interface {
	Attach(session.Handler)
	Detach()
}

// Sink receives the transient announcement. An empty string clears it.
type Sink interface {
	SetMessage(string)
}

// Watcher caches the previous analysis and topology fingerprint between
// notifications. The caches survive a stop/start cycle on purpose: toggling
// the checker off and on must not re-announce unchanged state, and a mesh
// swapped in the meantime is caught by the fingerprint's data identity.
type Watcher struct {
	stream   Stream
	sink     Sink
	analyzer *lint.Analyzer
	timeout  time.Duration
	now      func() time.Time

	mu           sync.Mutex
	active       bool
	prevAnalysis *lint.Analysis
	prevCounts   *lint.TopologyCounts
	complainedAt time.Time
	pending      bool
}

func New(stream Stream, sink Sink, analyzer *lint.Analyzer, timeout time.Duration) *Watcher {
	if timeout <= 0 {
		timeout = AnnounceTimeout
	}
	return &Watcher{
		stream:   stream,
		sink:     sink,
		analyzer: analyzer,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Start transitions INACTIVE -> ACTIVE and subscribes to the change stream.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active {
		return ErrAlreadyWatching
	}
	w.active = true
	w.stream.Attach(w.HandleChange)
	slog.Info("continuous check started")
	return nil
}

// Stop transitions ACTIVE -> INACTIVE, unsubscribes and clears any pending
// announcement. The analysis caches are kept.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.active {
		return ErrNotWatching
	}
	w.active = false
	w.stream.Detach()
	w.sink.SetMessage("")
	w.pending = false
	slog.Info("continuous check stopped")
	return nil
}

func (w *Watcher) IsActive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// HandleChange is the change-notification callback. It no-ops unless the
// session is a live edit-mode session on a mesh; otherwise it recomputes
// the analysis when the topology fingerprint moved, announces strict growth,
// and opportunistically expires a stale announcement.
func (w *Watcher) HandleChange(s *session.Session) {
	m := s.EditingMesh()
	if m == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	counts := w.analyzer.Snapshot(m)
	if w.prevCounts == nil || !counts.Equal(*w.prevCounts) {
		analysis := w.analyzer.Analyze(m, s.EnabledChecks())
		if msg := lint.Diff(w.prevAnalysis, analysis); msg != "" {
			w.sink.SetMessage(msg)
			w.complainedAt = w.now()
			w.pending = true
			slog.Info("lint announcement", "session", s.ID, "message", msg)
		}
		w.prevCounts = &counts
		w.prevAnalysis = &analysis
	}

	if w.pending && w.now().Sub(w.complainedAt) > w.timeout {
		w.sink.SetMessage("")
		w.pending = false
	}
}
