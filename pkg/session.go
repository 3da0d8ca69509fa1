/*
Scan session lifecycle:

 Start() swaps in a fresh Scanning session and hands its ID to the
 ScanTrigger. The platform answers later, out of band, with a Completion
 carrying that same ID. Run() drains those completions into Complete(),
 which only accepts the ID of the live session. Anything else is a stale
 answer for a session that has since been superseded and is dropped.

              Start()                Complete(id)
   Idle  ────────────────► Scanning ─────────────► Completed
                              ▲                        │
                              └────────────────────────┘
                                       Start()
*/

package wifiscanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type State int

const (
	StateIdle State = iota
	StateScanning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = StateIdle
	case "scanning":
		*s = StateScanning
	case "completed":
		*s = StateCompleted
	default:
		return fmt.Errorf("unknown session state %q", string(b))
	}
	return nil
}

// Session is one scan attempt. Sessions are values: the Scanner never
// mutates one in place, it replaces the whole thing on each transition.
type Session struct {
	ID        string
	StartedAt time.Time
	State     State
	Results   []AccessPointRecord // nil unless Completed
	Elapsed   time.Duration
}

func (s Session) Normalized() []NormalizedRecord {
	return NormalizeAll(s.Results)
}

// SessionView is the json shape of a Session handed to presenters.
type SessionView struct {
	ID        string             `json:"id"`
	StartedAt time.Time          `json:"startedAt"`
	State     State              `json:"state"`
	ElapsedMs int64              `json:"elapsedMs"`
	Results   []NormalizedRecord `json:"results"`
}

func (s Session) View() SessionView {
	return SessionView{
		ID:        s.ID,
		StartedAt: s.StartedAt,
		State:     s.State,
		ElapsedMs: s.Elapsed.Milliseconds(),
		Results:   s.Normalized(),
	}
}

// Scanner owns the single live scan session.
type Scanner struct {
	mu      sync.Mutex
	current Session
	done    chan struct{} // closed when current stops Scanning
	trigger ScanTrigger
	clock   Clock
	log     logrus.FieldLogger
	changes chan Session
}

func NewScanner(trigger ScanTrigger, clock Clock, log logrus.FieldLogger) *Scanner {
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scanner{
		current: Session{State: StateIdle},
		trigger: trigger,
		clock:   clock,
		log:     log,
		changes: make(chan Session, 8),
	}
}

// Start supersedes whatever session is live and asks the platform for a
// new scan. It does not wait for the scan.
func (t *Scanner) Start() Session {
	s := Session{
		ID:        uuid.NewString(),
		StartedAt: t.clock.Now(),
		State:     StateScanning,
	}

	t.mu.Lock()
	if t.current.State == StateScanning {
		t.log.WithField("session", t.current.ID).Debug("superseding in-flight scan")
		close(t.done)
	}
	t.current = s
	t.done = make(chan struct{})
	t.mu.Unlock()

	t.log.WithField("session", s.ID).Info("scan started")
	t.trigger.RequestScan(s.ID)
	return s
}

// Complete stores the results of the session with the given ID. It returns
// false, without touching any state, when that session is no longer the
// live one or has already completed.
func (t *Scanner) Complete(sessionID string, raw []AccessPointRecord) bool {
	t.mu.Lock()
	if t.current.ID != sessionID || t.current.State != StateScanning {
		t.mu.Unlock()
		t.log.WithField("session", sessionID).Debug("ignoring stale scan completion")
		return false
	}

	results := make([]AccessPointRecord, len(raw))
	copy(results, raw)

	s := t.current
	s.State = StateCompleted
	s.Results = results
	s.Elapsed = t.clock.Now().Sub(s.StartedAt)
	t.current = s
	close(t.done)
	t.mu.Unlock()

	t.log.WithFields(logrus.Fields{
		"session": s.ID,
		"elapsed": s.Elapsed.Milliseconds(),
		"count":   len(s.Results),
	}).Info("scan finished")

	select {
	case t.changes <- s:
	default:
		t.log.Debug("couldn't write to change channel")
	}
	return true
}

// Current returns a copy of the live session.
func (t *Scanner) Current() Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.current
	if s.Results != nil {
		results := make([]AccessPointRecord, len(s.Results))
		copy(results, s.Results)
		s.Results = results
	}
	return s
}

// Wait blocks until the session with the given ID completes. It returns
// ErrSuperseded if a newer Start replaced it first, or ctx.Err() if ctx
// ends before either happens. The Scanner itself imposes no timeout.
func (t *Scanner) Wait(ctx context.Context, sessionID string) (Session, error) {
	t.mu.Lock()
	if t.current.ID != sessionID || t.current.State == StateIdle {
		t.mu.Unlock()
		return Session{}, ErrSuperseded
	}
	done := t.done
	t.mu.Unlock()

	select {
	case <-ctx.Done():
		return Session{}, ctx.Err()
	case <-done:
	}

	s := t.Current()
	if s.ID != sessionID || s.State != StateCompleted {
		return Session{}, ErrSuperseded
	}
	return s, nil
}

// Completed sessions are published here. Slow readers miss updates
// rather than stall the Scanner.
func (t *Scanner) GetChangeChannel() <-chan Session {
	return t.changes
}

func (t *Scanner) handleCompletion(c Completion) {
	if c.Err != nil {
		// no retry, the session stays Scanning until superseded
		t.log.WithError(c.Err).WithField("session", c.SessionID).Warn("platform scan failed")
		return
	}
	t.Complete(c.SessionID, c.Results)
}

// Main Scanner goroutine, feeds platform completions into Complete.
func (t *Scanner) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		done := make(chan struct{})
		go func() {
		mainloop:
			for {
				select {
				case <-done:
					break mainloop
				case c, ok := <-t.trigger.Completions():
					if !ok {
						break mainloop
					}
					t.handleCompletion(c)
				}
			}
		}()
		started <- true
		<-stop
		close(done)
		stopped <- true
	}()
	return nil
}
