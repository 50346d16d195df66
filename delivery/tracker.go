package delivery

import (
	"sync"
	"time"
)

// Stage is an index into the fixed delivery-progress sequence
type Stage int

const (
	StageConfirmed Stage = iota
	StagePreparing
	StageOutForDelivery
	StageDelivered
)

// StageInfo carries the display label and nominal elapsed time for a stage
type StageInfo struct {
	Label string `json:"label"`
	ETA   string `json:"eta"`
}

// Stages is the full progress sequence, in order. There are no backward
// transitions and no skips.
var Stages = []StageInfo{
	{Label: "Order Confirmed", ETA: "0 min"},
	{Label: "Preparing Food", ETA: "10 min"},
	{Label: "Out for Delivery", ETA: "25 min"},
	{Label: "Delivered", ETA: "35 min"},
}

// DefaultAdvanceInterval is how often the tracker moves to the next stage
const DefaultAdvanceInterval = 3 * time.Second

func (s Stage) String() string {
	if s < 0 || int(s) >= len(Stages) {
		return "unknown"
	}
	return Stages[s].Label
}

// NextStage returns the stage following s, and false if s is terminal
func NextStage(s Stage) (Stage, bool) {
	if s < 0 || int(s) >= len(Stages)-1 {
		return s, false
	}
	return s + 1, true
}

// Tracker advances a single order through the delivery stages on a fixed
// interval. It starts at StageConfirmed and stops itself once StageDelivered
// is reached; nothing can pause or rewind it.
type Tracker struct {
	mu    sync.Mutex
	stage Stage
	stop  chan struct{}
	once  sync.Once
}

// NewTracker starts a tracker that advances every interval
func NewTracker(interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultAdvanceInterval
	}
	t := &Tracker{stop: make(chan struct{})}
	go t.run(interval)
	return t
}

func (t *Tracker) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if !t.advance() {
				t.Stop()
				return
			}
		case <-t.stop:
			return
		}
	}
}

func (t *Tracker) advance() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, ok := NextStage(t.stage)
	if !ok {
		return false
	}
	t.stage = next
	_, more := NextStage(t.stage)
	return more
}

// Stage returns the current stage
func (t *Tracker) Stage() Stage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stage
}

// Active reports whether the timer is still running
func (t *Tracker) Active() bool {
	select {
	case <-t.stop:
		return false
	default:
		return true
	}
}

// Stop cancels the advance timer. It is called internally when the terminal
// stage is reached and is safe to call more than once.
func (t *Tracker) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// Registry holds active trackers keyed by order ID. Stages are not persisted;
// a tracker exists only for the lifetime of the process.
type Registry struct {
	mu       sync.RWMutex
	trackers map[string]*Tracker
}

// NewRegistry creates an empty tracker registry
func NewRegistry() *Registry {
	return &Registry{trackers: make(map[string]*Tracker)}
}

// Start begins tracking an order. If the order is already tracked the
// existing tracker is returned.
func (r *Registry) Start(orderID string, interval time.Duration) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.trackers[orderID]; ok {
		return t
	}
	t := NewTracker(interval)
	r.trackers[orderID] = t
	return t
}

// Get returns the tracker for an order, if one is active
func (r *Registry) Get(orderID string) (*Tracker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trackers[orderID]
	return t, ok
}
