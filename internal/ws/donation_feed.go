package ws

import (
	"sync"
	"time"
)

// FeedEvent is an anonymized completed donation pushed to the public site's
// live donation wall. No donor identity is ever carried here.
type FeedEvent struct {
	Type        string `json:"type"` // always "donation"
	AmountPaise int64  `json:"amount_paise"`
	Category    string `json:"category"`
	CompletedAt int64  `json:"completed_at"`
}

// FeedHub broadcasts completed donations and replays the most recent ones to
// freshly connected clients.
type FeedHub struct {
	*Hub
	mu      sync.RWMutex
	recent  []FeedEvent
	history int
}

func NewFeedHub(history int) *FeedHub {
	if history <= 0 {
		history = 20
	}
	return &FeedHub{
		Hub:     NewHub(),
		history: history,
	}
}

// Publish records a completed donation and pushes it to all connected clients.
func (f *FeedHub) Publish(amountPaise int64, category string, completedAt time.Time) {
	ev := FeedEvent{
		Type:        "donation",
		AmountPaise: amountPaise,
		Category:    category,
		CompletedAt: completedAt.Unix(),
	}
	f.mu.Lock()
	f.recent = append(f.recent, ev)
	if len(f.recent) > f.history {
		f.recent = f.recent[len(f.recent)-f.history:]
	}
	f.mu.Unlock()
	f.Broadcast(ev)
}

// Recent returns the replay buffer, oldest first.
func (f *FeedHub) Recent() []FeedEvent {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]FeedEvent, len(f.recent))
	copy(out, f.recent)
	return out
}
