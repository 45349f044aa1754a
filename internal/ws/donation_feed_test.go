package ws

import (
	"sync"
	"testing"
	"time"
)

func TestFeedHubHistoryTrim(t *testing.T) {
	feed := NewFeedHub(3)
	now := time.Now()
	for i := 1; i <= 5; i++ {
		feed.Publish(int64(i*100), "Education", now)
	}
	recent := feed.Recent()
	if len(recent) != 3 {
		t.Fatalf("recent len = %d, want 3", len(recent))
	}
	// oldest first: events 3, 4, 5 survive
	if recent[0].AmountPaise != 300 || recent[2].AmountPaise != 500 {
		t.Errorf("recent = %+v", recent)
	}
}

func TestFeedHubBroadcast(t *testing.T) {
	feed := NewFeedHub(10)
	client := &Client{Send: make(chan []byte, 4)}
	feed.Register(client)
	defer client.Close()

	feed.Publish(25000, "Healthcare", time.Now())
	select {
	case msg := <-client.Send:
		if len(msg) == 0 {
			t.Error("empty broadcast payload")
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
}

func TestHubUnregisterOnClose(t *testing.T) {
	hub := NewHub()
	client := &Client{Send: make(chan []byte, 1)}
	hub.Register(client)
	if hub.ClientCount() != 1 {
		t.Fatalf("count = %d", hub.ClientCount())
	}
	client.Close()
	if hub.ClientCount() != 0 {
		t.Errorf("count after close = %d", hub.ClientCount())
	}
	// double close is a no-op
	client.Close()
}

// A viewer disconnecting mid-broadcast must never panic the publisher.
func TestBroadcastDuringClose(t *testing.T) {
	feed := NewFeedHub(10)
	done := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					feed.Publish(100, "Education", time.Now())
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		client := &Client{Send: make(chan []byte, 1)}
		feed.Register(client)
		client.Close()
	}
	close(done)
	wg.Wait()

	if feed.ClientCount() != 0 {
		t.Errorf("count after closes = %d", feed.ClientCount())
	}
}
