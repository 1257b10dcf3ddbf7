package live_test

import (
	"testing"
	"time"

	"github.com/dalemusser/treehub/internal/app/system/live"
	"github.com/dalemusser/treehub/internal/domain/models"
)

func snapshot(names ...string) []models.Tree {
	trees := make([]models.Tree, len(names))
	for i, n := range names {
		trees[i] = models.Tree{UserName: n, Species: "Oak", Count: 1, Latitude: float64(i), Longitude: float64(i)}
	}
	return trees
}

func receive(t *testing.T, ch <-chan live.Update) live.Update {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		return live.Update{}
	}
}

func TestFeed_CurrentStartsEmpty(t *testing.T) {
	f := live.NewFeed()

	u := f.Current()
	if len(u.Trees) != 0 {
		t.Errorf("Trees: got %d, want 0", len(u.Trees))
	}
	if u.View.TotalTrees != 0 || len(u.View.Leaderboard) != 0 {
		t.Errorf("empty feed should derive the zero view, got %+v", u.View)
	}
}

func TestFeed_SetBroadcastsDerivedView(t *testing.T) {
	f := live.NewFeed()
	ch, cancel := f.Subscribe()
	defer cancel()

	f.Set(snapshot("Alice", "Bob"))

	u := receive(t, ch)
	if len(u.Trees) != 2 {
		t.Errorf("Trees: got %d, want 2", len(u.Trees))
	}
	if u.View.TotalTrees != 2 {
		t.Errorf("TotalTrees: got %d, want 2", u.View.TotalTrees)
	}
	if len(u.View.Leaderboard) != 2 {
		t.Errorf("Leaderboard: got %d entries, want 2", len(u.View.Leaderboard))
	}
}

func TestFeed_SlowSubscriberGetsLatestNotBacklog(t *testing.T) {
	f := live.NewFeed()
	ch, cancel := f.Subscribe()
	defer cancel()

	// Nobody reading: these pile onto a capacity-1 channel.
	f.Set(snapshot("Alice"))
	f.Set(snapshot("Alice", "Bob"))
	f.Set(snapshot("Alice", "Bob", "Carol"))

	u := receive(t, ch)
	if len(u.Trees) != 3 {
		t.Errorf("expected the latest snapshot (3 records), got %d", len(u.Trees))
	}

	select {
	case extra := <-ch:
		t.Errorf("expected no queued backlog, got %d-record update", len(extra.Trees))
	default:
	}
}

func TestFeed_UnsubscribeStopsDelivery(t *testing.T) {
	f := live.NewFeed()
	ch, cancel := f.Subscribe()

	if f.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount: got %d, want 1", f.SubscriberCount())
	}

	cancel()
	cancel() // safe to call again

	if f.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount after cancel: got %d, want 0", f.SubscriberCount())
	}

	f.Set(snapshot("Alice"))
	select {
	case <-ch:
		t.Error("canceled subscription should not receive updates")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFeed_MultipleSubscribers(t *testing.T) {
	f := live.NewFeed()
	ch1, cancel1 := f.Subscribe()
	defer cancel1()
	ch2, cancel2 := f.Subscribe()
	defer cancel2()

	f.Set(snapshot("Alice"))

	for _, ch := range []<-chan live.Update{ch1, ch2} {
		u := receive(t, ch)
		if u.View.TotalTrees != 1 {
			t.Errorf("TotalTrees: got %d, want 1", u.View.TotalTrees)
		}
	}
}

func TestFeed_SetNilBehavesAsEmpty(t *testing.T) {
	f := live.NewFeed()
	f.Set(snapshot("Alice"))
	f.Set(nil)

	u := f.Current()
	if u.Trees == nil || len(u.Trees) != 0 {
		t.Errorf("Trees: got %#v, want empty non-nil slice", u.Trees)
	}
	if u.View.TotalTrees != 0 {
		t.Errorf("TotalTrees: got %d, want 0", u.View.TotalTrees)
	}
}
