package service

import (
	"context"
	"testing"

	"github.com/zenlog/internal/store"
)

type stubMoodAnalyzer struct {
	mood  string
	calls int
}

func (s *stubMoodAnalyzer) AnalyzeMood(ctx context.Context, text string) string {
	s.calls++
	return s.mood
}

func TestShareCreatesMoment(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	analyzer := &stubMoodAnalyzer{mood: "🌅"}
	capture := NewMomentCapture(cs, analyzer)

	moment, err := capture.Share(context.Background(), "Just saw the most beautiful sunset.")
	if err != nil {
		t.Fatalf("failed to share moment: %v", err)
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected one mood analysis, got %d", analyzer.calls)
	}
	if moment.Mood != "🌅" {
		t.Fatalf("unexpected mood: %q", moment.Mood)
	}
	if moment.ID == "" || moment.Date == "" {
		t.Fatalf("expected generated id and time, got %+v", moment)
	}
	if moment.Location != "Current Location" {
		t.Fatalf("unexpected location: %q", moment.Location)
	}

	stored := cs.ListMoments()
	if len(stored) != 1 || stored[0].ID != moment.ID {
		t.Fatalf("expected moment persisted, got %+v", stored)
	}
}

func TestShareRejectsBlankText(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	capture := NewMomentCapture(cs, &stubMoodAnalyzer{mood: "✨"})

	if _, err := capture.Share(context.Background(), "   \n "); err != ErrMomentEmpty {
		t.Fatalf("expected ErrMomentEmpty, got %v", err)
	}
	if got := len(cs.ListMoments()); got != 0 {
		t.Fatalf("expected nothing persisted, got %d", got)
	}
}

func TestSharePrependsToListing(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	if err := cs.SaveMoment(store.Moment{ID: "old", Text: "earlier"}); err != nil {
		t.Fatalf("failed to seed moment: %v", err)
	}

	capture := NewMomentCapture(cs, &stubMoodAnalyzer{mood: "☕"})
	if got := len(capture.Moments()); got != 1 {
		t.Fatalf("expected listing seeded from store, got %d", got)
	}

	moment, err := capture.Share(context.Background(), "coffee spill, classic Monday")
	if err != nil {
		t.Fatalf("failed to share: %v", err)
	}

	moments := capture.Moments()
	if len(moments) != 2 || moments[0].ID != moment.ID || moments[1].ID != "old" {
		t.Fatalf("expected new moment prepended, got %+v", moments)
	}
}

type blockingMoodAnalyzer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingMoodAnalyzer) AnalyzeMood(ctx context.Context, text string) string {
	close(b.started)
	<-b.release
	return DefaultMoodGlyph
}

func TestShareGuardsAgainstReentrantSubmission(t *testing.T) {
	cs := store.NewContentStore(store.NewMemoryKV())
	analyzer := &blockingMoodAnalyzer{started: make(chan struct{}), release: make(chan struct{})}
	capture := NewMomentCapture(cs, analyzer)

	done := make(chan error, 1)
	go func() {
		_, err := capture.Share(context.Background(), "first")
		done <- err
	}()

	<-analyzer.started
	if !capture.Analyzing() {
		t.Fatalf("expected analyzing flag while request in flight")
	}
	if _, err := capture.Share(context.Background(), "second"); err != ErrCaptureBusy {
		t.Fatalf("expected ErrCaptureBusy, got %v", err)
	}

	close(analyzer.release)
	if err := <-done; err != nil {
		t.Fatalf("first share failed: %v", err)
	}
	if got := len(capture.Moments()); got != 1 {
		t.Fatalf("expected exactly one moment, got %d", got)
	}
}
