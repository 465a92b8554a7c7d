package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLoop_RunsInPostOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := range 5 {
		l.Post(func() { got = append(got, i) })
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	if err := l.Do(ctx, func() { got = append(got, 5) }); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}

	for i, v := range got {
		if v != i {
			t.Fatalf("ran %v, want 0..5 in order", got)
		}
	}
	if len(got) != 6 {
		t.Fatalf("ran %d functions, want 6", len(got))
	}
}

func TestLoop_PostFromManyGoroutines(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx) //nolint:errcheck

	count := 0
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				l.Post(func() { count++ })
			}
		}()
	}
	wg.Wait()

	var got int
	if err := l.Do(ctx, func() { got = count }); err != nil {
		t.Fatal(err)
	}
	if got != 800 {
		t.Fatalf("count = %d, want 800", got)
	}
}

func TestLoop_DoHonorsContext(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Do(ctx, func() {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Do on a stopped loop returned %v", err)
	}
}

func TestInline_RunsImmediately(t *testing.T) {
	ran := false
	Inline{}.Post(func() { ran = true })
	if !ran {
		t.Fatal("Inline did not run the function")
	}
}
