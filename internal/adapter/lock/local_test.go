package lock

import (
	"context"
	"sync"
	"testing"
)

func TestLocalSerializesSameKey(t *testing.T) {
	locker := NewLocal()
	ctx := context.Background()

	const writers = 50

	counter := 0
	var wg sync.WaitGroup
	wg.Add(writers)

	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()

			release, err := locker.Acquire(ctx, "acc-1")
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			defer release()

			// Unsynchronized on purpose; the lock is the only protection.
			counter++
		}()
	}

	wg.Wait()

	if counter != writers {
		t.Errorf("expected %d increments, got %d", writers, counter)
	}
}

func TestLocalIndependentKeys(t *testing.T) {
	locker := NewLocal()
	ctx := context.Background()

	releaseA, err := locker.Acquire(ctx, "acc-a")
	if err != nil {
		t.Fatalf("acquire acc-a: %v", err)
	}
	defer releaseA()

	// Holding acc-a must not block acc-b.
	releaseB, err := locker.Acquire(ctx, "acc-b")
	if err != nil {
		t.Fatalf("acquire acc-b: %v", err)
	}
	releaseB()
}

func TestNopNeverBlocks(t *testing.T) {
	locker := NewNop()

	for i := 0; i < 3; i++ {
		release, err := locker.Acquire(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		release()
	}
}
