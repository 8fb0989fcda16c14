package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMap_PreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	results, err := Map(context.Background(), 8, items, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(results) != len(items) {
		t.Fatalf("Expected %d results, got %d", len(items), len(results))
	}
	for i, r := range results {
		if r != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, r, i*2)
		}
	}
}

func TestMap_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")

	_, err := Map(context.Background(), 4, []int{1, 2, 3, 4}, func(_ context.Context, n int) (int, error) {
		if n == 3 {
			return 0, fmt.Errorf("item %d: %w", n, wantErr)
		}
		return n, nil
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("Expected wrapped boom error, got %v", err)
	}
}

func TestMap_EmptyInput(t *testing.T) {
	results, err := Map(context.Background(), 4, nil, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestMap_ZeroWorkersClamped(t *testing.T) {
	results, err := Map(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		return n + 1, nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 3 || results[2] != 4 {
		t.Errorf("Unexpected results: %v", results)
	}
}
