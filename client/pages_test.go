package client

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// scriptedFetcher pages through fixed batches, tracking how many fetches ran.
func scriptedFetcher(pages [][]string, calls *int) PageFetcher[string] {
	return func(ctx context.Context, pageToken string) ([]string, string, error) {
		*calls++
		idx := 0
		if pageToken != "" {
			fmt.Sscanf(pageToken, "page-%d", &idx)
		}
		next := ""
		if idx+1 < len(pages) {
			next = fmt.Sprintf("page-%d", idx+1)
		}
		return pages[idx], next, nil
	}
}

func TestPaginateWalksAllPages(t *testing.T) {
	calls := 0
	fetch := scriptedFetcher([][]string{{"a", "b"}, {"c"}, {"d", "e"}}, &calls)

	var got []string
	for item, err := range Paginate(context.Background(), fetch) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		got = append(got, item)
	}

	want := []string{"a", "b", "c", "d", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("items = %v, want %v", got, want)
	}
	if calls != 3 {
		t.Errorf("fetches = %d, want 3", calls)
	}
}

func TestPaginateStopsWhenConsumerBreaks(t *testing.T) {
	calls := 0
	fetch := scriptedFetcher([][]string{{"a", "b"}, {"c", "d"}}, &calls)

	var got []string
	for item, err := range Paginate(context.Background(), fetch) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		got = append(got, item)
		if len(got) == 1 {
			break
		}
	}

	if len(got) != 1 {
		t.Errorf("items = %v, want just the first", got)
	}
	// Breaking inside the first page must not fetch the second.
	if calls != 1 {
		t.Errorf("fetches = %d, want 1", calls)
	}
}

func TestPaginatePropagatesError(t *testing.T) {
	boom := errors.New("listing failed")
	fetch := func(ctx context.Context, pageToken string) ([]string, string, error) {
		if pageToken == "" {
			return []string{"a"}, "next", nil
		}
		return nil, "", boom
	}

	var got []string
	var gotErr error
	for item, err := range Paginate(context.Background(), PageFetcher[string](fetch)) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, item)
	}

	if !errors.Is(gotErr, boom) {
		t.Errorf("error = %v, want %v", gotErr, boom)
	}
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("items before error = %v, want [a]", got)
	}
}

func TestCollectAll(t *testing.T) {
	calls := 0
	fetch := scriptedFetcher([][]string{{"a"}, {"b"}, {"c"}}, &calls)

	got, err := CollectAll(context.Background(), fetch)
	if err != nil {
		t.Fatalf("CollectAll() error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("CollectAll() = %v, want [a b c]", got)
	}
}

func TestCollectN(t *testing.T) {
	calls := 0
	fetch := scriptedFetcher([][]string{{"a", "b"}, {"c", "d"}, {"e"}}, &calls)

	got, err := CollectN(context.Background(), fetch, 3)
	if err != nil {
		t.Fatalf("CollectN() error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("CollectN() = %v, want [a b c]", got)
	}
	if calls != 2 {
		t.Errorf("fetches = %d, want 2", calls)
	}
}
