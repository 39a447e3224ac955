package client

import (
	"context"
	"iter"
)

// PageFetcher fetches one page of a list operation. It is handed the page
// token to request ("" for the first page) and returns the items plus the
// token of the next page ("" when this page is the last).
type PageFetcher[T any] func(ctx context.Context, pageToken string) (items []T, nextPageToken string, err error)

// Paginate returns a lazy iterator over every item of a token-paginated
// list operation, fetching pages as the consumer advances.
//
//	for device, err := range client.Paginate(ctx, fetch) {
//		if err != nil {
//			return err
//		}
//		// process device
//	}
func Paginate[T any](ctx context.Context, fetch PageFetcher[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var token string
		var zero T

		for {
			items, next, err := fetch(ctx, token)
			if err != nil {
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			if next == "" {
				return
			}
			token = next
		}
	}
}

// CollectAll fetches every page and returns the combined items.
func CollectAll[T any](ctx context.Context, fetch PageFetcher[T]) ([]T, error) {
	var result []T
	for item, err := range Paginate(ctx, fetch) {
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// CollectN fetches pages until n items are collected or the listing ends.
func CollectN[T any](ctx context.Context, fetch PageFetcher[T], n int) ([]T, error) {
	var result []T
	for item, err := range Paginate(ctx, fetch) {
		if err != nil {
			return nil, err
		}
		result = append(result, item)
		if len(result) >= n {
			break
		}
	}
	return result, nil
}
