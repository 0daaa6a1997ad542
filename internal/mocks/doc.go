// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// facilitating consistent testing across packages. Instead of defining inline mocks in
// individual test files, these standardized implementations can be reused.
//
// Usage:
//
//	gen := &mocks.MockGenerator{
//	    GenerateWordBatchFn: func(ctx context.Context, apiKey string, req domain.BatchRequest) ([]domain.WordPair, error) {
//	        return []domain.WordPair{{Category: "animals", RU: "кот", EN: "cat"}}, nil
//	    },
//	}
package mocks
