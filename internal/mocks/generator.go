package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/wordguess/internal/domain"
	"github.com/phrazzld/wordguess/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateWordPairFn allows test cases to mock the GenerateWordPair behavior
	GenerateWordPairFn func(ctx context.Context, apiKey string, req domain.PairRequest) (domain.WordPair, error)

	// GenerateWordBatchFn allows test cases to mock the GenerateWordBatch behavior
	GenerateWordBatchFn func(ctx context.Context, apiKey string, req domain.BatchRequest) ([]domain.WordPair, error)

	// Default response values
	Pair  domain.WordPair
	Pairs []domain.WordPair
	Err   error

	// mu protects the call tracking state for concurrent test cases
	mu sync.Mutex

	pairCalls  []PairCall
	batchCalls []BatchCall
}

var _ generation.Generator = (*MockGenerator)(nil)

// PairCall records one GenerateWordPair invocation.
type PairCall struct {
	APIKey  string
	Request domain.PairRequest
}

// BatchCall records one GenerateWordBatch invocation.
type BatchCall struct {
	APIKey  string
	Request domain.BatchRequest
}

// GenerateWordPair implements the generation.Generator interface
func (m *MockGenerator) GenerateWordPair(
	ctx context.Context,
	apiKey string,
	req domain.PairRequest,
) (domain.WordPair, error) {
	m.mu.Lock()
	m.pairCalls = append(m.pairCalls, PairCall{APIKey: apiKey, Request: req})
	m.mu.Unlock()

	if m.GenerateWordPairFn != nil {
		return m.GenerateWordPairFn(ctx, apiKey, req)
	}
	return m.Pair, m.Err
}

// GenerateWordBatch implements the generation.Generator interface
func (m *MockGenerator) GenerateWordBatch(
	ctx context.Context,
	apiKey string,
	req domain.BatchRequest,
) ([]domain.WordPair, error) {
	m.mu.Lock()
	m.batchCalls = append(m.batchCalls, BatchCall{APIKey: apiKey, Request: req})
	m.mu.Unlock()

	if m.GenerateWordBatchFn != nil {
		return m.GenerateWordBatchFn(ctx, apiKey, req)
	}
	return m.Pairs, m.Err
}

// PairCalls returns a copy of the recorded GenerateWordPair calls.
func (m *MockGenerator) PairCalls() []PairCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PairCall(nil), m.pairCalls...)
}

// BatchCalls returns a copy of the recorded GenerateWordBatch calls.
func (m *MockGenerator) BatchCalls() []BatchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BatchCall(nil), m.batchCalls...)
}

// NewMockGeneratorWithPairs creates a MockGenerator whose batch calls return
// pairs and whose single-pair calls return the first of them.
func NewMockGeneratorWithPairs(pairs []domain.WordPair) *MockGenerator {
	m := &MockGenerator{Pairs: pairs}
	if len(pairs) > 0 {
		m.Pair = pairs[0]
	}
	return m
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorRateLimited simulates an exhausted upstream quota.
func MockGeneratorRateLimited() *MockGenerator {
	return NewMockGeneratorWithError(&generation.RemoteCallError{
		StatusCode: 429,
		Body:       `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED"}}`,
	})
}

// MockGeneratorMalformed simulates a model answer that is not JSON.
func MockGeneratorMalformed() *MockGenerator {
	return NewMockGeneratorWithError(generation.NewMalformedResponseError("invalid JSON", nil))
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairCalls = nil
	m.batchCalls = nil
}
