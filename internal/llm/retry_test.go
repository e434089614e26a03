package llm

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Generate(t.Context(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("Content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(t.Context(), Request{Prompt: "hi"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("Generate() error = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(t.Context(), Request{Prompt: "hi"})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("Generate() error = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1 (no retry)", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad shape")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad shape")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(t.Context(), Request{Prompt: "hi"})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("Generate() error = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2 (one retry)", mock.CallCount())
	}
}
