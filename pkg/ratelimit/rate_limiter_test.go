package ratelimit

import "testing"

func TestParseLimitReply(t *testing.T) {
	t.Parallel()

	t.Run("allowed reply", func(t *testing.T) {
		t.Parallel()
		result, err := parseLimitReply([]interface{}{int64(1), int64(2), int64(1)}, 3, 1700000000)
		if err != nil {
			t.Fatalf("parseLimitReply failed: %v", err)
		}
		if !result.Allowed {
			t.Fatal("expected request to be allowed")
		}
		if result.Remaining != 1 {
			t.Fatalf("expected 1 remaining, got %d", result.Remaining)
		}
	})

	t.Run("last allowed request", func(t *testing.T) {
		t.Parallel()
		result, err := parseLimitReply([]interface{}{int64(1), int64(3), int64(0)}, 3, 1700000000)
		if err != nil {
			t.Fatalf("parseLimitReply failed: %v", err)
		}
		if !result.Allowed {
			t.Fatal("expected request at the limit to be allowed")
		}
		if result.Remaining != 0 {
			t.Fatalf("expected 0 remaining, got %d", result.Remaining)
		}
	})

	t.Run("rejected reply", func(t *testing.T) {
		t.Parallel()
		// Rejection at count == limit carries the same count and remaining
		// as the last allowed request; only the flag separates them
		result, err := parseLimitReply([]interface{}{int64(0), int64(3), int64(0)}, 3, 1700000000)
		if err != nil {
			t.Fatalf("parseLimitReply failed: %v", err)
		}
		if result.Allowed {
			t.Fatal("expected request over the limit to be rejected")
		}
		if result.Remaining != 0 {
			t.Fatalf("expected 0 remaining, got %d", result.Remaining)
		}
	})

	t.Run("malformed reply", func(t *testing.T) {
		t.Parallel()
		if _, err := parseLimitReply([]interface{}{int64(1), int64(2)}, 3, 1700000000); err == nil {
			t.Fatal("expected error for short reply")
		}
	})
}
