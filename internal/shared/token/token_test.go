package token

import (
	"testing"
	"time"

	"eventsync/internal/shared/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     time.Hour,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	pair, err := Issue(cfg, "3520212345671", "ayesha.khan@gmail.com", "USER")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.ExpiresIn != int64(time.Hour.Seconds()) {
		t.Fatalf("expected expires_in %d, got %d", int64(time.Hour.Seconds()), pair.ExpiresIn)
	}

	claims, err := Parse(cfg, pair.AccessToken)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims["sub"] != "3520212345671" {
		t.Fatalf("unexpected subject: %v", claims["sub"])
	}
	if claims["role"] != "USER" {
		t.Fatalf("unexpected role: %v", claims["role"])
	}
	if claims["type"] != "access" {
		t.Fatalf("unexpected token type: %v", claims["type"])
	}
}

func TestParseRejectsTamperedSecret(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	pair, err := Issue(cfg, "3520212345671", "ayesha.khan@gmail.com", "USER")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "different-secret"
	if _, err := Parse(other, pair.AccessToken); err == nil {
		t.Fatal("expected parse with wrong secret to fail")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Parse(testConfig(), "not-a-token"); err == nil {
		t.Fatal("expected parse of garbage to fail")
	}
}
