package auth

import (
	"testing"
	"time"

	"fleet-telemetry-service/internal/config"
)

func newTestManager() *Manager {
	return NewManager(config.AuthConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     30 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("mypassword123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" {
		t.Fatal("hash should not be empty")
	}
	if hash == "mypassword123" {
		t.Fatal("hash should not equal plaintext")
	}

	if !CheckPassword(hash, "mypassword123") {
		t.Error("CheckPassword should return true for correct password")
	}
	if CheckPassword(hash, "wrongpassword") {
		t.Error("CheckPassword should return false for wrong password")
	}
}

func TestGenerateAndParseAccess(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccess(7, "owner@fleet.test", "fleet_owner")
	if err != nil {
		t.Fatalf("GenerateAccess failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	claims, err := m.ParseAccess(token)
	if err != nil {
		t.Fatalf("ParseAccess failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "owner@fleet.test" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "fleet_owner" {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
	if claims.ID == "" {
		t.Error("JTI should be set")
	}
	if claims.ExpiresAt == nil {
		t.Error("ExpiresAt should be set")
	}
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	m := newTestManager()

	refresh, err := m.GenerateRefresh(1, "user@fleet.test", "sales")
	if err != nil {
		t.Fatalf("GenerateRefresh failed: %v", err)
	}

	if _, err := m.ParseAccess(refresh); err == nil {
		t.Error("ParseAccess should reject a refresh token")
	}

	access, _ := m.GenerateAccess(1, "user@fleet.test", "sales")
	if _, err := m.ParseRefresh(access); err == nil {
		t.Error("ParseRefresh should reject an access token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(config.AuthConfig{
		AccessSecret:  "other-access-secret",
		RefreshSecret: "other-refresh-secret",
		AccessTTL:     30 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	})

	token, _ := m1.GenerateAccess(1, "user@fleet.test", "service")
	if _, err := m2.ParseAccess(token); err == nil {
		t.Error("expected error when validating with wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseAccess("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, err := m.ParseRefresh(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewManager(config.AuthConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     -time.Minute,
		RefreshTTL:    -time.Minute,
	})

	token, err := m.GenerateAccess(1, "user@fleet.test", "superuser")
	if err != nil {
		t.Fatalf("GenerateAccess failed: %v", err)
	}
	if _, err := m.ParseAccess(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestRemainingLifetime(t *testing.T) {
	m := newTestManager()

	token, _ := m.GenerateRefresh(1, "user@fleet.test", "fleet_owner")
	claims, err := m.ParseRefresh(token)
	if err != nil {
		t.Fatalf("ParseRefresh failed: %v", err)
	}

	remaining := RemainingLifetime(claims)
	if remaining <= 0 {
		t.Errorf("remaining lifetime should be positive, got %v", remaining)
	}
	if remaining > 24*time.Hour {
		t.Errorf("remaining lifetime should not exceed the TTL, got %v", remaining)
	}

	if got := RemainingLifetime(&Claims{}); got != 0 {
		t.Errorf("RemainingLifetime without expiry = %v, want 0", got)
	}
}
