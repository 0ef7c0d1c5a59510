package storage

import (
	"testing"
	"time"

	"HealthTrackerBot/pkg/models"
)

func TestProfileLifecycle(t *testing.T) {
	s, err := NewMemoryStorage()
	if err != nil {
		t.Fatalf("NewMemoryStorage: %v", err)
	}

	if _, ok := s.GetProfile(1); ok {
		t.Fatal("profile should not exist before SetProfile")
	}

	s.SetProfile(&models.UserProfile{TelegramID: 1, Weight: 70})
	profile, ok := s.GetProfile(1)
	if !ok {
		t.Fatal("profile not found after SetProfile")
	}
	if profile.Weight != 70 {
		t.Errorf("weight = %v, want 70", profile.Weight)
	}

	// Повторная запись перезаписывает профиль
	s.SetProfile(&models.UserProfile{TelegramID: 1, Weight: 80})
	profile, _ = s.GetProfile(1)
	if profile.Weight != 80 {
		t.Errorf("weight = %v, want 80 after overwrite", profile.Weight)
	}
}

func TestAllProfiles(t *testing.T) {
	s, err := NewMemoryStorage()
	if err != nil {
		t.Fatalf("NewMemoryStorage: %v", err)
	}

	s.SetProfile(&models.UserProfile{TelegramID: 1})
	s.SetProfile(&models.UserProfile{TelegramID: 2})

	if got := len(s.AllProfiles()); got != 2 {
		t.Errorf("AllProfiles() len = %d, want 2", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s, err := NewMemoryStorage()
	if err != nil {
		t.Fatalf("NewMemoryStorage: %v", err)
	}

	s.SetSession(10, models.Session{State: "awaiting_weight", Weight: 70})
	session, ok := s.GetSession(10)
	if !ok || session.State != "awaiting_weight" {
		t.Fatalf("session = %+v, ok = %v", session, ok)
	}

	s.ClearSession(10)
	if _, ok := s.GetSession(10); ok {
		t.Error("session should be gone after ClearSession")
	}
}

func TestCleanupExpiredDataKeepsProfiles(t *testing.T) {
	s, err := NewMemoryStorage()
	if err != nil {
		t.Fatalf("NewMemoryStorage: %v", err)
	}

	s.SetProfile(&models.UserProfile{TelegramID: 5})
	s.SetSession(5, models.Session{State: "awaiting_weight"})
	s.SetLastMessageID(5, 42)

	// Состарим запись вручную
	s.mu.Lock()
	s.creationTime[5] = time.Now().Add(-25 * time.Hour)
	s.mu.Unlock()

	s.CleanupExpiredData()

	if _, ok := s.GetSession(5); ok {
		t.Error("expired session should be removed")
	}
	if _, ok := s.GetLastMessageID(5); ok {
		t.Error("expired last message id should be removed")
	}
	if _, ok := s.GetProfile(5); !ok {
		t.Error("profile must survive cleanup")
	}
}

func TestCleanupKeepsFreshSessions(t *testing.T) {
	s, err := NewMemoryStorage()
	if err != nil {
		t.Fatalf("NewMemoryStorage: %v", err)
	}

	s.SetSession(7, models.Session{State: "awaiting_city"})
	s.CleanupExpiredData()

	if _, ok := s.GetSession(7); !ok {
		t.Error("fresh session should not be removed")
	}
}
