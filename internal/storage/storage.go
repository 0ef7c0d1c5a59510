package storage

import (
	"HealthTrackerBot/pkg/models"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Константы для настройки
const (
	DefaultCacheSize       = 1000
	DefaultCleanupInterval = 5 * time.Minute
	sessionMaxAge          = 24 * time.Hour
)

type ProfileStorage interface {
	GetProfile(chatID int64) (*models.UserProfile, bool)
	SetProfile(profile *models.UserProfile)
	AllProfiles() []*models.UserProfile
	GetSession(chatID int64) (models.Session, bool)
	SetSession(chatID int64, session models.Session)
	ClearSession(chatID int64)
	GetLastMessageID(chatID int64) (int, bool)
	SetLastMessageID(chatID int64, messageID int)
	// Периодическая очистка брошенных диалогов
	CleanupExpiredData()
}

type MemoryStorage struct {
	mu sync.RWMutex

	// Профили живут до завершения процесса, поэтому обычная мапа:
	// вытеснение из LRU здесь недопустимо.
	profiles map[int64]*models.UserProfile

	// Временные данные диалогов — LRU кэши с ограничением размера
	sessions        *lru.Cache[int64, models.Session]
	lastBotMessages *lru.Cache[int64, int]

	// Для TTL (время жизни записей диалогов)
	creationTime map[int64]time.Time
}

// NewMemoryStorage создает новое хранилище с ограничением по размеру
// для временных данных.
func NewMemoryStorage() (*MemoryStorage, error) {
	sessions, err := lru.New[int64, models.Session](DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	lastBotMessages, err := lru.New[int64, int](DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	storage := &MemoryStorage{
		profiles:        make(map[int64]*models.UserProfile),
		sessions:        sessions,
		lastBotMessages: lastBotMessages,
		creationTime:    make(map[int64]time.Time),
	}

	// Запускаем фоновую очистку
	go storage.startCleanupRoutine()

	return storage, nil
}

func (s *MemoryStorage) startCleanupRoutine() {
	ticker := time.NewTicker(DefaultCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.CleanupExpiredData()
	}
}

// CleanupExpiredData удаляет временные данные чатов старше sessionMaxAge.
// Профили не трогает.
func (s *MemoryStorage) CleanupExpiredData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for chatID, createdAt := range s.creationTime {
		if now.Sub(createdAt) > sessionMaxAge {
			delete(s.creationTime, chatID)
			s.sessions.Remove(chatID)
			s.lastBotMessages.Remove(chatID)
		}
	}
}

func (s *MemoryStorage) GetProfile(chatID int64) (*models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[chatID]
	return profile, exists
}

func (s *MemoryStorage) SetProfile(profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.TelegramID] = profile
}

// AllProfiles возвращает срез-снимок всех профилей.
func (s *MemoryStorage) AllProfiles() []*models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.UserProfile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		result = append(result, profile)
	}
	return result
}

func (s *MemoryStorage) GetSession(chatID int64) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions.Get(chatID)
}

func (s *MemoryStorage) SetSession(chatID int64, session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Add(chatID, session)
	s.updateCreationTime(chatID)
}

func (s *MemoryStorage) ClearSession(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Remove(chatID)
	delete(s.creationTime, chatID)
}

func (s *MemoryStorage) GetLastMessageID(chatID int64) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastBotMessages.Get(chatID)
}

func (s *MemoryStorage) SetLastMessageID(chatID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastBotMessages.Add(chatID, messageID)
	s.updateCreationTime(chatID)
}

// updateCreationTime отмечает время появления временных данных чата
func (s *MemoryStorage) updateCreationTime(chatID int64) {
	if _, exists := s.creationTime[chatID]; !exists {
		s.creationTime[chatID] = time.Now()
	}
}

// GetStats возвращает статистику для мониторинга
func (s *MemoryStorage) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"profiles_size":      len(s.profiles),
		"sessions_size":      s.sessions.Len(),
		"last_messages_size": s.lastBotMessages.Len(),
		"active_dialogs":     len(s.creationTime),
		"cache_capacity":     DefaultCacheSize,
	}
}
