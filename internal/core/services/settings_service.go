package services

import (
	"context"
	"fmt"
	"log"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

type SettingsService struct {
	store domain.Store
}

func NewSettingsService(store domain.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the stored settings or the defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context) domain.Settings {
	settings, _ := loadJSON(ctx, s.store, domain.KeySettings, domain.DefaultSettings())
	return settings
}

func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if err := saveJSON(ctx, s.store, domain.KeySettings, settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// ClearAll wipes every stored collection.
func (s *SettingsService) ClearAll(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		log.Printf("[STORE] Failed to clear data: %v", err)
		return fmt.Errorf("clear data: %w", err)
	}
	log.Println("[STORE] All data cleared")
	return nil
}
