package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyCatalogPath     = "catalog.path"
	KeyCatalogFormat   = "catalog.format"
	KeyEmbedProvider   = "embedding.provider"
	KeyEmbedModel      = "embedding.model"
	KeyEmbedBaseURL    = "embedding.base_url"
	KeyEmbedAPIKey     = "embedding.api_key"
	KeyEmbedRPS        = "embedding.requests_per_second"
	KeyEmbedBurst      = "embedding.burst"
	KeyCacheMatrixPath = "cache.matrix_path"
	KeyCacheMetaPath   = "cache.meta_path"
	KeySearchTopK      = "search.top_k"
	KeySearchAlpha     = "search.alpha"
)

// Environment overrides. These take precedence over the config file.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvEmbedAPIKey = "SCOUT_EMBEDDING_API_KEY"
	EnvEmbedModel  = "SCOUT_EMBEDDING_MODEL"
	EnvCatalogPath = "SCOUT_CATALOG_PATH"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			Path:   s.getString(KeyCatalogPath, defaults.Catalog.Path),
			Format: s.getCatalogFormat(defaults.Catalog.Format),
		},
		Embedding: domain.EmbeddingSettings{
			Provider:          s.getProvider(defaults.Embedding.Provider),
			Model:             s.getString(KeyEmbedModel, defaults.Embedding.Model),
			BaseURL:           s.configStore.GetString(KeyEmbedBaseURL), // No default - adapters pick their own
			APIKey:            s.configStore.GetString(KeyEmbedAPIKey),
			RequestsPerSecond: s.getFloat(KeyEmbedRPS, defaults.Embedding.RequestsPerSecond),
			Burst:             s.getInt(KeyEmbedBurst, defaults.Embedding.Burst),
		},
		Cache: domain.CacheSettings{
			MatrixPath: s.getString(KeyCacheMatrixPath, defaults.Cache.MatrixPath),
			MetaPath:   s.getString(KeyCacheMetaPath, defaults.Cache.MetaPath),
		},
		Search: domain.SearchSettings{
			TopK:  s.getInt(KeySearchTopK, defaults.Search.TopK),
			Alpha: s.getFloat(KeySearchAlpha, defaults.Search.Alpha),
		},
	}

	s.applyEnv(settings)
	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case KeyCatalogPath, KeyEmbedModel, KeyEmbedBaseURL, KeyEmbedAPIKey,
		KeyCacheMatrixPath, KeyCacheMetaPath:
		stored = value

	case KeyCatalogFormat:
		if !domain.CatalogFormat(value).IsValid() {
			return fmt.Errorf("%w: invalid catalog format: %s", domain.ErrInvalidInput, value)
		}
		stored = value

	case KeyEmbedProvider:
		p := domain.AIProvider(value)
		if p != domain.AIProviderNone && !p.IsValid() {
			return fmt.Errorf("%w: invalid embedding provider: %s", domain.ErrInvalidInput, value)
		}
		stored = value

	case KeyEmbedBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		stored = n

	case KeySearchTopK:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > domain.MaxTopK {
			return fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, key, domain.MaxTopK)
		}
		stored = n

	case KeyEmbedRPS:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		stored = f

	case KeySearchAlpha:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("%w: %s must be between 0 and 1", domain.ErrInvalidInput, key)
		}
		stored = f

	default:
		return fmt.Errorf("%w: unknown setting: %s", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) applyEnv(settings *domain.AppSettings) {
	if v, ok := s.lookupEnv(EnvEmbedAPIKey); ok && v != "" {
		settings.Embedding.APIKey = v
	}
	if v, ok := s.lookupEnv(EnvEmbedModel); ok && v != "" {
		settings.Embedding.Model = v
	}
	if v, ok := s.lookupEnv(EnvCatalogPath); ok && v != "" {
		settings.Catalog.Path = v
	}
}

// Helper methods for reading config values with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(KeyEmbedProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if provider != domain.AIProviderNone && !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getCatalogFormat(defaultVal domain.CatalogFormat) domain.CatalogFormat {
	format := domain.CatalogFormat(s.configStore.GetString(KeyCatalogFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
