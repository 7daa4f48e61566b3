package i18n

import (
	"context"
	"log/slog"
	"sync"

	"github.com/skilllink-dev/skilllink/pkg/reactive"
	"github.com/skilllink-dev/skilllink/pkg/storage"
)

// storageKey is the durable-storage key for the language selection.
const storageKey = "language"

// Config configures the localization store.
type Config struct {
	// Storage is the durable key-value backend for the language selection.
	// Defaults to an in-memory store.
	Storage storage.Store

	// Catalog is the translation catalogue. Defaults to DefaultCatalog.
	Catalog Catalog

	// EnvLocale is the host environment's reported language preference
	// ("hi-IN", "ta_IN.UTF-8"). Consulted at startup when no persisted
	// selection exists.
	EnvLocale string

	// Default is the language used when neither a persisted selection
	// nor the environment resolves one. Unsupported codes are ignored
	// with a warning. Defaults to DefaultLanguage.
	Default Language

	// Logger receives missing-translation and persistence warnings.
	// Defaults to slog.Default.
	Logger *slog.Logger
}

// Store owns the active display language and the key-based string lookup.
type Store struct {
	catalog Catalog
	kv      storage.Store
	logger  *slog.Logger
	current *reactive.Signal[Language]

	// reported deduplicates missing-translation warnings per key.
	reported sync.Map
}

// NewStore creates the localization store and resolves the initial language:
// persisted selection first, then the environment locale, then the default.
func NewStore(cfg Config) *Store {
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemoryStore()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Store{
		catalog: cfg.Catalog,
		kv:      cfg.Storage,
		logger:  cfg.Logger,
	}
	s.current = reactive.NewSignal(s.initialLanguage(cfg.EnvLocale, cfg.Default))
	return s
}

// initialLanguage resolves the startup language.
func (s *Store) initialLanguage(envLocale string, fallback Language) Language {
	if raw, err := s.kv.Get(context.Background(), storageKey); err == nil {
		code := Language(string(raw))
		if IsSupported(code) {
			return code
		}
		s.logger.Warn("i18n: ignoring unsupported persisted language", "code", string(raw))
	}
	if code, ok := Match(envLocale); ok {
		return code
	}
	if fallback != "" {
		if IsSupported(fallback) {
			return fallback
		}
		s.logger.Warn("i18n: ignoring unsupported configured default", "code", string(fallback))
	}
	return DefaultLanguage
}

// Current returns the active language.
func (s *Store) Current() Language {
	return s.current.Get()
}

// Subscribe registers fn to run when the active language changes.
func (s *Store) Subscribe(fn func(Language)) (cancel func()) {
	return s.current.Subscribe(fn)
}

// Languages returns the selectable languages for the language picker.
func (s *Store) Languages() []LanguageInfo {
	return Supported()
}

// SetLanguage switches the active language and persists the selection.
// Unsupported codes fail with ErrUnsupportedLanguage and leave the current
// selection untouched. A failed persistence write is logged and the
// in-memory selection still changes.
func (s *Store) SetLanguage(ctx context.Context, code Language) error {
	if !IsSupported(code) {
		return ErrUnsupportedLanguage
	}

	s.current.Set(code)

	if err := s.kv.Set(ctx, storageKey, []byte(code)); err != nil {
		perr := &storage.PersistenceError{Op: "set", Key: storageKey, Err: err}
		s.logger.Warn("i18n: failed to persist language selection", "error", perr)
	}
	return nil
}

// Translate returns the string for key in the active language, falling back
// to the default language and finally to the key itself.
func (s *Store) Translate(key string) string {
	entry, ok := s.catalog[key]
	if !ok {
		if _, dup := s.reported.LoadOrStore(key, struct{}{}); !dup {
			s.logger.Warn("i18n: translation key not found", "key", key)
		}
		return key
	}
	if str, ok := entry[s.current.Get()]; ok && str != "" {
		return str
	}
	if str, ok := entry[DefaultLanguage]; ok && str != "" {
		return str
	}
	if _, dup := s.reported.LoadOrStore(key, struct{}{}); !dup {
		s.logger.Warn("i18n: translation key has no usable entry", "key", key)
	}
	return key
}
