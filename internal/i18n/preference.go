package i18n

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source internal/i18n/preference.go -destination=internal/i18n/preference_mock_test.go -package=i18n

const StorageKey = "bf_ui_lang"

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Preference is the UI language. Storage failures never surface; the
// in-memory value stays authoritative.
type Preference struct {
	mu     sync.RWMutex
	lang   string
	store  Store
	logger *zap.Logger
}

func NewPreference(store Store, fallback string, logger *zap.Logger) *Preference {
	lang, ok := Normalize(fallback)
	if !ok {
		lang = DefaultLang
	}
	return &Preference{lang: lang, store: store, logger: logger}
}

// Load adopts the stored language when it is a supported one.
func (p *Preference) Load(ctx context.Context) {
	raw, err := p.store.Get(ctx, StorageKey)
	if err != nil {
		p.logger.Debug("no stored ui language", zap.Error(err))
		return
	}
	if raw != LangEnglish && raw != LangBurmese {
		p.logger.Warn("ignoring stored ui language", zap.String("lang", raw))
		return
	}
	p.mu.Lock()
	p.lang = raw
	p.mu.Unlock()
}

func (p *Preference) Lang() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// Set switches the language and persists it.
func (p *Preference) Set(ctx context.Context, raw string) (string, error) {
	lang, ok := Normalize(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}

	p.mu.Lock()
	p.lang = lang
	p.mu.Unlock()

	if err := p.store.Set(ctx, StorageKey, lang); err != nil {
		p.logger.Warn("persist ui language", zap.String("lang", lang), zap.Error(err))
	}
	return lang, nil
}
