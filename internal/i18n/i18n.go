// Package i18n translates storefront strings into English and Arabic and
// remembers each session's language choice.
package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alsayed-store/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lang is a supported UI language tag.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// KeyPrefix namespaces persisted language choices in the session store.
const KeyPrefix = "language:"

var (
	tags = map[Lang]language.Tag{
		English: language.English,
		Arabic:  language.Arabic,
	}
	matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

	// prices follow the storefront: US formatting in every language.
	pricePrinter = message.NewPrinter(language.AmericanEnglish)
)

// Parse validates a language tag.
func Parse(s string) (Lang, bool) {
	switch l := Lang(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Arabic:
		return l, true
	}
	return "", false
}

// IsRTL reports whether lang is written right to left.
func (l Lang) IsRTL() bool {
	return l == Arabic
}

// Dir returns the HTML dir attribute for lang.
func (l Lang) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Translator looks up strings by key.
type Translator struct {
	printers map[Lang]*message.Printer
	fallback Lang
}

// NewTranslator builds the message catalogue. fallback is used for
// unsupported languages.
func NewTranslator(fallback Lang) (*Translator, error) {
	if _, ok := tags[fallback]; !ok {
		return nil, fmt.Errorf("unsupported default language %q", fallback)
	}

	b := catalog.NewBuilder(catalog.Fallback(tags[fallback]))
	for lang, strs := range messages {
		for key, msg := range strs {
			if err := b.SetString(tags[lang], key, msg); err != nil {
				return nil, fmt.Errorf("failed to add message %s/%s: %w", lang, key, err)
			}
		}
	}

	t := &Translator{
		printers: make(map[Lang]*message.Printer, len(tags)),
		fallback: fallback,
	}
	for lang, tag := range tags {
		t.printers[lang] = message.NewPrinter(tag, message.Catalog(b))
	}
	return t, nil
}

// Default returns the language used when a session has no choice yet.
func (t *Translator) Default() Lang {
	return t.fallback
}

// T returns the translation of key, or key itself when it has none.
func (t *Translator) T(lang Lang, key string) string {
	if _, ok := messages[lang][key]; !ok {
		return key
	}
	p, ok := t.printers[lang]
	if !ok {
		p = t.printers[t.fallback]
	}
	return p.Sprintf(key)
}

// Negotiate picks a supported language from an Accept-Language header.
// ok is false when the header names no supported language.
func Negotiate(acceptLanguage string) (Lang, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return "", false
	}
	if idx == 0 {
		return Arabic, true
	}
	return English, true
}

// FormatPrice renders an amount as US dollars, e.g. "$1,234.50".
func FormatPrice(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	if f < 0 {
		return "-" + pricePrinter.Sprintf("$%.2f", -f)
	}
	return pricePrinter.Sprintf("$%.2f", f)
}

// Preferences persists the language chosen by each session.
type Preferences struct {
	store    storage.Store
	fallback Lang
	logger   zerolog.Logger
}

// NewPreferences creates a preference store with a default language.
func NewPreferences(store storage.Store, fallback Lang, logger zerolog.Logger) *Preferences {
	return &Preferences{
		store:    store,
		fallback: fallback,
		logger:   logger.With().Str("component", "language").Logger(),
	}
}

// Get returns the session's language. ok is false when none was chosen yet.
func (p *Preferences) Get(ctx context.Context, session string) (Lang, bool) {
	data, err := p.store.Get(ctx, KeyPrefix+session)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn().Err(err).Msg("failed to read language preference")
		}
		return p.fallback, false
	}
	lang, ok := Parse(string(data))
	if !ok {
		p.logger.Warn().Str("value", string(data)).Msg("ignoring invalid stored language")
		return p.fallback, false
	}
	return lang, true
}

// Set stores the session's language.
func (p *Preferences) Set(ctx context.Context, session string, lang Lang) error {
	if _, ok := tags[lang]; !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}
	if err := p.store.Set(ctx, KeyPrefix+session, []byte(lang)); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	return nil
}
