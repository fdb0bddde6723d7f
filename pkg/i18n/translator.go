package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// DefaultLanguage is used when no language is configured or negotiated.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	langs        []string
	matcher      language.Matcher
	matchLangs   []string

	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, keys := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if keys == nil {
			return nil, fmt.Errorf("%w: nil key map for %q", ErrInvalidStructure, lang)
		}
	}

	t.translations = translations
	t.langs = make([]string, 0, len(translations))
	for lang := range translations {
		t.langs = append(t.langs, lang)
	}
	sort.Strings(t.langs)
	t.matcher, t.matchLangs = buildMatcher(t.defaultLang, t.langs)

	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.langs),
	)
	return t, nil
}

// buildMatcher puts the default language first so it wins on no match.
// The returned slice maps matcher indexes back to language codes.
func buildMatcher(defaultLang string, langs []string) (language.Matcher, []string) {
	tags := make([]language.Tag, 0, len(langs)+1)
	codes := make([]string, 0, len(langs)+1)
	for _, l := range append([]string{defaultLang}, langs...) {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, l)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
		codes = append(codes, defaultLang)
	}
	return language.NewMatcher(tags), codes
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.langs...)
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Negotiate maps a requested language (a tag like "es-AR" or an
// Accept-Language value) to the closest loaded language.
func (t *Translator) Negotiate(requested string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.translations[requested]; ok {
		return requested
	}
	if strings.TrimSpace(requested) == "" {
		return t.defaultLang
	}

	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(t.matchLangs) {
		return t.defaultLang
	}
	return t.matchLangs[idx]
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.Lookup(lang, key)
	return ok
}

// Lookup returns the raw string stored under a dot-separated key for lang.
// No fallback is applied.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	keys, ok := t.translations[lang]
	t.mu.RUnlock()
	if !ok {
		return "", false
	}

	val, ok := getTranslation(keys, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// T translates key for lang, falling back to the default language and then,
// if enabled, to the key itself. Args are name/value pairs substituted into
// "%{name}" placeholders.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("missing translation", logger.Component("i18n"), logger.Lang(lang), logger.Key(key))
		}
		if t.fallbackToKey {
			return key
		}
		return ""
	}
	if len(args) == 0 {
		return tmpl
	}
	return namedSprintf(tmpl, buildParams(args))
}

// Catalog returns a read-only lookup bound to lang and namespace.
// The language is negotiated once; missing keys fall back to the default
// language and then report not found.
//
//	v := validator.New(validator.WithCatalog(tr.Catalog("es-AR", "validation")))
func (t *Translator) Catalog(lang, namespace string) func(key string) (string, bool) {
	resolved := t.Negotiate(lang)
	prefix := ""
	if namespace != "" {
		prefix = namespace + "."
	}
	return func(key string) (string, bool) {
		tmpl, ok := t.resolve(resolved, prefix+key)
		if !ok && t.logMissing {
			t.logger.Debug("catalog miss", logger.Component("i18n"), logger.Lang(resolved), logger.Key(prefix+key))
		}
		return tmpl, ok
	}
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if s, ok := t.Lookup(lang, key); ok {
		return s, true
	}
	if lang != t.defaultLang {
		return t.Lookup(t.defaultLang, key)
	}
	return "", false
}

// getTranslation walks nested maps along a dot-separated key.
func getTranslation(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		current = toStringMap(next)
		if current == nil {
			return nil, false
		}
	}
	return nil, false
}

func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
