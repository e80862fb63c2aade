package content

import (
	"PaperPath/internal/entity"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed bundles/*.yaml
var embeddedBundles embed.FS

type ITable interface {
	Resolve(code string) entity.Bundle
	Has(code string) bool
	Languages() []LanguageOption
	Negotiate(acceptLanguage string) entity.LanguageCode
}

type LanguageOption struct {
	entity.LanguageInfo
	HasBundle bool `json:"has_bundle"`
}

type table struct {
	bundles  map[entity.LanguageCode]entity.Bundle
	fallback entity.Bundle
	matcher  language.Matcher
	codes    []entity.LanguageCode
}

// LoadEmbedded loads the bundles compiled into the binary.
func LoadEmbedded() (ITable, error) {
	return LoadFromFS(embeddedBundles, validator.New())
}

// LoadFromFS parses every bundles/*.yaml file and rejects any bundle that is
// not structurally complete.
func LoadFromFS(bundleFS fs.FS, validate *validator.Validate) (ITable, error) {
	paths, err := fs.Glob(bundleFS, "bundles/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob bundles: %w", err)
	}
	sort.Strings(paths)

	bundles := make(map[entity.LanguageCode]entity.Bundle, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(bundleFS, p)
		if err != nil {
			return nil, fmt.Errorf("read bundle %s: %w", p, err)
		}

		var bundle entity.Bundle
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parse bundle %s: %w", p, err)
		}

		code := entity.LanguageCode(strings.TrimSuffix(path.Base(p), ".yaml"))
		if !code.Valid() {
			return nil, fmt.Errorf("bundle %s: unknown language code %q", p, code)
		}
		if bundle.Language != code {
			return nil, fmt.Errorf("bundle %s: declares language %q", p, bundle.Language)
		}
		if err := validate.Struct(bundle); err != nil {
			return nil, fmt.Errorf("bundle %s is incomplete: %w", p, err)
		}
		if err := checkGuides(bundle); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", p, err)
		}

		bundles[code] = bundle
	}

	return newTable(bundles)
}

func newTable(bundles map[entity.LanguageCode]entity.Bundle) (ITable, error) {
	fallback, ok := bundles[entity.DefaultLanguage]
	if !ok {
		return nil, fmt.Errorf("default bundle %q is missing", entity.DefaultLanguage)
	}

	// The default goes first so the matcher falls back to it.
	codes := []entity.LanguageCode{entity.DefaultLanguage}
	for _, l := range entity.Languages {
		if _, ok := bundles[l.Code]; ok && l.Code != entity.DefaultLanguage {
			codes = append(codes, l.Code)
		}
	}

	tags := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		tags = append(tags, language.Make(string(c)))
	}

	return &table{
		bundles:  bundles,
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
		codes:    codes,
	}, nil
}

// Resolve returns the bundle for code, or the French bundle for anything else.
func (t *table) Resolve(code string) entity.Bundle {
	if b, ok := t.bundles[entity.LanguageCode(code)]; ok {
		return b
	}
	return t.fallback
}

func (t *table) Has(code string) bool {
	_, ok := t.bundles[entity.LanguageCode(code)]
	return ok
}

func (t *table) Languages() []LanguageOption {
	options := make([]LanguageOption, 0, len(entity.Languages))
	for _, l := range entity.Languages {
		_, ok := t.bundles[l.Code]
		options = append(options, LanguageOption{LanguageInfo: l, HasBundle: ok})
	}
	return options
}

// Negotiate picks the best bundled language for an Accept-Language header.
func (t *table) Negotiate(acceptLanguage string) entity.LanguageCode {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return entity.DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return entity.DefaultLanguage
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return entity.DefaultLanguage
	}
	return t.codes[index]
}

func checkGuides(bundle entity.Bundle) error {
	for _, id := range []entity.AudioGuideID{entity.AudioGuideVisa, entity.AudioGuideWork, entity.AudioGuideStudy} {
		if _, ok := bundle.Audio.Guide(id); !ok {
			return fmt.Errorf("audio guide %q is missing", id)
		}
	}
	return nil
}
