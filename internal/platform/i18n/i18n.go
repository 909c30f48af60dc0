// Package i18n resolves display strings for catalog entries and filter
// labels from embedded YAML locale files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"eudiwallet/pkg/attrs"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Provider translates message ids for one language. It is safe for
// concurrent use once built.
type Provider struct {
	lang      language.Tag
	localizer *i18n.Localizer
}

// New loads every embedded locale and localizes into lang, falling back to
// English for missing messages.
func New(lang string) (*Provider, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	return &Provider{
		lang:      tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

func (p *Provider) Language() language.Tag {
	return p.lang
}

// GetString translates key. args are template key/value pairs, e.g.
// GetString("dashboard_document_expires_on", "Date", "01 Jan 2027").
// An unknown key is returned unchanged.
func (p *Provider) GetString(key string, args ...any) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if len(args) > 0 {
		cfg.TemplateData = attrs.ToMap(args)
	}
	msg, err := p.localizer.Localize(cfg)
	if err != nil {
		return key
	}
	return msg
}
