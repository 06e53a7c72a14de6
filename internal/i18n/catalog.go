// Package i18n holds the console's translation catalogs and the persisted UI
// language preference.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog maps a language to its messages. English is the fallback.
type Catalog struct {
	messages map[string]map[string]string
}

func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{messages: make(map[string]map[string]string, len(paths))}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		lang, ok := Normalize(file.Locale)
		if !ok {
			return nil, fmt.Errorf("catalog %s: unsupported locale %q", path, file.Locale)
		}
		if file.Messages == nil {
			return nil, fmt.Errorf("catalog %s: messages map is required", path)
		}
		c.messages[lang] = file.Messages
	}
	if _, ok := c.messages[DefaultLang]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", DefaultLang)
	}
	return c, nil
}

// T resolves key in lang, then in English, then returns the key itself.
func (c *Catalog) T(lang, key string) string {
	if msg, ok := c.messages[lang][key]; ok && msg != "" {
		return msg
	}
	if msg, ok := c.messages[DefaultLang][key]; ok && msg != "" {
		return msg
	}
	return key
}

// Messages returns the full table for lang with English filling the gaps.
func (c *Catalog) Messages(lang string) map[string]string {
	out := make(map[string]string, len(c.messages[DefaultLang]))
	for k, v := range c.messages[DefaultLang] {
		out[k] = v
	}
	for k, v := range c.messages[lang] {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

const (
	LangEnglish = "en"
	LangBurmese = "my"
	DefaultLang = LangEnglish
)

var supported = map[language.Base]string{
	mustBase(language.English): LangEnglish,
	mustBase(language.Burmese): LangBurmese,
}

func mustBase(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}

// Normalize maps a language tag such as "en-US" or "my" to a supported
// console language.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	lang, ok := supported[base]
	return lang, ok
}
