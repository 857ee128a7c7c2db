package gamelog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every catalog must define; other locales fall back to it.
const BaseLocale = "en-US"

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// template is a compiled message: the placeholder names in argument order.
type template struct {
	names []string
}

// Catalog renders entries into text for one active locale.
type Catalog struct {
	builder   *catalog.Builder
	base      language.Tag
	templates map[language.Tag]map[string]template
	printers  map[language.Tag]*message.Printer
	tag       language.Tag
}

// NewCatalog creates an empty Catalog rendering in BaseLocale.
func NewCatalog() *Catalog {
	base := language.MustParse(BaseLocale)
	c := &Catalog{
		builder:   catalog.NewBuilder(catalog.Fallback(base)),
		base:      base,
		templates: make(map[language.Tag]map[string]template),
		printers:  make(map[language.Tag]*message.Printer),
		tag:       base,
	}
	return c
}

// LoadCatalog reads every <locale>.yaml file in dir and activates locale.
//
// Precondition: dir must be a readable directory containing BaseLocale.
// Postcondition: Returns a Catalog or the first error encountered.
func LoadCatalog(dir, locale string) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found in %s", dir)
	}
	sort.Strings(paths)

	c := NewCatalog()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		fromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if file.Locale != fromPath {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", path, file.Locale, fromPath)
		}
		if err := c.Add(file.Locale, file.Messages); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
	}
	if _, ok := c.templates[c.base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in %s", BaseLocale, dir)
	}
	if err := c.SetLocale(locale); err != nil {
		return nil, err
	}
	return c, nil
}

// Add registers messages for locale. Templates name arguments as {key}.
func (c *Catalog) Add(locale string, messages map[string]string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("parse locale tag %q: %w", locale, err)
	}
	if messages == nil {
		return fmt.Errorf("locale %s: messages map is required", locale)
	}
	byID, ok := c.templates[tag]
	if !ok {
		byID = make(map[string]template)
		c.templates[tag] = byID
	}
	for id, text := range messages {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("locale %s: message id cannot be blank", locale)
		}
		if _, dup := byID[id]; dup {
			return fmt.Errorf("locale %s: duplicate message id %q", locale, id)
		}
		format, names := compile(text)
		if err := c.builder.SetString(tag, id, format); err != nil {
			return fmt.Errorf("locale %s: message %q: %w", locale, id, err)
		}
		byID[id] = template{names: names}
	}
	return nil
}

// compile rewrites {name} placeholders into indexed verbs and returns the
// distinct names in the order their indices were assigned.
func compile(text string) (string, []string) {
	var names []string
	index := map[string]int{}
	escaped := strings.ReplaceAll(text, "%", "%%")
	format := placeholder.ReplaceAllStringFunc(escaped, func(m string) string {
		name := m[1 : len(m)-1]
		i, ok := index[name]
		if !ok {
			names = append(names, name)
			i = len(names)
			index[name] = i
		}
		return fmt.Sprintf("%%[%d]v", i)
	})
	return format, names
}

// SetLocale switches the active locale.
func (c *Catalog) SetLocale(locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("parse locale tag %q: %w", locale, err)
	}
	c.tag = tag
	return nil
}

func (c *Catalog) printer(tag language.Tag) *message.Printer {
	p, ok := c.printers[tag]
	if !ok {
		p = message.NewPrinter(tag, message.Catalog(c.builder))
		c.printers[tag] = p
	}
	return p
}

// Locale returns the active locale tag.
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

// Has reports whether id resolves in the active or base locale.
func (c *Catalog) Has(id string) bool {
	_, _, ok := c.lookup(id)
	return ok
}

// lookup resolves id in the active locale, its parents, then the base
// locale, and reports the locale that defined it.
func (c *Catalog) lookup(id string) (template, language.Tag, bool) {
	for tag := c.tag; ; tag = tag.Parent() {
		if t, ok := c.templates[tag][id]; ok {
			return t, tag, true
		}
		if tag.IsRoot() {
			break
		}
	}
	t, ok := c.templates[c.base][id]
	return t, c.base, ok
}

// Render formats e in the active locale. Unknown ids render as the id itself;
// arguments missing from e render as their {key} placeholder.
func (c *Catalog) Render(e Entry) string {
	t, tag, ok := c.lookup(e.ID)
	if !ok {
		return e.ID
	}
	args := make([]any, len(t.names))
	for i, name := range t.names {
		v, ok := e.Arg(name)
		if !ok {
			v = "{" + name + "}"
		}
		args[i] = v
	}
	return c.printer(tag).Sprintf(e.ID, args...)
}
