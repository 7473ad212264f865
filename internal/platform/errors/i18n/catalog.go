// Package i18n renders localized error messages from the "errors" namespace
// of the shared message catalog. Messages are text/template strings keyed by
// error code and fed the error's metadata.
package i18n

import (
	"strings"
	"sync"
	"text/template"

	"github.com/louisbranch/mathdrill/internal/platform/i18n/catalog"
)

const namespace = "errors"

// Messages holds the error templates of one locale.
type Messages struct {
	locale    string
	templates map[string]string

	mu     sync.Mutex
	parsed map[string]*template.Template
}

var byLocale sync.Map // resolved locale -> *Messages

// For returns the messages for locale, falling back to the catalog's base
// locale when locale has no error messages.
func For(locale string) *Messages {
	resolved, templates := catalog.Default().NamespaceMessagesWithFallback(strings.TrimSpace(locale), namespace)
	if cached, ok := byLocale.Load(resolved); ok {
		return cached.(*Messages)
	}
	actual, _ := byLocale.LoadOrStore(resolved, New(resolved, templates))
	return actual.(*Messages)
}

// New builds messages from code -> template pairs.
func New(locale string, templates map[string]string) *Messages {
	copied := make(map[string]string, len(templates))
	for code, text := range templates {
		copied[code] = text
	}
	return &Messages{
		locale:    locale,
		templates: copied,
		parsed:    map[string]*template.Template{},
	}
}

// Locale returns the locale the messages were loaded for.
func (m *Messages) Locale() string {
	return m.locale
}

// Render formats the template for code with metadata. Unknown codes render
// as the code itself; templates that fail to parse or execute render raw.
// Missing metadata keys render empty.
func (m *Messages) Render(code string, metadata map[string]string) string {
	text, ok := m.templates[code]
	if !ok {
		return code
	}
	tmpl, err := m.template(code, text)
	if err != nil {
		return text
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, metadata); err != nil {
		return text
	}
	return out.String()
}

func (m *Messages) template(code, text string) (*template.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tmpl, ok := m.parsed[code]; ok {
		return tmpl, nil
	}
	tmpl, err := template.New(code).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, err
	}
	m.parsed[code] = tmpl
	return tmpl, nil
}
