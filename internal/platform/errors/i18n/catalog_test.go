package i18n

import "testing"

func TestForFallsBackToBaseLocale(t *testing.T) {
	base := For("en-US")
	for _, locale := range []string{"missing-locale", "", "  "} {
		if got := For(locale); got != base {
			t.Fatalf("For(%q) = %q, want the en-US messages", locale, got.Locale())
		}
	}
}

func TestRenderEmbeddedMessages(t *testing.T) {
	tests := []struct {
		locale   string
		code     string
		metadata map[string]string
		want     string
	}{
		{locale: "en-US", code: "UNSUPPORTED_MODE", metadata: map[string]string{"Mode": "bogus_mode"}, want: "The operation bogus_mode is not supported"},
		{locale: "en-US", code: "ATTEMPTS_EXHAUSTED", metadata: map[string]string{"Attempts": "5"}, want: "No problem matched these settings after 5 attempts"},
		{locale: "pt-BR", code: "NO_MODES_AVAILABLE", want: "Escolha pelo menos uma operação"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.code, func(t *testing.T) {
			messages := For(tt.locale)
			if messages.Locale() != tt.locale {
				t.Fatalf("locale = %q, want %q", messages.Locale(), tt.locale)
			}
			if got := messages.Render(tt.code, tt.metadata); got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFallbacks(t *testing.T) {
	messages := New("test", map[string]string{
		"greeting": "hello {{.Name}}",
		"broken":   "{{ if .Name }}",
	})

	tests := []struct {
		name     string
		code     string
		metadata map[string]string
		want     string
	}{
		{name: "unknown code", code: "unknown", want: "unknown"},
		{name: "missing metadata", code: "greeting", want: "hello "},
		{name: "metadata", code: "greeting", metadata: map[string]string{"Name": "Ana"}, want: "hello Ana"},
		{name: "parse error", code: "broken", metadata: map[string]string{"Name": "X"}, want: "{{ if .Name }}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := messages.Render(tt.code, tt.metadata); got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewCopiesTemplates(t *testing.T) {
	templates := map[string]string{"code": "before"}
	messages := New("test", templates)
	templates["code"] = "after"
	if got := messages.Render("code", nil); got != "before" {
		t.Fatalf("Render = %q, want %q", got, "before")
	}
}
