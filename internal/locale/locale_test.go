package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"zh", LanguageChinese},
		{"zh-CN", LanguageChinese},
		{"cn", LanguageChinese},
		{"EN", LanguageEnglish},
		{"en-US", LanguageEnglish},
		{"  en_GB ", LanguageEnglish},
		{"fr", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.raw); got != tt.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLanguageFromAcceptLanguage(t *testing.T) {
	if got := LanguageFromAcceptLanguage("zh-CN,zh;q=0.9,en;q=0.8"); got != LanguageChinese {
		t.Fatalf("expected zh, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("en-US,en;q=0.9"); got != LanguageEnglish {
		t.Fatalf("expected en, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("fr-FR"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestPick(t *testing.T) {
	if got := Pick("en", "Moments", "瞬间"); got != "Moments" {
		t.Fatalf("expected english text, got %q", got)
	}
	if got := Pick("zh", "Moments", "瞬间"); got != "瞬间" {
		t.Fatalf("expected chinese text, got %q", got)
	}
	if got := Pick("en", "", "瞬间"); got != "瞬间" {
		t.Fatalf("expected fallback to chinese, got %q", got)
	}
}
