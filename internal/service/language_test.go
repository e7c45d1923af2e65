package service

import (
	"reflect"
	"strings"
	"testing"
)

func TestSupportedLanguages_StableOrder(t *testing.T) {
	c := DefaultCatalog()
	want := []string{"english", "urdu", "punjabi", "balochi", "saraiki", "pushto"}
	if got := c.SupportedLanguages(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	// Order must not drift between calls, and callers must not be able to
	// mutate the catalog through the returned slice.
	first := c.SupportedLanguages()
	first[0] = "klingon"
	if got := c.SupportedLanguages(); !reflect.DeepEqual(got, want) {
		t.Errorf("catalog mutated through returned slice: %v", got)
	}
}

func TestDefaultLanguage(t *testing.T) {
	if got := DefaultCatalog().DefaultLanguage(); got != "english" {
		t.Errorf("expected english, got %q", got)
	}
}

func TestInstructionFor_NeverFails(t *testing.T) {
	c := DefaultCatalog()
	if c.InstructionFor(c.DefaultLanguage()) == "" {
		t.Fatal("default instruction must be non-empty")
	}
	for _, code := range c.SupportedLanguages() {
		instr := c.InstructionFor(code)
		if instr == "" {
			t.Errorf("empty instruction for %q", code)
		}
		if !strings.Contains(instr, "truck drivers") {
			t.Errorf("instruction for %q lost the persona: %q", code, instr)
		}
	}
	if got := c.InstructionFor("klingon"); got != c.InstructionFor("english") {
		t.Errorf("unsupported code should fall back to the default instruction, got %q", got)
	}
}

func TestNormalize_SupportedCodes(t *testing.T) {
	s := NewLanguageService(DefaultCatalog())
	for _, code := range s.Catalog().SupportedLanguages() {
		if got := s.Normalize(code); got != code {
			t.Errorf("Normalize(%q) = %q", code, got)
		}
		if got := s.Normalize(strings.ToUpper(code)); got != code {
			t.Errorf("Normalize(%q) = %q", strings.ToUpper(code), got)
		}
		if got := s.Normalize(" " + code + " "); got != code {
			t.Errorf("Normalize with padding on %q = %q", code, got)
		}
	}
}

func TestNormalize_FallsBackToDefault(t *testing.T) {
	s := NewLanguageService(DefaultCatalog())
	for _, raw := range []string{"", "   ", "klingon", "en-US", "اردو", "URDU "} {
		got := s.Normalize(raw)
		if raw == "URDU " {
			if got != "urdu" {
				t.Errorf("Normalize(%q) = %q, want urdu", raw, got)
			}
			continue
		}
		if got != "english" {
			t.Errorf("Normalize(%q) = %q, want english", raw, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	s := NewLanguageService(DefaultCatalog())
	for _, raw := range []string{"", "URDU", " punjabi ", "nope", "Saraiki"} {
		once := s.Normalize(raw)
		if twice := s.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestNewCatalog_AlternateCatalog(t *testing.T) {
	c := NewCatalog("fr", []CatalogEntry{
		{Code: "fr", Instruction: "Réponds en français."},
		{Code: "de", Instruction: "Antworte auf Deutsch."},
	})
	s := NewLanguageService(c)
	if got := s.Normalize("DE"); got != "de" {
		t.Errorf("expected de, got %q", got)
	}
	if got := s.Normalize("english"); got != "fr" {
		t.Errorf("expected fallback fr, got %q", got)
	}
}
