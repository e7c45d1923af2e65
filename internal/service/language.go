package service

import (
	"fmt"
	"strings"
)

// CatalogEntry pairs a language code with its system instruction.
type CatalogEntry struct {
	Code        string
	Instruction string
}

// Catalog is the static registry of supported languages and their system
// instructions. It is built once at startup and read-only afterwards, so it
// is safe to share across in-flight requests.
type Catalog struct {
	codes        []string
	instructions map[string]string
	defaultCode  string
}

func NewCatalog(defaultCode string, entries []CatalogEntry) *Catalog {
	c := &Catalog{
		defaultCode:  defaultCode,
		instructions: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		c.codes = append(c.codes, e.Code)
		c.instructions[e.Code] = e.Instruction
	}
	return c
}

const personaTemplate = "You are a helpful assistant for Pakistani truck drivers. " +
	"Offer practical advice, safety tips, and support for life on the road. " +
	"Be friendly, concise, and knowledgeable about trucking, logistics, and travel in Pakistan. " +
	"Don't talk too much and don't be too verbose. Respond in %s."

// DefaultCatalog returns the built-in six-language catalog with English as
// the default.
func DefaultCatalog() *Catalog {
	languages := []struct{ code, name string }{
		{"english", "English"},
		{"urdu", "Urdu"},
		{"punjabi", "Punjabi"},
		{"balochi", "Balochi"},
		{"saraiki", "Saraiki"},
		{"pushto", "Pushto"},
	}
	entries := make([]CatalogEntry, 0, len(languages))
	for _, l := range languages {
		entries = append(entries, CatalogEntry{Code: l.code, Instruction: fmt.Sprintf(personaTemplate, l.name)})
	}
	return NewCatalog("english", entries)
}

// SupportedLanguages returns the codes in declaration order. The slice is a
// copy; callers may not mutate the catalog through it.
func (c *Catalog) SupportedLanguages() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

func (c *Catalog) DefaultLanguage() string { return c.defaultCode }

func (c *Catalog) IsSupported(code string) bool {
	_, ok := c.instructions[code]
	return ok
}

// InstructionFor never fails: unsupported codes get the default language's
// instruction.
func (c *Catalog) InstructionFor(code string) string {
	if instruction, ok := c.instructions[code]; ok {
		return instruction
	}
	return c.instructions[c.defaultCode]
}

// LanguageService resolves client-supplied language strings against a
// catalog.
type LanguageService struct {
	catalog *Catalog
}

func NewLanguageService(catalog *Catalog) *LanguageService {
	return &LanguageService{catalog: catalog}
}

func (s *LanguageService) Catalog() *Catalog { return s.catalog }

// Normalize maps any client-supplied language string to a supported code.
// Absent, blank or unrecognized input collapses to the default language;
// the result is always a valid code, and Normalize(Normalize(x)) ==
// Normalize(x).
func (s *LanguageService) Normalize(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if code == "" {
		return s.catalog.DefaultLanguage()
	}
	if s.catalog.IsSupported(code) {
		return code
	}
	return s.catalog.DefaultLanguage()
}
