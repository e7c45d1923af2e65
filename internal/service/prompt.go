package service

import (
	"strings"

	"truck-assist/internal/model"
)

// PromptComposer builds the final system instruction for one request:
// the language's base instruction plus an optional screen/entity context
// line. Composition is deterministic.
type PromptComposer struct {
	catalog *Catalog
}

func NewPromptComposer(catalog *Catalog) *PromptComposer {
	return &PromptComposer{catalog: catalog}
}

// Compose appends at most one trailing line to the base instruction:
// "\nAdditional context: Screen: <screen>, Entity ID: <entityId>", dropping
// whichever part is absent. With no usable context the instruction is
// returned unchanged.
func (p *PromptComposer) Compose(language string, reqCtx *model.Context) string {
	instruction := p.catalog.InstructionFor(language)
	if reqCtx == nil {
		return instruction
	}

	var parts []string
	if reqCtx.Screen != "" {
		parts = append(parts, "Screen: "+reqCtx.Screen)
	}
	if reqCtx.EntityID != "" {
		parts = append(parts, "Entity ID: "+reqCtx.EntityID)
	}
	if len(parts) == 0 {
		return instruction
	}
	return instruction + "\nAdditional context: " + strings.Join(parts, ", ")
}
