package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/stupiduntilnot/localagent/internal/model"
)

const draftInstruction = "Write a polite, well-structured email based on the following notes:"

// Drafter turns freeform notes into a generated email draft.
type Drafter struct {
	Provider model.Provider
	Params   model.Params
}

// NewDrafter creates a drafter with the given provider and params.
func NewDrafter(provider model.Provider, params model.Params) *Drafter {
	return &Drafter{Provider: provider, Params: params}
}

// Draft wraps the content in the email instruction template and returns
// the generated draft. Content must be non-empty; no other validation.
func (d *Drafter) Draft(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("draft email: content is empty")
	}

	prompt := draftInstruction + "\n\n" + content
	resp, err := d.Provider.Complete(ctx, prompt, d.Params)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
