package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stupiduntilnot/localagent/internal/model"
)

func TestDraft_WrapsContentInTemplate(t *testing.T) {
	provider := &countingProvider{reply: "Dear team, ..."}
	d := NewDrafter(provider, model.DefaultParams())

	got, err := d.Draft(context.Background(), "reschedule the standup to 10am")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Dear team, ..." {
		t.Errorf("unexpected draft: %q", got)
	}
	if !strings.HasPrefix(provider.lastPrompt, draftInstruction) {
		t.Errorf("instruction prefix missing from prompt: %q", provider.lastPrompt)
	}
	if !strings.Contains(provider.lastPrompt, "reschedule the standup to 10am") {
		t.Errorf("content missing from prompt: %q", provider.lastPrompt)
	}
}

func TestDraft_EmptyContentFails(t *testing.T) {
	provider := &countingProvider{}
	d := NewDrafter(provider, model.DefaultParams())

	for _, content := range []string{"", "   "} {
		if _, err := d.Draft(context.Background(), content); err == nil {
			t.Errorf("expected error for content %q", content)
		}
	}
	if provider.calls != 0 {
		t.Errorf("inference must not be invoked for empty content, got %d calls", provider.calls)
	}
}

func TestDraft_ProviderErrorPropagates(t *testing.T) {
	provider := &countingProvider{err: model.ErrInference}
	d := NewDrafter(provider, model.DefaultParams())

	if _, err := d.Draft(context.Background(), "hi"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
