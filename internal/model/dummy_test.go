package model

import (
	"context"
	"errors"
	"testing"
)

func TestDummy_EchoIsDefault(t *testing.T) {
	d, err := NewDummy("")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := d.Complete(context.Background(), "hello", DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "hello" {
		t.Errorf("expected echo of prompt, got %q", resp.Content)
	}
}

func TestDummy_ScriptSequence(t *testing.T) {
	d, err := NewDummy("msg:first,err:boom,msg:last")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	resp, err := d.Complete(ctx, "p", DefaultParams())
	if err != nil || resp.Content != "first" {
		t.Fatalf("step 1: got (%q, %v)", resp.Content, err)
	}

	_, err = d.Complete(ctx, "p", DefaultParams())
	if !errors.Is(err, ErrInference) {
		t.Fatalf("step 2: expected inference error, got %v", err)
	}

	// Last action repeats once exhausted.
	for i := 0; i < 2; i++ {
		resp, err = d.Complete(ctx, "p", DefaultParams())
		if err != nil || resp.Content != "last" {
			t.Fatalf("step %d: got (%q, %v)", 3+i, resp.Content, err)
		}
	}
}

func TestDummy_InvalidScript(t *testing.T) {
	if _, err := NewDummy("explode"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestDummy_DeterministicEcho(t *testing.T) {
	d, err := NewDummy("echo")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	a, _ := d.Complete(ctx, "same prompt", DefaultParams())
	b, _ := d.Complete(ctx, "same prompt", DefaultParams())
	if a.Content != b.Content {
		t.Errorf("echo not deterministic: %q vs %q", a.Content, b.Content)
	}
}
