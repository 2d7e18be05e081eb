package speech

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSpeak_Succeeds(t *testing.T) {
	s, err := NewCommandSynthesizer("cat", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Speak(context.Background(), "hello there"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestSpeak_CommandFailureIsSynthesisError(t *testing.T) {
	s, err := NewCommandSynthesizer("false", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Speak(context.Background(), "hello")
	if !errors.Is(err, ErrSynthesis) {
		t.Fatalf("expected synthesis error, got %v", err)
	}
}

func TestSpeak_MissingBinary(t *testing.T) {
	s, err := NewCommandSynthesizer("definitely-not-a-real-tts-binary", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Speak(context.Background(), "hello"); !errors.Is(err, ErrSynthesis) {
		t.Fatalf("expected synthesis error, got %v", err)
	}
}

func TestNewCommandSynthesizer_EmptyCommand(t *testing.T) {
	if _, err := NewCommandSynthesizer("  ", time.Second); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestListen_ReturnsTrimmedStdout(t *testing.T) {
	r, err := NewCommandRecognizer("echo hello world", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Listen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello world" {
		t.Errorf("expected 'hello world', got %q", got)
	}
}

func TestListen_EmptyOutputIsError(t *testing.T) {
	r, err := NewCommandRecognizer("true", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Listen(context.Background()); err == nil {
		t.Fatal("expected error when no speech detected")
	}
}

func TestListen_CommandFailure(t *testing.T) {
	r, err := NewCommandRecognizer("false", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Listen(context.Background()); err == nil {
		t.Fatal("expected error for failing command")
	}
}
