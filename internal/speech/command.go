package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandSynthesizer speaks by piping text to an external TTS command
// (e.g. "espeak --stdin" or "say"). The call blocks until the command
// exits, so playback never overlaps the next input.
type CommandSynthesizer struct {
	argv    []string
	timeout time.Duration
}

// NewCommandSynthesizer parses a command line into argv. The text to speak
// is written to the command's stdin.
func NewCommandSynthesizer(commandLine string, timeout time.Duration) (*CommandSynthesizer, error) {
	argv := strings.Fields(commandLine)
	if len(argv) == 0 {
		return nil, fmt.Errorf("speak command is empty")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &CommandSynthesizer{argv: argv, timeout: timeout}, nil
}

// Speak runs the TTS command and blocks until it finishes.
func (s *CommandSynthesizer) Speak(ctx context.Context, text string) error {
	cmdCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, s.argv[0], s.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%w: %v: %s", ErrSynthesis, err, truncate(detail, 200))
		}
		return fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	return nil
}

// CommandRecognizer captures speech by running an external STT command
// that prints the recognized text on stdout (e.g. a whisper.cpp wrapper
// recording from the default microphone).
type CommandRecognizer struct {
	argv    []string
	timeout time.Duration
}

// NewCommandRecognizer parses a command line into argv.
func NewCommandRecognizer(commandLine string, timeout time.Duration) (*CommandRecognizer, error) {
	argv := strings.Fields(commandLine)
	if len(argv) == 0 {
		return nil, fmt.Errorf("listen command is empty")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &CommandRecognizer{argv: argv, timeout: timeout}, nil
}

// Listen runs the STT command and returns its trimmed stdout.
func (r *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, r.argv[0], r.argv[1:]...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("speech recognition failed: %v: %s", err, truncate(detail, 200))
		}
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", fmt.Errorf("no speech detected")
	}
	return text, nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
