package task

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/stupiduntilnot/localagent/internal/model"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileRead     = errors.New("file read error")
)

const summarizeInstruction = "Summarize the following text in a few sentences:"

// DefaultMaxFileBytes caps how much file content is handed to the model.
const DefaultMaxFileBytes = 32 * 1024

// Summarizer reads a text file and asks the model for a summary.
type Summarizer struct {
	Provider model.Provider
	Params   model.Params
	MaxBytes int
}

// NewSummarizer creates a summarizer with the given provider and params.
func NewSummarizer(provider model.Provider, params model.Params) *Summarizer {
	return &Summarizer{
		Provider: provider,
		Params:   params,
		MaxBytes: DefaultMaxFileBytes,
	}
}

// Summarize reads the named file and returns the generated summary. A
// missing file fails with ErrFileNotFound before any inference call; IO or
// decode failures fail with ErrFileRead.
func (s *Summarizer) Summarize(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: stat %q: %v", ErrFileRead, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrFileRead, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrFileRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %q is not valid UTF-8 text", ErrFileRead, path)
	}

	maxBytes := s.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}
	content := string(data)
	if len(content) > maxBytes {
		content = content[:maxBytes]
	}

	prompt := summarizeInstruction + "\n\n" + content
	resp, err := s.Provider.Complete(ctx, prompt, s.Params)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
