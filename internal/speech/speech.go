package speech

import (
	"context"
	"errors"
)

// ErrSynthesis marks text-to-speech failures. The loop reports them and
// continues; they are never fatal.
var ErrSynthesis = errors.New("speech synthesis failed")

// Synthesizer speaks text aloud, blocking until playback completes.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Recognizer captures one spoken utterance and returns it as text.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}
