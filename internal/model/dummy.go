package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

type action struct {
	kind string
	arg  string
}

func parseScript(script string) ([]action, error) {
	if strings.TrimSpace(script) == "" {
		return []action{{kind: "echo"}}, nil
	}
	parts := strings.Split(script, ",")
	actions := make([]action, 0, len(parts))
	for _, p := range parts {
		token := strings.TrimSpace(p)
		if token == "" {
			continue
		}
		switch {
		case token == "echo":
			actions = append(actions, action{kind: "echo"})
		case strings.HasPrefix(token, "msg:"):
			actions = append(actions, action{kind: "msg", arg: strings.TrimPrefix(token, "msg:")})
		case strings.HasPrefix(token, "err:"):
			actions = append(actions, action{kind: "err", arg: strings.TrimPrefix(token, "err:")})
		case strings.HasPrefix(token, "sleep:"):
			actions = append(actions, action{kind: "sleep", arg: strings.TrimPrefix(token, "sleep:")})
		default:
			return nil, fmt.Errorf("invalid dummy action: %s", token)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, action{kind: "echo"})
	}
	return actions, nil
}

// Dummy is a deterministic scripted provider for tests and offline runs.
// The script is a comma-separated action list; the last action repeats
// once the script is exhausted:
//
//	echo        reply with the prompt itself
//	msg:<text>  reply with fixed text
//	err:<text>  fail with the given message
//	sleep:<ms>  delay, then reply
type Dummy struct {
	mu      sync.Mutex
	actions []action
	index   int
}

// NewDummy creates a scripted provider. An empty script behaves as "echo".
func NewDummy(script string) (*Dummy, error) {
	actions, err := parseScript(script)
	if err != nil {
		return nil, err
	}
	return &Dummy{actions: actions}, nil
}

func (d *Dummy) next() action {
	if d.index >= len(d.actions) {
		return d.actions[len(d.actions)-1]
	}
	a := d.actions[d.index]
	d.index++
	return a
}

// Complete runs the next scripted action.
func (d *Dummy) Complete(ctx context.Context, prompt string, params Params) (Completion, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a := d.next()
	switch a.kind {
	case "echo":
		return Completion{Content: prompt, InputTokens: 1, OutputTokens: 1}, nil
	case "msg":
		return Completion{Content: a.arg, InputTokens: 1, OutputTokens: 1}, nil
	case "err":
		detail := a.arg
		if strings.TrimSpace(detail) == "" {
			detail = "scripted failure"
		}
		return Completion{}, fmt.Errorf("%w: %s", ErrInference, detail)
	case "sleep":
		ms, _ := strconv.Atoi(a.arg)
		if ms > 0 {
			select {
			case <-time.After(time.Duration(ms) * time.Millisecond):
			case <-ctx.Done():
				return Completion{}, fmt.Errorf("%w: %v", ErrInference, ctx.Err())
			}
		}
		return Completion{Content: "dummy-after-sleep", InputTokens: 1, OutputTokens: 1}, nil
	default:
		return Completion{Content: prompt, InputTokens: 1, OutputTokens: 1}, nil
	}
}
