package agent

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/stupiduntilnot/localagent/internal/command"
	"github.com/stupiduntilnot/localagent/internal/convo"
	"github.com/stupiduntilnot/localagent/internal/model"
	"github.com/stupiduntilnot/localagent/internal/task"
	"github.com/stupiduntilnot/localagent/internal/weather"
)

// Session owns all per-conversation state: the history buffer, the model
// provider, and the task handlers. One session serves one user; Handle
// serializes callers, so the loop is strictly sequential even behind the
// web surface.
type Session struct {
	mu         sync.Mutex
	provider   model.Provider
	params     model.Params
	prompts    *convo.Builder
	buffer     *convo.Buffer
	store      convo.Store
	summarizer *task.Summarizer
	drafter    *task.Drafter
	weather    *weather.Client
	logger     *zap.Logger
}

// Options configures a session. Store and Weather may be nil; Logger nil
// means no logging.
type Options struct {
	Provider      model.Provider
	Params        model.Params
	SystemPrompt  string
	HistoryWindow int
	Store         convo.Store
	Weather       *weather.Client
	Logger        *zap.Logger
}

// NewSession builds a session. When a store is configured, persisted
// history is restored into the buffer.
func NewSession(opts Options) (*Session, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("session: model provider is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	buffer := convo.NewBuffer(opts.HistoryWindow)
	if opts.Store != nil {
		restored, err := opts.Store.Load(opts.HistoryWindow)
		if err != nil {
			return nil, fmt.Errorf("session: restore history: %w", err)
		}
		buffer.Restore(restored)
	}

	return &Session{
		provider:   opts.Provider,
		params:     opts.Params,
		prompts:    &convo.Builder{Preamble: opts.SystemPrompt},
		buffer:     buffer,
		store:      opts.Store,
		summarizer: task.NewSummarizer(opts.Provider, opts.Params),
		drafter:    task.NewDrafter(opts.Provider, opts.Params),
		weather:    opts.Weather,
		logger:     logger,
	}, nil
}

// Reply is the result of one dispatched input.
type Reply struct {
	Text string
	Kind command.Kind
}

// Handle classifies one input line and runs it to completion: task kinds
// go to their handler, everything else through the prompt builder and the
// inference call. Only the freeform path mutates the history buffer.
func (s *Session) Handle(ctx context.Context, input string) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := command.Parse(input)
	s.logger.Debug("dispatching input",
		zap.String("kind", cmd.Kind.String()),
		zap.Int("history_len", s.buffer.Len()))

	switch cmd.Kind {
	case command.KindSummarize:
		text, err := s.summarizer.Summarize(ctx, cmd.Arg)
		if err != nil {
			return Reply{Kind: cmd.Kind}, err
		}
		return Reply{Text: text, Kind: cmd.Kind}, nil

	case command.KindDraftEmail:
		text, err := s.drafter.Draft(ctx, cmd.Arg)
		if err != nil {
			return Reply{Kind: cmd.Kind}, err
		}
		return Reply{Text: text, Kind: cmd.Kind}, nil

	case command.KindWeather:
		if s.weather == nil {
			return Reply{Kind: cmd.Kind}, fmt.Errorf("weather lookup is not configured")
		}
		report, err := s.weather.Current(ctx, cmd.Arg)
		if err != nil {
			return Reply{Kind: cmd.Kind}, err
		}
		return Reply{Text: report.String(), Kind: cmd.Kind}, nil

	case command.KindFreeform:
		text, err := s.freeform(ctx, cmd.Arg)
		if err != nil {
			return Reply{Kind: cmd.Kind}, err
		}
		return Reply{Text: text, Kind: cmd.Kind}, nil

	default:
		return Reply{}, fmt.Errorf("unhandled command kind %d", cmd.Kind)
	}
}

func (s *Session) freeform(ctx context.Context, input string) (string, error) {
	prompt := s.prompts.Build(s.buffer.Entries(), input)
	resp, err := s.provider.Complete(ctx, prompt, s.params)
	if err != nil {
		return "", err
	}

	exchange := convo.Exchange{UserText: input, AgentText: resp.Content}
	s.buffer.Append(exchange)
	if s.store != nil {
		if err := s.store.Append(exchange); err != nil {
			// The reply already exists; a persistence failure must not
			// discard it.
			s.logger.Warn("history persistence failed", zap.Error(err))
		}
	}

	s.logger.Debug("freeform turn completed",
		zap.Int("input_tokens", resp.InputTokens),
		zap.Int("output_tokens", resp.OutputTokens),
		zap.Int("history_len", s.buffer.Len()))
	return resp.Content, nil
}

// HistoryLen reports the current buffer size.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.Len()
}

// History returns a copy of the buffered exchanges, oldest first.
func (s *Session) History() []convo.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.Entries()
}
