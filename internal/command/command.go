package command

import "strings"

// Kind identifies the classified intent of one input line.
type Kind int

const (
	KindFreeform Kind = iota
	KindSummarize
	KindDraftEmail
	KindWeather
)

// String returns a stable label for logging and the web API.
func (k Kind) String() string {
	switch k {
	case KindSummarize:
		return "summarize"
	case KindDraftEmail:
		return "draft_email"
	case KindWeather:
		return "get_weather"
	default:
		return "freeform"
	}
}

// Command is the parsed form of raw input text. For task kinds Arg holds
// the text after the command prefix, passed through uninterpreted; for
// KindFreeform it holds the full input unchanged.
type Command struct {
	Kind Kind
	Arg  string
}

// Recognized command prefixes. Matching is case-sensitive and
// first-match-wins; the trailing space is part of the prefix.
const (
	prefixSummarize  = "task: summarize "
	prefixDraftEmail = "task: draft email "
	prefixWeather    = "task: get weather "
)

// Parse classifies raw input text into exactly one Command. Anything that
// does not match a recognized prefix becomes a freeform query. Missing or
// empty arguments are not rejected here; the downstream handler surfaces
// the failure.
func Parse(text string) Command {
	switch {
	case strings.HasPrefix(text, prefixSummarize):
		return Command{Kind: KindSummarize, Arg: strings.TrimPrefix(text, prefixSummarize)}
	case strings.HasPrefix(text, prefixDraftEmail):
		return Command{Kind: KindDraftEmail, Arg: strings.TrimPrefix(text, prefixDraftEmail)}
	case strings.HasPrefix(text, prefixWeather):
		return Command{Kind: KindWeather, Arg: strings.TrimPrefix(text, prefixWeather)}
	default:
		return Command{Kind: KindFreeform, Arg: text}
	}
}
