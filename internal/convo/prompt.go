package convo

import "strings"

// Builder concatenates the system preamble, stored exchanges, and the new
// user input into a single completion prompt.
type Builder struct {
	Preamble string
}

// Build returns the prompt: preamble, then each exchange (user line, agent
// line) oldest-first, then the new user text. Output is deterministic
// given the same history and input.
func (b *Builder) Build(history []Exchange, userText string) string {
	var sb strings.Builder
	sb.WriteString(b.Preamble)
	for _, e := range history {
		sb.WriteString("\nYou: ")
		sb.WriteString(e.UserText)
		sb.WriteString("\nAI: ")
		sb.WriteString(e.AgentText)
	}
	sb.WriteString("\nYou: ")
	sb.WriteString(userText)
	return sb.String()
}
