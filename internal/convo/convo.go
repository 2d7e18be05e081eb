package convo

// Exchange is one user input / agent output pair retained for
// conversational context. Immutable once stored.
type Exchange struct {
	UserText  string
	AgentText string
}

// Store persists exchanges across process restarts.
type Store interface {
	Append(e Exchange) error
	Load(limit int) ([]Exchange, error)
}
