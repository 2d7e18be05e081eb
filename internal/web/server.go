package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stupiduntilnot/localagent/internal/agent"
	"github.com/stupiduntilnot/localagent/internal/speech"
)

// Server is the web surface over one agent session. The session itself
// serializes requests, so concurrent browsers still get the strictly
// sequential loop.
type Server struct {
	session *agent.Session
	synth   speech.Synthesizer
	logger  *zap.Logger
}

// NewServer creates the web surface. synth may be nil when spoken replies
// are disabled.
func NewServer(session *agent.Session, synth speech.Synthesizer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{session: session, synth: synth, logger: logger}
}

// Handler returns the HTTP handler: the chat page on / and the JSON API
// on /api/query.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/query", s.handleQuery)
	return mux
}

type queryRequest struct {
	Text  string `json:"text"`
	Speak bool   `json:"speak,omitempty"`
}

type queryResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Reply       string `json:"reply,omitempty"`
	Error       string `json:"error,omitempty"`
	SpeechError string `json:"speech_error,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	resp := queryResponse{ID: uuid.NewString()}

	reply, err := s.session.Handle(r.Context(), req.Text)
	resp.Kind = reply.Kind.String()
	if err != nil {
		// Handler failures are rendered to the user, never fatal.
		s.logger.Warn("request failed",
			zap.String("request_id", resp.ID),
			zap.String("kind", resp.Kind),
			zap.Error(err))
		resp.Error = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Reply = reply.Text

	if req.Speak && s.synth != nil {
		// Blocks until playback completes, matching console behavior.
		if err := s.synth.Speak(r.Context(), reply.Text); err != nil {
			s.logger.Warn("speech synthesis failed",
				zap.String("request_id", resp.ID),
				zap.Error(err))
			resp.SpeechError = err.Error()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
