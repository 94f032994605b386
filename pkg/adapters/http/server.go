package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Engine defines the navigation core the HTTP surface drives. The
// root chalk Engine satisfies it.
type Engine interface {
	Deck() *domain.Deck
	Advance(state *domain.State) *domain.State
	Rewind(state *domain.State) *domain.State
	Goto(state *domain.State, slide int) *domain.State
	Frame(state *domain.State) domain.Frame
	Watch(ctx context.Context) (<-chan string, error)
}

// Server implements the generated ServerInterface.
type Server struct {
	Engine   Engine
	Sessions *session.Manager
	Streams  *StreamManager
	Metrics  *Metrics

	version string
	logger  *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// HandlerOption configures the HTTP handler.
type HandlerOption func(*Server)

// WithVersion sets the version string reported on /info.
func WithVersion(version string) HandlerOption {
	return func(s *Server) {
		s.version = version
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler creates the HTTP handler for a loaded deck.
func NewHandler(engine Engine, sessions *session.Manager, opts ...HandlerOption) http.Handler {
	server := &Server{
		Engine:   engine,
		Sessions: sessions,
		Streams:  NewStreamManager(),
		Metrics:  NewMetrics(),
		version:  "dev",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		// Use the generated rawSpec function to get the embedded spec
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.logger.Error("failed to load OpenAPI spec", "err", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		server.Metrics.Registry(),
		promhttp.HandlerOpts{},
	))

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Chalk API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// navEvent is the SSE payload broadcast after each navigation.
type navEvent struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	SlideID   string `json:"slide_id"`
	Slide     int    `json:"slide"`
	Step      int    `json:"step"`
}

// GetDeck handles GET /deck.
func (s *Server) GetDeck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, deckSummaryFromDomain(s.Engine.Deck()))
}

// GetSlide handles GET /slides/{index}. The index is zero-based.
func (s *Server) GetSlide(w http.ResponseWriter, r *http.Request, index int) {
	slide := s.Engine.Deck().SlideAt(index)
	if slide == nil {
		http.Error(w, fmt.Sprintf("Slide %d not found", index), http.StatusNotFound)
		return
	}

	s.Metrics.SlideViews.WithLabelValues(slide.ID).Inc()
	writeJSON(w, http.StatusOK, slideFromDomain(*slide))
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id string) {
	state, err := s.Sessions.Load(r.Context(), id)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("session load failed", "session_id", id, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, NavigateResponse{
		Session: sessionFromDomain(state),
		Frame:   frameFromDomain(s.Engine.Frame(state)),
	})
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.logger.Error("session delete failed", "session_id", id, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Navigate handles POST /sessions/{id}/navigate. The session is
// created on first use; movement is clamped, never an error.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request, id string) {
	var body NavigateJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("navigate: invalid request body", "err", err)
		return
	}

	var frame domain.Frame
	var moved *domain.State
	err := s.Sessions.WithLock(r.Context(), id, func(ctx context.Context) error {
		state, err := s.Sessions.Store().Load(ctx, id)
		if err == domain.ErrSessionNotFound {
			state = domain.NewState(id)
		} else if err != nil {
			return err
		}

		var next *domain.State
		switch body.Action {
		case "advance":
			next = s.Engine.Advance(state)
		case "rewind":
			next = s.Engine.Rewind(state)
		case "goto":
			if body.Slide == nil {
				return errBadAction
			}
			next = s.Engine.Goto(state, *body.Slide)
		default:
			return errBadAction
		}

		if err := s.Sessions.Store().Save(ctx, id, next); err != nil {
			return err
		}
		moved = next
		frame = s.Engine.Frame(next)
		return nil
	})
	if err == errBadAction {
		http.Error(w, "Invalid action: expected advance, rewind or goto (with slide)", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Navigate error: %v", err), http.StatusInternalServerError)
		s.logger.Error("navigate failed", "session_id", id, "err", err)
		return
	}

	s.Metrics.Navigations.WithLabelValues(body.Action).Inc()
	if frame.Slide != nil {
		s.Metrics.SlideViews.WithLabelValues(frame.Slide.ID).Inc()
		event := navEvent{
			SessionID: id,
			Action:    body.Action,
			SlideID:   frame.Slide.ID,
			Slide:     frame.SlideIndex,
			Step:      frame.StepIndex,
		}
		if bytes, err := json.Marshal(event); err == nil {
			s.Streams.Broadcast(id, string(bytes))
		}
	}

	writeJSON(w, http.StatusOK, NavigateResponse{
		Session: sessionFromDomain(moved),
		Frame:   frameFromDomain(frame),
	})
}

var errBadAction = fmt.Errorf("invalid navigate action")

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		App:     "chalk-http",
		Version: strings.TrimSpace(s.version),
		Deck:    s.Engine.Deck().Title,
	})
}

// SubscribeEvents handles GET /events (SSE). Without a session_id it
// streams deck change notifications for hot reload; with one it
// streams that session's navigation events.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, params SubscribeEventsParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s.Metrics.Subscribers.Inc()
	defer s.Metrics.Subscribers.Dec()

	if params.SessionId == nil || *params.SessionId == "" {
		events, err := s.Engine.Watch(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Watch error: %v", err), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: reload\ndata: %s\n\n", event)
				flusher.Flush()
			}
		}
	}

	ch, cancel := s.Streams.Subscribe(*params.SessionId)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
