package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the navigation core the MCP surface exposes to
// machine clients. The root chalk Engine satisfies it.
type Engine interface {
	Deck() *domain.Deck
	Advance(state *domain.State) *domain.State
	Rewind(state *domain.State) *domain.State
	Goto(state *domain.State, slide int) *domain.State
	Frame(state *domain.State) domain.Frame
}

// NavigateResult is the payload returned by the navigate tool.
type NavigateResult struct {
	Session *domain.State `json:"session"`
	Frame   domain.Frame  `json:"frame"`
}

// Server exposes a loaded deck as an MCP server: tools for navigation
// and lookups, plus the deck itself as a resource.
type Server struct {
	engine    Engine
	sessions  *session.Manager
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, sessions *session.Manager, version string) *Server {
	s := &Server{
		engine:    engine,
		sessions:  sessions,
		mcpServer: server.NewMCPServer("chalk-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: get_deck
	s.mcpServer.AddTool(mcp.NewTool("get_deck",
		mcp.WithDescription("Get the deck overview: title, author and the ordered list of slides with their step counts."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deck := s.engine.Deck()
		overview := struct {
			Title  string `json:"title"`
			Author string `json:"author,omitempty"`
			Slides []struct {
				ID    string `json:"id"`
				Title string `json:"title,omitempty"`
				Steps int    `json:"steps"`
			} `json:"slides"`
		}{Title: deck.Title, Author: deck.Author}
		for _, slide := range deck.Slides {
			overview.Slides = append(overview.Slides, struct {
				ID    string `json:"id"`
				Title string `json:"title,omitempty"`
				Steps int    `json:"steps"`
			}{ID: slide.ID, Title: slide.Title, Steps: slide.StepCount()})
		}
		jsonBytes, _ := json.Marshal(overview)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_slide
	getSlideTool := mcp.NewTool("get_slide",
		mcp.WithDescription("Get the full content of a slide by its ID, including steps, code blocks and speaker notes."),
		mcp.WithString("id", mcp.Required(), mcp.Description("The slide ID")),
	)
	s.mcpServer.AddTool(getSlideTool, s.handleGetSlide)

	// TOOL: navigate
	navigateTool := mcp.NewTool("navigate",
		mcp.WithDescription("Move a session cursor through the deck. Movement is clamped at the deck boundaries."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier; created on first use")),
		mcp.WithString("action", mcp.Required(), mcp.Description("One of: advance, rewind, goto")),
		mcp.WithNumber("slide", mcp.Description("Target slide index for goto (zero-based)")),
	)
	s.mcpServer.AddTool(navigateTool, s.handleNavigate)
}

func (s *Server) handleGetSlide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id, _ := args["id"].(string)

	for _, slide := range s.engine.Deck().Slides {
		if slide.ID == id {
			jsonBytes, _ := json.Marshal(slide)
			return mcp.NewToolResultText(string(jsonBytes)), nil
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("slide '%s' not found", id)), nil
}

func (s *Server) handleNavigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	sessionID, _ := args["session_id"].(string)
	action, _ := args["action"].(string)

	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	var result NavigateResult
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err == domain.ErrSessionNotFound {
			state = domain.NewState(sessionID)
		} else if err != nil {
			return err
		}

		var next *domain.State
		switch action {
		case "advance":
			next = s.engine.Advance(state)
		case "rewind":
			next = s.engine.Rewind(state)
		case "goto":
			slide, ok := args["slide"].(float64)
			if !ok {
				return fmt.Errorf("goto requires a numeric 'slide' argument")
			}
			next = s.engine.Goto(state, int(slide))
		default:
			return fmt.Errorf("unknown action '%s': expected advance, rewind or goto", action)
		}

		if err := s.sessions.Store().Save(ctx, sessionID, next); err != nil {
			return err
		}
		result = NavigateResult{Session: next, Frame: s.engine.Frame(next)}
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonBytes, _ := json.Marshal(result)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: chalk://deck
	s.mcpServer.AddResource(mcp.NewResource("chalk://deck", "Current Deck",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Deck())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal deck: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "chalk://deck",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
