package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/arbolin/internal/config"
)

const (
	// maxBody bounds a POST body.
	maxBody = 4 << 10
	// persistTimeout bounds one board save.
	persistTimeout = 5 * time.Second
)

// Server exposes a Board over HTTP and pushes snapshots over WebSocket.
type Server struct {
	cfg    config.ServerConfig
	board  *Board
	hub    *Hub
	logger *log.Logger
	now    func() time.Time
}

// NewServer wires a server around board.
func NewServer(cfg config.ServerConfig, board *Board, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{
		cfg:    cfg,
		board:  board,
		hub:    NewHub(cfg.SendBuffer, cfg.WriteTimeout, logger),
		logger: logger,
		now:    time.Now,
	}
}

// Hub exposes the viewer hub.
func (s *Server) Hub() *Hub { return s.hub }

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/leaderboard", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/leaderboard", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWatch).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	return r
}

// Run serves on cfg.Addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("leaderboard: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. It also drives
// the heartbeat push.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Info("leaderboard listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("leaderboard: serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		s.heartbeat(ctx)
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

func (s *Server) heartbeat(ctx context.Context) {
	every := s.cfg.Heartbeat
	if every <= 0 {
		every = 30 * time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.push(s.board.Snapshot())
		}
	}
}

func (s *Server) push(entries []Entry) {
	frame, err := EncodeSnapshot(entries)
	if err != nil {
		s.logger.Error("encode snapshot", "error", err)
		return
	}
	s.hub.Broadcast(frame)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.board.Snapshot()))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid entry"})
		return
	}

	e, err := DecodeEntry(body, s.now())
	if err != nil {
		s.logger.Debug("rejected entry", "error", err, "remote", r.RemoteAddr)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid entry"})
		return
	}
	e.Name = truncateRunes(e.Name, s.cfg.MaxNameLen)

	// the write outlives a client that hangs up mid-request
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), persistTimeout)
	defer cancel()
	snap, err := s.board.Add(ctx, e)
	if err != nil && snap == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid entry"})
		return
	}
	if err != nil {
		s.logger.Warn("persist leaderboard", "error", err)
	}

	s.logger.Info("score submitted", "name", e.Name, "score", e.Score)
	s.push(snap)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("websocket accept", "error", err)
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	frame, err := EncodeSnapshot(s.board.Snapshot())
	if err != nil {
		s.logger.Error("encode snapshot", "error", err)
		return
	}
	if err := s.hub.Serve(r.Context(), conn, frame); err != nil {
		s.logger.Debug("viewer closed", "error", err)
	}
}

// handleRoot accepts WebSocket upgrades on "/" for viewers that connect to
// the bare host.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		s.handleWatch(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "arbolin leaderboard\n") //nolint:errcheck
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func nonNil(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}

func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
