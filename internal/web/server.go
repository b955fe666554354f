// Package web serves the browser theme editor: a single embedded page that
// drives an editor.Editor over a small JSON API and receives live state over
// a WebSocket.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/dkoosis/rtheme/internal/editor"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/preview"
	"github.com/dkoosis/rtheme/pkg/theme"
)

//go:embed static
var staticFS embed.FS

const shutdownTimeout = 5 * time.Second

var errCrossOrigin = errors.New("cross-origin request not allowed")

// Server is the HTTP front end over one editor.
type Server struct {
	ed       *editor.Editor
	hub      *hub
	html     *preview.HTML
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewServer creates a server and subscribes it to editor changes.
func NewServer(ed *editor.Editor, log zerolog.Logger) *Server {
	s := &Server{
		ed:   ed,
		hub:  newHub(log),
		html: preview.NewHTML(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
	ed.OnChange(func() {
		if s.hub.count() > 0 {
			s.hub.broadcast(s.state())
		}
	})
	return s
}

// Register adds the editor routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/state", s.sameOrigin(s.handlePatch))
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("GET /api/download", s.handleDownload)
	mux.HandleFunc("GET /api/preview", s.handlePreview)
	mux.HandleFunc("POST /api/generate", s.sameOrigin(s.handleGenerate))
	mux.HandleFunc("POST /api/refresh", s.sameOrigin(s.handleRefresh))
	mux.HandleFunc("POST /api/copy", s.sameOrigin(s.handleCopy))
	mux.HandleFunc("POST /api/theme", s.sameOrigin(s.handleTheme))
	mux.HandleFunc("GET /ws", s.handleWS)
}

// sameOrigin rejects cross-site requests: an Origin header, when present,
// must name the host being served, as the WebSocket upgrader requires of /ws.
func (s *Server) sameOrigin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next(w, r)
			return
		}
		u, err := url.Parse(origin)
		if err != nil || !strings.EqualFold(u.Host, r.Host) {
			s.log.Warn().Str("origin", origin).Str("path", r.URL.Path).Msg("cross-origin request rejected")
			s.writeError(w, http.StatusForbidden, errCrossOrigin)
			return
		}
		next(w, r)
	}
}

// Handler returns a mux with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info().Str("addr", "http://"+ln.Addr().String()).Msg("browser editor listening")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	s.hub.closeAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// colorState is one color as the page edits it.
type colorState struct {
	Base    string   `json:"base"`
	Hex     string   `json:"hex"`
	Effects []string `json:"effects"`
}

type fieldState struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Tab     string   `json:"tab"`
	Kind    string   `json:"kind"`
	Choices []string `json:"choices,omitempty"`
}

// State is the full editor state pushed to the page.
type State struct {
	Form         editor.Form           `json:"form"`
	Colors       map[string]colorState `json:"colors"`
	ColorNames   []string              `json:"color_names"`
	Effects      []string              `json:"effects"`
	Fields       []fieldState          `json:"fields"`
	Tabs         []string              `json:"tabs"`
	Tab          string                `json:"tab"`
	Format       codec.Format          `json:"format"`
	Mode         string                `json:"mode"`
	Presets      []string              `json:"presets"`
	Filename     string                `json:"filename"`
	Preview      string                `json:"preview"`
	Export       string                `json:"export"`
	Notification *editor.Notification  `json:"notification,omitempty"`
}

var kindNames = map[editor.FieldKind]string{
	editor.KindText:      "text",
	editor.KindMultiline: "multiline",
	editor.KindBool:      "bool",
	editor.KindChoice:    "choice",
}

func (s *Server) state() State {
	colors := s.ed.Colors()
	cs := make(map[string]colorState, len(theme.ColorNames))
	for _, name := range theme.ColorNames {
		c, _ := colors.Lookup(name)
		cs[name] = colorState{Base: c.Base, Hex: c.Hex(), Effects: c.Effects}
	}
	fields := make([]fieldState, len(editor.Fields))
	for i, f := range editor.Fields {
		fields[i] = fieldState{Key: f.Key, Label: f.Label, Tab: f.Tab, Kind: kindNames[f.Kind], Choices: f.Choices}
	}

	out, err := s.ed.Export()
	if err != nil {
		out = err.Error()
	}
	st := State{
		Form:       s.ed.Form(),
		Colors:     cs,
		ColorNames: theme.ColorNames,
		Effects:    theme.EffectNames,
		Fields:     fields,
		Tabs:       editor.Tabs,
		Tab:        s.ed.Tab(),
		Format:     s.ed.Format(),
		Mode:       s.ed.Mode(),
		Presets:    theme.PresetNames(),
		Filename:   s.ed.Filename(),
		Preview:    s.ed.Preview(s.html),
		Export:     out,
	}
	if n, ok := s.ed.Notification(); ok {
		st.Notification = &n
	}
	return st
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.state())
}

// PatchRequest changes several parts of the editor in one call. Set uses
// the keys accepted by editor.Apply.
type PatchRequest struct {
	Set    map[string]string `json:"set,omitempty"`
	Tab    string            `json:"tab,omitempty"`
	Format string            `json:"format,omitempty"`
	Preset string            `json:"preset,omitempty"`
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	var req PatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.applyPatch(req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) applyPatch(req PatchRequest) error {
	if req.Preset != "" {
		if err := s.ed.LoadPreset(req.Preset); err != nil {
			return err
		}
	}
	if len(req.Set) > 0 {
		if err := s.ed.Apply(req.Set); err != nil {
			return err
		}
	}
	if req.Tab != "" {
		if err := s.ed.SetTab(req.Tab); err != nil {
			return err
		}
	}
	if req.Format != "" {
		f, err := codec.ParseFormat(req.Format)
		if err != nil {
			return err
		}
		if err := s.ed.SetFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// formatParam returns the ?format= value, or the editor's format when absent.
func (s *Server) formatParam(r *http.Request) (codec.Format, error) {
	if v := r.URL.Query().Get("format"); v != "" {
		return codec.ParseFormat(v)
	}
	return s.ed.Format(), nil
}

func (s *Server) encode(r *http.Request) ([]byte, *theme.Document, codec.Format, error) {
	f, err := s.formatParam(r)
	if err != nil {
		return nil, nil, "", err
	}
	doc := s.ed.Snapshot()
	out, err := codec.Encode(doc, f)
	if err != nil {
		return nil, nil, "", err
	}
	return out, doc, f, nil
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	out, _, _, err := s.encode(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(out)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	out, doc, f, err := s.encode(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	name := codec.Filename(doc.Meta.Name, f)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(name))
	_, _ = w.Write(out)
	s.log.Info().Str("file", name).Msg("theme downloaded")
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.ed.Preview(s.html)))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if _, err := s.ed.Generate(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.ed.Refresh(s.html)
	s.writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	// Failures reach the page as an error notification.
	_ = s.ed.Copy()
	s.writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := s.ed.ToggleMode(); err != nil {
		s.log.Warn().Err(err).Msg("editor mode not saved")
	}
	s.writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := s.hub.add(conn)
	defer s.hub.remove(c.id)

	if err := c.writeJSON(s.state()); err != nil {
		return
	}
	// The page only listens; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn().Err(err).Msg("failed to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
