// Package feed is the local HTTP endpoint that media sources push lyrics and
// progress to, and that websocket render surfaces subscribe to.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"karolbroda.com/lyroverlay/internal/engine"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/render"
)

const maxBodyBytes = 4 << 20

// Sink receives validated feed events.
type Sink interface {
	PushLyrics(data lyrics.Data) error
	PushProgress(ev engine.ProgressEvent) error
	PushHover(hovering bool) error
	PushLock(locked bool) error
	PushUnlockProgress(progress float64) error
	PointerDown() error
	Latest() render.State
	Subscribe() (string, <-chan render.State)
	Unsubscribe(id string)
}

type Server struct {
	sink     Sink
	hub      *Hub
	router   *mux.Router
	upgrader websocket.Upgrader
}

func NewServer(sink Sink) *Server {
	s := &Server{
		sink: sink,
		hub:  NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// the listener is bound to loopback; browser sources on any origin
			// are expected, as with the CORS policy
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	router.HandleFunc("/lyrics", s.handleLyrics).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/progress", s.handleProgress).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/hover", s.handleHover).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/lock", s.handleLock).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/unlock-progress", s.handleUnlockProgress).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/drag", s.handleDrag).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)

	s.router = router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Hub() *Hub {
	return s.hub
}

// Run serves on 127.0.0.1:port until ctx is cancelled.
func (s *Server) Run(ctx context.Context, port int) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go s.hub.Run(ctx)
	go s.forwardStates(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("feed server listening", logger.String("addr", listener.Addr().String()))
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down feed server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// forwardStates pushes every derived render state to websocket clients.
func (s *Server) forwardStates(ctx context.Context) {
	id, states := s.sink.Subscribe()
	defer s.sink.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			data, err := json.Marshal(state)
			if err != nil {
				logger.Error("failed to encode render state", logger.ErrorField(err))
				continue
			}
			s.hub.Broadcast(data)
		}
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

// reject drops a malformed payload at the boundary.
func reject(w http.ResponseWriter, r *http.Request, err error) {
	logger.Debug("dropping malformed feed payload",
		logger.String("path", r.URL.Path), logger.ErrorField(err))
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func accepted(w http.ResponseWriter, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleLyrics(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	data, err := decodeLyrics(body)
	if err != nil {
		reject(w, r, err)
		return
	}

	logger.Debug("lyrics received",
		logger.String("track", data.Track.Title),
		logger.Int("lines", len(data.Lines)),
		logger.Bool("synced", data.IsSynced))

	accepted(w, s.sink.PushLyrics(data))
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	ev, err := decodeProgress(body)
	if err != nil {
		reject(w, r, err)
		return
	}

	accepted(w, s.sink.PushProgress(ev))
}

func (s *Server) handleHover(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var p hoverPayload
	if err := json.Unmarshal(body, &p); err != nil {
		reject(w, r, err)
		return
	}
	if p.Hovering == nil {
		reject(w, r, missing("hovering"))
		return
	}

	accepted(w, s.sink.PushHover(*p.Hovering))
}

func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var p lockPayload
	if err := json.Unmarshal(body, &p); err != nil {
		reject(w, r, err)
		return
	}
	if p.Locked == nil {
		reject(w, r, missing("locked"))
		return
	}

	accepted(w, s.sink.PushLock(*p.Locked))
}

func (s *Server) handleUnlockProgress(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var p unlockProgressPayload
	if err := json.Unmarshal(body, &p); err != nil {
		reject(w, r, err)
		return
	}
	if p.Progress == nil {
		reject(w, r, missing("progress"))
		return
	}

	accepted(w, s.sink.PushUnlockProgress(*p.Progress))
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	accepted(w, s.sink.PointerDown())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.sink.Latest()); err != nil {
		logger.Warn("failed to write state", logger.ErrorField(err))
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	initial, err := json.Marshal(s.sink.Latest())
	if err != nil {
		http.Error(w, "failed to encode state", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", logger.ErrorField(err))
		return
	}

	s.hub.attach(conn, initial)
}
