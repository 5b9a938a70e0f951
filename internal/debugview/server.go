package debugview

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/pkg/collision"
)

type Config struct {
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Frame is one snapshot of a scene as pushed to viewers.
type Frame struct {
	Scene    string                 `json:"scene"`
	Bounds   collision.Rect         `json:"bounds"`
	Shapes   []collision.DebugShape `json:"shapes"`
	Segments []collision.Segment    `json:"segments"`
}

// NewFrame flattens the outlines into drawable segments as well. Bounds
// lets the viewer fit its camera.
func NewFrame(scene string, bounds collision.Rect, shapes []collision.DebugShape) Frame {
	f := Frame{Scene: scene, Bounds: bounds, Shapes: shapes}
	for _, s := range shapes {
		for seg := range s.Segments() {
			f.Segments = append(f.Segments, seg)
		}
	}
	return f
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// Server streams frames to websocket viewers on GET /outlines. New viewers
// receive the latest frame right away. Frames are numbered as they are
// published and a viewer never receives a frame older than one it already has.
type Server struct {
	log    log.Log
	config Config

	mu      sync.RWMutex
	clients map[string]*client
	latest  *Frame
	version uint64
}

func NewServer(logger log.Log, config Config) *Server {
	return &Server{
		log:     logger.With(log.String("component", "debugview")),
		config:  config,
		clients: make(map[string]*client),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /outlines", s.handleOutlines)
	return mux
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("Debug view listening", log.String("addr", addr))

	select {
	case err := <-errCh:
		return errors.Wrap(err, "debug view server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down debug view")
	}
	return nil
}

// Publish stores frame as the latest and sends it to every viewer. Viewers
// that fail to receive it are dropped.
func (s *Server) Publish(frame Frame) {
	s.mu.Lock()
	s.latest = &frame
	s.version++
	version := s.version
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(frame, version, s.config.WriteTimeout); err != nil {
			s.log.Warn("Dropping viewer", log.String("client_id", c.id), log.Error(err))
			s.remove(c.id)
		}
	}
}

func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) handleOutlines(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", log.Error(err))
		return
	}
	c := newClient(conn)
	logger := s.log.WithContext(log.ContextWithRequestID(r.Context(), c.id))

	s.mu.Lock()
	s.clients[c.id] = c
	latest, version := s.latest, s.version
	s.mu.Unlock()
	logger.Debug("Viewer connected", log.String("remote", conn.RemoteAddr().String()))

	if latest != nil {
		if err = c.send(*latest, version, s.config.WriteTimeout); err != nil {
			logger.Warn("Initial frame failed", log.Error(err))
			s.remove(c.id)
			return
		}
	}

	// Viewers never send anything meaningful; reading detects the close.
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	s.remove(c.id)
	logger.Debug("Viewer disconnected")
}

func (s *Server) remove(id string) {
	s.mu.Lock()
	c, ok := s.clients[id]
	delete(s.clients, id)
	s.mu.Unlock()
	if ok {
		_ = c.close()
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	clients := s.clients
	s.clients = make(map[string]*client)
	s.mu.Unlock()
	for _, c := range clients {
		_ = c.close()
	}
}
