// Package vizweb serves step-by-step A* runs over random grids as JSON, for
// browser visualisations and debugging.
package vizweb

import (
	"cmp"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	astar "github.com/pdrpinto/astarkit"
	"github.com/pdrpinto/astarkit/internal/grid"
)

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// InitRequest is the body of POST /api/sessions. The body may be empty. Unset
// fields take the defaults of grid.DefaultRandomParams; a zero seed picks a
// random one.
type InitRequest = grid.RandomParams

// InitResponse describes a new session.
type InitResponse struct {
	ID    string       `json:"id"`
	W     int          `json:"w"`
	H     int          `json:"h"`
	Start grid.Point   `json:"start"`
	Goal  grid.Point   `json:"goal"`
	Walls []grid.Point `json:"walls"`
}

// Snapshot is the JSON form of one search step.
type Snapshot struct {
	Step    int          `json:"step"`
	Current grid.Point   `json:"current"`
	Open    []grid.Point `json:"open,omitempty"`
	Closed  []grid.Point `json:"closed,omitempty"`
	Done    bool         `json:"done"`
	Found   bool         `json:"found"`
	Path    []grid.Point `json:"path,omitempty"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DefaultMaxSessions is the session limit of a server built without
// WithMaxSessions.
const DefaultMaxSessions = 64

type session struct {
	// lastUsed is guarded by Server.mu.
	lastUsed uint64

	mu      sync.Mutex
	grid    *grid.Grid
	start   grid.Point
	goal    grid.Point
	stepper *astar.Stepper[grid.Point]
	last    astar.StepSnapshot[grid.Point]
}

// Server holds the running sessions. Once maxSessions are open, creating a
// session evicts the least recently used one.
type Server struct {
	mu          sync.Mutex
	sessions    map[string]*session
	maxSessions int
	clock       uint64

	logger   *slog.Logger
	renderer *grid.Renderer
}

// ServerOption is a function that modifies a Server.
type ServerOption func(*Server)

// WithMaxSessions sets how many sessions are kept. Values below 1 are ignored.
func WithMaxSessions(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// NewServer creates a server. A nil logger falls back to slog.Default().
func NewServer(logger *slog.Logger, options ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		sessions:    make(map[string]*session),
		maxSessions: DefaultMaxSessions,
		logger:      logger,
		renderer:    grid.NewRenderer(false),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Router returns the HTTP routes of the server.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.POST("/sessions", s.HandleCreate)
	api.POST("/sessions/:id/step", s.HandleStep)
	api.GET("/sessions/:id/render", s.HandleRender)
	api.DELETE("/sessions/:id", s.HandleDelete)
	return router
}

// HandleCreate handles POST /api/sessions.
func (s *Server) HandleCreate(c *gin.Context) {
	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: "INVALID_REQUEST"})
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}

	g, start, goal := grid.Random(req)
	sess := &session{
		grid:    g,
		start:   start,
		goal:    goal,
		stepper: astar.NewStepper(start, g.Problem(goal), astar.WithLogger(s.logger)),
	}
	id := uuid.NewString()

	s.mu.Lock()
	for len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.clock++
	sess.lastUsed = s.clock
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("Session created", "session_id", id, "w", g.Width, "h", g.Height, "walls", len(g.Walls))
	c.JSON(http.StatusOK, InitResponse{
		ID:    id,
		W:     g.Width,
		H:     g.Height,
		Start: start,
		Goal:  goal,
		Walls: sortedPoints(g.Walls),
	})
}

// HandleStep handles POST /api/sessions/:id/step.
func (s *Server) HandleStep(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	sess.last = sess.stepper.Step()
	snap := sess.last
	sess.mu.Unlock()

	if snap.Done {
		s.logger.Debug("Search done", "session_id", c.Param("id"), "found", snap.Found, "steps", snap.StepIndex)
	}
	c.JSON(http.StatusOK, Snapshot{
		Step:    snap.StepIndex,
		Current: snap.Current,
		Open:    sortedPoints(snap.Open),
		Closed:  sortedPoints(snap.Closed),
		Done:    snap.Done,
		Found:   snap.Found,
		Path:    snap.Path,
	})
}

// HandleRender handles GET /api/sessions/:id/render.
func (s *Server) HandleRender(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	out := s.renderer.Render(sess.grid, sess.start, sess.goal, sess.last.Path, sess.last.Closed)
	sess.mu.Unlock()

	c.String(http.StatusOK, out)
}

// HandleDelete handles DELETE /api/sessions/:id.
func (s *Server) HandleDelete(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		s.notFound(c, id)
		return
	}
	s.logger.Info("Session deleted", "session_id", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) lookup(c *gin.Context) (*session, bool) {
	id := c.Param("id")

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		s.clock++
		sess.lastUsed = s.clock
	}
	s.mu.Unlock()

	if !ok {
		s.notFound(c, id)
	}
	return sess, ok
}

// evictOldestLocked drops the least recently used session. s.mu must be held.
func (s *Server) evictOldestLocked() {
	var (
		oldestID string
		oldest   *session
	)
	for id, sess := range s.sessions {
		if oldest == nil || sess.lastUsed < oldest.lastUsed {
			oldestID, oldest = id, sess
		}
	}
	if oldest == nil {
		return
	}
	delete(s.sessions, oldestID)
	s.logger.Info("Session evicted", "session_id", oldestID)
}

func (s *Server) notFound(c *gin.Context, id string) {
	s.logger.Warn("Unknown session", "session_id", id)
	c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrSessionNotFound.Error(), Code: "SESSION_NOT_FOUND"})
}

func sortedPoints(set map[grid.Point]bool) []grid.Point {
	points := make([]grid.Point, 0, len(set))
	for p, ok := range set {
		if ok {
			points = append(points, p)
		}
	}
	slices.SortFunc(points, func(a, b grid.Point) int {
		if c := cmp.Compare(a[1], b[1]); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})
	return points
}
