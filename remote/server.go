package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/engine"
	"github.com/katalvlaran/stepwalk/steps"
)

const requestIDHeader = "X-Request-ID"

// ServerOptions configures a Server.
type ServerOptions struct {
	Computer     engine.Computer      // records sequences; engine.Local by default
	Logger       *log.Logger          // request log; discarded when nil
	Registry     *prometheus.Registry // metrics registry; a fresh one by default
	RateLimit    float64              // requests per second, <= 0 disables limiting
	Burst        int                  // limiter burst, at least 1
	MaxVertices  int                  // larger graphs are refused, <= 0 means no cap
	MaxEdges     int                  // likewise for edges
	MaxBodyBytes int64                // request body cap, <= 0 means none
	ShutdownIn   time.Duration        // grace period for Serve
}

// ServerOption configures ServerOptions.
type ServerOption func(*ServerOptions)

// WithComputer replaces the in-process computer.
func WithComputer(c engine.Computer) ServerOption {
	return func(o *ServerOptions) { o.Computer = c }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) ServerOption {
	return func(o *ServerOptions) { o.Logger = l }
}

// WithRegistry sets the Prometheus registry metrics are registered with and
// served from.
func WithRegistry(r *prometheus.Registry) ServerOption {
	return func(o *ServerOptions) { o.Registry = r }
}

// WithRateLimit limits request throughput across all clients.
func WithRateLimit(perSecond float64, burst int) ServerOption {
	return func(o *ServerOptions) {
		o.RateLimit = perSecond
		o.Burst = burst
	}
}

// WithMaxVertices refuses graphs with more than n vertices.
func WithMaxVertices(n int) ServerOption {
	return func(o *ServerOptions) { o.MaxVertices = n }
}

// WithMaxEdges refuses graphs with more than n edges.
func WithMaxEdges(n int) ServerOption {
	return func(o *ServerOptions) { o.MaxEdges = n }
}

// WithMaxBodyBytes caps the size of request bodies.
func WithMaxBodyBytes(n int64) ServerOption {
	return func(o *ServerOptions) { o.MaxBodyBytes = n }
}

// DefaultBodyLimit is the default request body cap.
const DefaultBodyLimit int64 = 8 << 20

// DefaultServerOptions returns local computation, no rate or graph limits, an
// 8 MiB body cap and a 5s grace period.
func DefaultServerOptions() ServerOptions {
	return ServerOptions{
		Computer:     engine.Local{},
		Burst:        1,
		MaxBodyBytes: DefaultBodyLimit,
		ShutdownIn:   5 * time.Second,
	}
}

// Server serves step sequences over HTTP.
type Server struct {
	opts     ServerOptions
	logger   *log.Logger
	metrics  *Metrics
	validate *validator.Validate
	limiter  *rate.Limiter
	router   *gin.Engine
}

// NewServer builds the router. gin's mode is left to the caller.
func NewServer(opts ...ServerOption) *Server {
	o := DefaultServerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Computer == nil {
		o.Computer = engine.Local{}
	}
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}

	limit := rate.Inf
	if o.RateLimit > 0 {
		limit = rate.Limit(o.RateLimit)
	}

	s := &Server{
		opts:     o,
		logger:   o.Logger,
		metrics:  NewMetrics(o.Registry),
		validate: validator.New(),
		limiter:  rate.NewLimiter(limit, max(1, o.Burst)),
	}
	s.router = s.routes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("remote: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownIn)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID, s.accessLog)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.GET("/health", s.handleHealth)
	v1.POST("/dijkstra", s.rateLimit, s.handleCompute(steps.Dijkstra))
	v1.POST("/steps", s.rateLimit, s.handleCompute(""))

	return r
}

// requestID echoes X-Request-ID, creating one when absent.
func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(requestIDHeader, id)
	c.Set(requestIDHeader, id)
	c.Next()
}

func (s *Server) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Info("request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"took", time.Since(start),
		"request_id", c.GetString(requestIDHeader))
}

func (s *Server) rateLimit(c *gin.Context) {
	if !s.limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "rate limit exceeded",
			Code:  CodeRateLimited,
		})
		return
	}
	c.Next()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleCompute records a sequence. A non-empty pinned algorithm is assumed
// when the request names none and rejected when it names another.
func (s *Server) handleCompute(pinned steps.Algorithm) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := s.logger.With("request_id", c.GetString(requestIDHeader))

		// Until the algorithm parses, metrics use a fixed label.
		alg := rejectedLabel(pinned)

		if s.opts.MaxBodyBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxBodyBytes)
		}
		var req engine.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.reject(c, alg, http.StatusRequestEntityTooLarge, CodeGraphTooLarge,
					fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), nil)
				return
			}
			s.reject(c, alg, http.StatusBadRequest, CodeInvalidRequest, "invalid request body", err)
			return
		}
		if req.Algorithm == "" {
			req.Algorithm = pinned
		}
		parsed, err := steps.ParseAlgorithm(string(req.Algorithm))
		if err != nil {
			code := CodeWrongAlgorithm
			if req.Algorithm == "" {
				code = CodeInvalidRequest
			}
			s.reject(c, alg, http.StatusBadRequest, code, "unknown algorithm", err)
			return
		}
		if pinned != "" && parsed != pinned {
			s.reject(c, alg, http.StatusBadRequest, CodeWrongAlgorithm,
				fmt.Sprintf("this endpoint only records %s", pinned), nil)
			return
		}
		alg = string(parsed)
		if req.Source == "" {
			s.reject(c, alg, http.StatusBadRequest, CodeEmptySource, engine.ErrEmptySource.Error(), nil)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			s.reject(c, alg, http.StatusBadRequest, CodeInvalidRequest, "request failed validation", err)
			return
		}
		if s.opts.MaxVertices > 0 && len(req.Vertices) > s.opts.MaxVertices {
			s.reject(c, alg, http.StatusRequestEntityTooLarge, CodeGraphTooLarge,
				fmt.Sprintf("graph has %d vertices, limit is %d", len(req.Vertices), s.opts.MaxVertices), nil)
			return
		}
		if s.opts.MaxEdges > 0 && len(req.Edges) > s.opts.MaxEdges {
			s.reject(c, alg, http.StatusRequestEntityTooLarge, CodeGraphTooLarge,
				fmt.Sprintf("graph has %d edges, limit is %d", len(req.Edges), s.opts.MaxEdges), nil)
			return
		}

		start := time.Now()
		seq, err := s.opts.Computer.Compute(c.Request.Context(), req)
		if err != nil {
			status, code := classify(err)
			logger.Warn("compute failed", "algorithm", alg, "error", err)
			s.reject(c, alg, status, code, err.Error(), nil)
			return
		}
		took := time.Since(start)

		s.metrics.succeeded(alg, took, seq.Len())
		logger.Debug("computed", "algorithm", alg, "source", req.Source, "steps", seq.Len(), "took", took)
		c.JSON(http.StatusOK, seq)
	}
}

// rejectedLabel is the metrics label for requests whose algorithm never
// parsed: the endpoint's pinned algorithm, else "invalid".
func rejectedLabel(pinned steps.Algorithm) string {
	if pinned != "" {
		return string(pinned)
	}
	return "invalid"
}

func (s *Server) reject(c *gin.Context, alg string, status int, code, msg string, detail error) {
	s.metrics.failed(alg, code)
	resp := ErrorResponse{Error: msg, Code: code}
	if detail != nil {
		resp.Details = detail.Error()
	}
	c.JSON(status, resp)
}

// classify maps a compute error to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrEmptySource):
		return http.StatusBadRequest, CodeEmptySource
	case errors.Is(err, core.ErrUnknownVertex),
		errors.Is(err, core.ErrEmptyVertexID),
		errors.Is(err, core.ErrBadVertexID),
		errors.Is(err, core.ErrDuplicateVertex):
		return http.StatusBadRequest, CodeInvalidGraph
	case errors.Is(err, steps.ErrBadAlgorithm):
		return http.StatusBadRequest, CodeWrongAlgorithm
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeCanceled
	default:
		return http.StatusInternalServerError, CodeComputeFailed
	}
}
