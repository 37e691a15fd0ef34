package plugin

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Operations understood by the server.
const (
	OpTransform = "transform"
	OpResolve   = "resolve"
	OpConfig    = "config"
)

// maxLineSize bounds a single request line.
const maxLineSize = 16 << 20

// Request is one JSON line sent by the host.
type Request struct {
	ID         int64    `json:"id"`
	Op         string   `json:"op"`
	Path       string   `json:"path,omitempty"`
	Content    string   `json:"content,omitempty"`
	Importer   string   `json:"importer,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
}

// Response is one JSON line written back to the host.
type Response struct {
	ID     int64          `json:"id"`
	Result any            `json:"result"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError describes a failed request.
type ResponseError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Server answers host requests over a line-delimited JSON stream.
// Requests are handled concurrently; responses carry the request id and may
// arrive out of order.
type Server struct {
	hook        *Hook
	logger      ports.Logger
	parallelism int
}

// NewServer creates a new Server. parallelism <= 0 means unbounded.
func NewServer(hook *Hook, logger ports.Logger, parallelism int) *Server {
	return &Server{
		hook:        hook,
		logger:      logger,
		parallelism: parallelism,
	}
}

// Serve reads requests from r until EOF or ctx is done and writes responses to w.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	write := func(resp Response) {
		mu.Lock()
		defer mu.Unlock()
		if err := enc.Encode(resp); err != nil {
			s.logger.Error(zerr.Wrap(err, "failed to write response"))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.parallelism > 0 {
		g.SetLimit(s.parallelism)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for scanner.Scan() {
		if gctx.Err() != nil {
			break
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			write(Response{Error: &ResponseError{Kind: "invalid_request", Message: err.Error()}})
			continue
		}

		g.Go(func() error {
			write(s.handle(gctx, req))
			return nil
		})
	}

	waitErr := g.Wait()
	if err := scanner.Err(); err != nil {
		return zerr.Wrap(err, "failed to read request stream")
	}
	if waitErr != nil {
		return waitErr
	}
	return ctx.Err()
}

func (s *Server) handle(ctx context.Context, req Request) Response {
	resp := Response{ID: req.ID}

	var err error
	switch req.Op {
	case OpTransform:
		var res *TransformResult
		res, err = s.hook.Transform(ctx, req.Content, req.Path)
		if res != nil {
			resp.Result = res
		}
	case OpResolve:
		var resolved string
		resolved, err = s.hook.ResolveID(req.Path, req.Importer)
		if resolved != "" {
			resp.Result = resolved
		}
	case OpConfig:
		resp.Result = NewHostConfig(req.Extensions)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrUnknownOperation, "unsupported request"), "op", req.Op)
	}

	if err != nil {
		resp.Error = &ResponseError{Kind: errorKind(err), Message: err.Error()}
	}
	return resp
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrResolution):
		return "resolution"
	case errors.Is(err, domain.ErrUnknownOperation):
		return "unknown_operation"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
