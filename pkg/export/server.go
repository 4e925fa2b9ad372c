package export

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srediag/shm-probe/internal/logging"
	"github.com/srediag/shm-probe/pkg/probe"
)

const (
	bindRetries       = 5
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// CollectFunc produces the report the exporter serves.
type CollectFunc func(ctx context.Context) (*probe.Report, error)

// Server serves a probe report over HTTP: /metrics (Prometheus), /live and
// /ready (healthcheck). The report is collected once at startup; layout
// facts do not change while the process runs.
type Server struct {
	addr    string
	collect CollectFunc

	mu        sync.Mutex
	boundAddr string
	ready     atomic.Bool
}

// NewServer builds an exporter bound to addr once Run is called.
func NewServer(addr string, collect CollectFunc) *Server {
	return &Server{addr: addr, collect: collect}
}

// Addr returns the bound listen address, or "" before Run has bound it.
// Useful with a ":0" listen address.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundAddr
}

// Run collects the report, binds the listener (retrying with exponential
// backoff) and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	report, err := s.collect(ctx)
	if err != nil {
		return fmt.Errorf("initial collection: %w", err)
	}
	s.ready.Store(true)

	registry := prometheus.NewRegistry()
	if err := registry.Register(NewFactsCollector(report)); err != nil {
		return fmt.Errorf("register facts collector: %w", err)
	}

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("alive", func() error { return nil })
	health.AddReadinessCheck("probe-collected", func() error {
		if !s.ready.Load() {
			return errors.New("no collection yet")
		}
		return nil
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/live", health.LiveEndpoint)
	mux.HandleFunc("/ready", health.ReadyEndpoint)

	var ln net.Listener
	bind := func() error {
		l, err := net.Listen("tcp", s.addr)
		if err != nil {
			logging.Warnf("exporter bind %s: %v", s.addr, err)
			return err
		}
		ln = l
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), bindRetries), ctx)
	if err := backoff.Retry(bind, policy); err != nil {
		return fmt.Errorf("bind %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.boundAddr = ln.Addr().String()
	s.mu.Unlock()

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	logging.Infof("exporter listening on %s", s.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
