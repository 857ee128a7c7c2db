// Package server runs the game's long-lived loops and stops them together
// on exit, failure or a termination signal.
package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultGrace bounds how long Run waits for services to return after Stop.
const DefaultGrace = 5 * time.Second

// ErrShutdownTimeout is returned when a stopped service has not returned
// within the grace period.
var ErrShutdownTimeout = errors.New("services did not stop within the grace period")

// Service is a blocking loop that can be asked to return.
type Service interface {
	// Start blocks until the loop ends on its own, fails, or is stopped.
	Start() error
	// Stop asks Start to return. It may be called more than once.
	Stop()
}

// FuncService builds a Service from a pair of functions. StopFn may be nil.
type FuncService struct {
	StartFn func() error
	StopFn  func()
}

// Start runs StartFn.
func (f *FuncService) Start() error { return f.StartFn() }

// Stop runs StopFn if set.
func (f *FuncService) Stop() {
	if f.StopFn != nil {
		f.StopFn()
	}
}

type entry struct {
	name string
	svc  Service
}

// Lifecycle starts a set of services together and, as soon as any of them
// returns, stops the rest in reverse registration order.
type Lifecycle struct {
	mu      sync.Mutex
	entries []entry
	grace   time.Duration
	logger  *zap.Logger
}

// NewLifecycle returns a Lifecycle with DefaultGrace.
//
// Precondition: logger must be non-nil.
func NewLifecycle(logger *zap.Logger) *Lifecycle {
	return &Lifecycle{grace: DefaultGrace, logger: logger}
}

// SetGrace replaces the shutdown grace period.
//
// Precondition: d > 0.
func (l *Lifecycle) SetGrace(d time.Duration) {
	if d <= 0 {
		panic("server: SetGrace called with non-positive duration")
	}
	l.grace = d
}

// Add registers svc under name.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{name: name, svc: svc})
}

// Run starts every service and blocks until one returns, SIGINT or SIGTERM
// arrives, or ctx ends. It then stops all services and waits up to the
// grace period for them to return.
//
// Postcondition: Returns the first service error, ErrShutdownTimeout, or nil.
func (l *Lifecycle) Run(ctx context.Context) error {
	began := time.Now()
	ctx, unnotify := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer unnotify()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	entries := slices.Clone(l.entries)
	l.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		g.Go(func() error {
			defer cancel()
			return l.serve(e)
		})
	}
	l.logger.Info("services running", zap.Int("count", len(entries)))

	<-gctx.Done()
	l.logger.Info("shutting down", zap.NamedError("cause", context.Cause(gctx)))
	for _, e := range slices.Backward(entries) {
		l.logger.Debug("stopping service", zap.String("service", e.name))
		e.svc.Stop()
	}

	err := l.await(g)
	l.logger.Info("shutdown complete", zap.Duration("uptime", time.Since(began)))
	return err
}

func (l *Lifecycle) serve(e entry) error {
	began := time.Now()
	l.logger.Debug("starting service", zap.String("service", e.name))
	if err := e.svc.Start(); err != nil {
		l.logger.Error("service failed",
			zap.String("service", e.name),
			zap.Duration("uptime", time.Since(began)),
			zap.Error(err),
		)
		return fmt.Errorf("service %s: %w", e.name, err)
	}
	l.logger.Info("service finished",
		zap.String("service", e.name),
		zap.Duration("uptime", time.Since(began)),
	)
	return nil
}

// await waits for g within the grace period.
func (l *Lifecycle) await(g *errgroup.Group) error {
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	timer := time.NewTimer(l.grace)
	defer timer.Stop()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		l.logger.Warn("shutdown timed out", zap.Duration("grace", l.grace))
		return ErrShutdownTimeout
	}
}
