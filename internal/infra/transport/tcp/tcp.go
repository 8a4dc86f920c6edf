package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/atm-aspects/internal/config"
)

// Service defines the ATM operations served over TCP.
type Service interface {
	Withdraw(ctx context.Context, amount int) (string, error)
	Deposit(ctx context.Context, amount int) error
	Balance(ctx context.Context) (string, error)
}

// Notifier defines notification delivery served over TCP.
type Notifier interface {
	Notify(ctx context.Context, message string) (string, error)
}

// Transport manages TCP connections and handles incoming requests.
type Transport struct {
	service          Service
	notifier         Notifier
	cfg              config.Config
	listener         net.Listener
	stopHandlingChan chan struct{}
	wg               sync.WaitGroup
	clock            clock.Clock
	logger           *slog.Logger
}

// NewTransport creates a new Transport instance.
func NewTransport(cfg config.Config, service Service, notifier Notifier, clock clock.Clock, logger *slog.Logger) *Transport {
	return &Transport{
		cfg:              cfg,
		service:          service,
		notifier:         notifier,
		stopHandlingChan: make(chan struct{}),
		wg:               sync.WaitGroup{},
		clock:            clock,
		logger:           logger,
	}
}

// Start initializes the TCP server and starts accepting connections.
// It will block until context is cancelled and grace period is finished.
func (t *Transport) Start(ctx context.Context) error {
	var err error
	t.listener, err = net.Listen("tcp", fmt.Sprintf("%s:%d", t.cfg.ServerHost, t.cfg.ServerPort))
	if err != nil {
		return err
	}

	defer t.logger.Info("TCP server stopped")

	t.logger.Info("TCP server started", "port", t.cfg.ServerPort)

	// Requests already accepted keep running through the grace period.
	requestCtx := context.WithoutCancel(ctx)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			conn, err := t.listener.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				t.logger.Error("Failed to accept connection", "error", err)
				continue
			}

			t.wg.Add(1)
			go t.handleConnection(requestCtx, conn)
		}
	}()

	t.waitForGracefulShutdown(ctx)

	return nil
}

// waitForGracefulShutdown waits for a graceful shutdown signal, sleeps until shutdown timeout and then closes the channel to stop handling connections.
func (t *Transport) waitForGracefulShutdown(ctx context.Context) {
	<-ctx.Done()

	t.logger.Info("TCP server graceful shutdown started")

	err := t.listener.Close()
	if err != nil {
		t.logger.Error("Error closing listener", "error", err)
	}

	t.clock.Sleep(t.cfg.ServerGracefulShutdownTimeout)

	close(t.stopHandlingChan)

	t.wg.Wait()
}

var defaultCancelledResponse = response{
	status: Rejected,
	reason: "Cancelled",
}

// handleConnection manages the lifecycle of a single TCP connection, reading requests and sending responses.
func (t *Transport) handleConnection(ctx context.Context, conn net.Conn) {
	defer t.wg.Done()

	defer conn.Close() //nolint:errcheck

	t.logger.Debug("Handling connection", "remote", conn.RemoteAddr())

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		request := scanner.Text()

		responseChan := make(chan response, 1)

		go func() {
			select {
			case <-t.stopHandlingChan:
				return
			case responseChan <- t.handleRequest(ctx, request):
			}
		}()

		select {
		case <-t.stopHandlingChan:
			t.writeResponse(conn, request, defaultCancelledResponse)
			return
		case response := <-responseChan:
			t.writeResponse(conn, request, response)
		}
	}

	if err := scanner.Err(); err != nil {
		t.logger.Error("Error reading from connection", "error", err)
	}
}

// handleRequest processes an incoming request and returns a corresponding response.
func (t *Transport) handleRequest(ctx context.Context, s string) response {
	r, err := parseRequest(s)
	if err != nil {
		return rejected(err)
	}

	var reason string

	switch r.command {
	case withdraw:
		reason, err = t.service.Withdraw(ctx, r.amount)
	case deposit:
		err = t.service.Deposit(ctx, r.amount)
		reason = "Deposit initiated"
	case balance:
		reason, err = t.service.Balance(ctx)
	case send:
		reason, err = t.notifier.Notify(ctx, r.message)
	}

	if err != nil {
		return rejected(err)
	}

	return response{
		status: Accepted,
		reason: reason,
	}
}

func rejected(err error) response {
	return response{
		status: Rejected,
		reason: err.Error(),
	}
}

// writeResponse sends a response back to the client over the provided connection.
func (t *Transport) writeResponse(conn net.Conn, request string, r response) {
	_, err := fmt.Fprintf(conn, "%s\n", r)
	if err != nil {
		t.logger.Error("Failed to write response", "error", err, "request", request, "response", r)
		return
	}
	t.logger.Debug("Handling request", "request", request, "response", r)
}
