package connection

import (
	"net"
	"net/http"
	"time"

	"github.com/rickhofstede/weaviate-go/v1/observability"
	"github.com/rickhofstede/weaviate-go/v1/tracer"
	"go.uber.org/fx"
)

// Logger defines the logging operations the connection package needs.
// The logger package's Logger satisfies it; a nil logger is replaced by
// a no-op implementation.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=connection
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Connection performs the HTTP exchanges with the Weaviate server.
//
// It owns a single http.Client configured from Config: the dialer timeout
// bounds connection establishment and the client timeout bounds the whole
// request/response exchange (the "read timeout"). All request methods
// return a *Response regardless of status code; mapping non-OK statuses to
// errors is the caller's concern, since different operations accept
// different status codes.
type Connection struct {
	cfg        *Config
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   observability.Observer
	tracer     *tracer.Tracer
}

// ConnectionParams defines dependencies needed to construct the Connection.
// Logger, Observer and Tracer are optional; the Connection works without them.
type ConnectionParams struct {
	fx.In

	Config   *Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
}

// NewConnection constructs a Connection and validates its configuration.
//
// Example:
//
//	conn, err := connection.NewConnection(connection.ConnectionParams{
//	    Config: connection.FromHost("localhost:8080"),
//	})
func NewConnection(p ConnectionParams) (*Connection, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := p.Logger
	if log == nil {
		log = nopLogger{}
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = 2 * time.Second
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 20 * time.Second
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
	}

	c := &Connection{
		cfg:     cfg,
		baseURL: cfg.baseURL(),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   readTimeout,
		},
		log:      log,
		observer: p.Observer,
		tracer:   p.Tracer,
	}

	log.Debug("weaviate connection initialized", nil, map[string]interface{}{
		"base_url":        c.baseURL,
		"connect_timeout": connectTimeout.String(),
		"read_timeout":    readTimeout.String(),
	})

	return c, nil
}

// TimeoutConfig returns the configured (connect, read) timeouts.
// It exists so callers can report the timeout window in error messages.
func (c *Connection) TimeoutConfig() (connect, read time.Duration) {
	connect = c.cfg.ConnectTimeout
	if connect == 0 {
		connect = 2 * time.Second
	}
	read = c.cfg.ReadTimeout
	if read == 0 {
		read = 20 * time.Second
	}
	return connect, read
}

// BaseURL returns the versioned API root this connection talks to.
func (c *Connection) BaseURL() string {
	return c.baseURL
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
