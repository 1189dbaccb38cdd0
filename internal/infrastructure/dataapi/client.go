// Package dataapi implementa ports.FIFOSource sobre la API REST de datos de inventario
// (endpoint /inventory-value que agrupa compras y ventas por producto).
package dataapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/application/ports"
	"github.com/jhoicas/inventario-fifo/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa FIFOSource.
var _ ports.FIFOSource = (*Client)(nil)

const (
	inventoryValuePath = "/inventory-value"
	maxBodyBytes       = 8 << 20
)

// ErrCircuitOpen la API falló repetidamente y las llamadas se cortan sin salir a la red.
var ErrCircuitOpen = errors.New("dataapi: circuit breaker abierto")

// Config parámetros del cliente.
type Config struct {
	BaseURL string        // ej. http://localhost:5000/api
	Timeout time.Duration // timeout de red por petición

	// Circuit breaker: tras FailureThreshold fallos consecutivos se abre durante OpenTimeout.
	FailureThreshold uint32
	OpenTimeout      time.Duration

	// OnStateChange opcional; recibe cada transición del breaker (métricas).
	OnStateChange func(name string, from, to gobreaker.State)
}

// Client adaptador HTTP hacia la API de datos. Usa net/http de la librería estándar;
// no hay reintentos automáticos: un fallo se reporta y el usuario decide refrescar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	log        *logger.Logger
}

// NewClient construye el cliente.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	threshold := cfg.FailureThreshold

	settings := gobreaker.Settings{
		Name:        "data-api",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("dataapi: cambio de estado del circuit breaker")
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         gobreaker.NewCircuitBreaker(settings),
		log:        log,
	}
}

// FetchFIFOData consulta GET {base}/inventory-value y decodifica el payload.
// Si period no es cero se envían start_date y end_date como query params.
func (c *Client) FetchFIFOData(ctx context.Context, period dto.FIFOPeriod) (*dto.FIFODataResponse, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetch(ctx, period)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}
	return result.(*dto.FIFODataResponse), nil
}

// State estado actual del circuit breaker (para health checks).
func (c *Client) State() gobreaker.State { return c.cb.State() }

func (c *Client) fetch(ctx context.Context, period dto.FIFOPeriod) (*dto.FIFODataResponse, error) {
	endpoint, err := c.endpoint(period)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dataapi: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("dataapi: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("dataapi: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("dataapi: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataapi: HTTP %d: %s", resp.StatusCode, truncate(string(rawBody), 256))
	}

	var payload dto.FIFODataResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("dataapi: deserializar respuesta: %w", err)
	}

	c.log.Debug().
		Str("url", endpoint).
		Int("products", len(payload.FIFOData)).
		Msg("dataapi: datos FIFO recibidos")
	return &payload, nil
}

func (c *Client) endpoint(period dto.FIFOPeriod) (string, error) {
	u, err := url.Parse(c.baseURL + inventoryValuePath)
	if err != nil {
		return "", fmt.Errorf("dataapi: URL base inválida: %w", err)
	}
	if !period.IsZero() {
		q := u.Query()
		if !period.Start.IsZero() {
			q.Set("start_date", period.Start.Format("2006-01-02"))
		}
		if !period.End.IsZero() {
			q.Set("end_date", period.End.Format("2006-01-02"))
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
