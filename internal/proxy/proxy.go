// Package proxy holds thin passthrough clients for the public data APIs
// the gateway aggregates. Each service is a stateless single-request
// forwarder: no retry, no caching, no transformation beyond reshaping
// the upstream payload.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNotFound means the upstream answered well-formed "not found".
	ErrNotFound = errors.New("not found")
	// ErrMissingAPIKey means a required provider credential is not configured.
	ErrMissingAPIKey = errors.New("provider api key not configured")
)

// Config carries upstream base URLs and credentials. Base URLs are
// injectable so tests can point services at fake upstreams.
type Config struct {
	ViaCEPBaseURL      string
	AwesomeAPIBaseURL  string
	BrasilAPIBaseURL   string
	OpenWeatherBaseURL string
	IBGEBaseURL        string
	OpenWeatherAPIKey  string
	Timeout            time.Duration
}

// Services aggregates the upstream clients behind one handle.
type Services struct {
	CEP      *CEPService
	Dolar    *DolarService
	Feriados *FeriadosService
	Clima    *ClimaService
	IBGE     *IBGEService
}

// NewServices builds all upstream clients sharing a single HTTP client.
func NewServices(cfg Config) *Services {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	return &Services{
		CEP:      &CEPService{base: cfg.ViaCEPBaseURL, client: client},
		Dolar:    &DolarService{base: cfg.AwesomeAPIBaseURL, client: client},
		Feriados: &FeriadosService{base: cfg.BrasilAPIBaseURL, client: client},
		Clima:    &ClimaService{base: cfg.OpenWeatherBaseURL, apiKey: cfg.OpenWeatherAPIKey, client: client},
		IBGE:     &IBGEService{base: cfg.IBGEBaseURL, client: client},
	}
}

// getJSON performs a GET against url and decodes the 200 response into out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}
