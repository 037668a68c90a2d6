package proxy

import (
	"context"
	"math"
	"net/http"
	"net/url"
)

// ClimaService fetches current weather from OpenWeather. It is the only
// upstream that requires a configured credential.
type ClimaService struct {
	base   string
	apiKey string
	client *http.Client
}

// Clima is the reshaped weather report.
type Clima struct {
	Cidade      string `json:"cidade"`
	Temperatura int    `json:"temperatura"`
	Condicao    string `json:"condicao"`
	Umidade     int    `json:"umidade"`
}

// Current fetches the weather for a city. Returns ErrMissingAPIKey if
// no provider credential is configured.
func (s *ClimaService) Current(ctx context.Context, cidade string) (*Clima, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}

	params := url.Values{}
	params.Set("q", cidade)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "pt_br")

	reqURL := s.base + "/data/2.5/weather?" + params.Encode()
	if err := getJSON(ctx, s.client, reqURL, &payload); err != nil {
		return nil, err
	}

	condicao := ""
	if len(payload.Weather) > 0 {
		condicao = payload.Weather[0].Description
	}

	return &Clima{
		Cidade:      payload.Name,
		Temperatura: int(math.Round(payload.Main.Temp)),
		Condicao:    condicao,
		Umidade:     payload.Main.Humidity,
	}, nil
}
