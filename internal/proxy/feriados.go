package proxy

import (
	"context"
	"fmt"
	"net/http"
)

// FeriadosService lists national holidays from BrasilAPI.
type FeriadosService struct {
	base   string
	client *http.Client
}

// Feriado is one holiday record, passed through unchanged.
type Feriado struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// List fetches the ordered holiday list for a year.
func (s *FeriadosService) List(ctx context.Context, ano string) ([]Feriado, error) {
	var feriados []Feriado

	url := fmt.Sprintf("%s/api/feriados/v1/%s", s.base, ano)
	if err := getJSON(ctx, s.client, url, &feriados); err != nil {
		return nil, err
	}
	return feriados, nil
}
