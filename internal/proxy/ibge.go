package proxy

import (
	"context"
	"net/http"
)

// IBGEService lists Brazilian states from the IBGE locality API.
type IBGEService struct {
	base   string
	client *http.Client
}

// Estado is one state with its region name flattened.
type Estado struct {
	Sigla  string `json:"sigla"`
	Nome   string `json:"nome"`
	Regiao string `json:"regiao"`
}

// Estados fetches the ordered state list.
func (s *IBGEService) Estados(ctx context.Context) ([]Estado, error) {
	var payload []struct {
		Sigla  string `json:"sigla"`
		Nome   string `json:"nome"`
		Regiao struct {
			Nome string `json:"nome"`
		} `json:"regiao"`
	}

	url := s.base + "/api/v1/localidades/estados"
	if err := getJSON(ctx, s.client, url, &payload); err != nil {
		return nil, err
	}

	estados := make([]Estado, 0, len(payload))
	for _, e := range payload {
		estados = append(estados, Estado{
			Sigla:  e.Sigla,
			Nome:   e.Nome,
			Regiao: e.Regiao.Nome,
		})
	}
	return estados, nil
}
