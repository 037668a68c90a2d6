package proxy

import (
	"context"
	"fmt"
	"net/http"
)

// CEPService looks up postal codes on ViaCEP.
type CEPService struct {
	base   string
	client *http.Client
}

// Endereco is the address record returned by ViaCEP.
type Endereco struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	DDD         string `json:"ddd"`
}

// Lookup fetches the address for a postal code. Returns ErrNotFound
// when the upstream reports an unknown code.
func (s *CEPService) Lookup(ctx context.Context, cep string) (*Endereco, error) {
	var payload struct {
		Endereco
		Erro bool `json:"erro"`
	}

	url := fmt.Sprintf("%s/ws/%s/json/", s.base, cep)
	if err := getJSON(ctx, s.client, url, &payload); err != nil {
		return nil, err
	}
	// ViaCEP answers 200 with {"erro": true} for unknown codes.
	if payload.Erro {
		return nil, ErrNotFound
	}
	return &payload.Endereco, nil
}
