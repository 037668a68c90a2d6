package proxy

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// DolarService fetches the USD-BRL quote from AwesomeAPI.
type DolarService struct {
	base   string
	client *http.Client
}

// Cotacao is the reshaped USD-BRL quote.
type Cotacao struct {
	Compra float64 `json:"compra"`
	Venda  float64 `json:"venda"`
	Data   string  `json:"data"`
}

// Quote fetches the latest USD-BRL quote. The upstream encodes bid and
// ask as strings; they are parsed into numbers here.
func (s *DolarService) Quote(ctx context.Context) (*Cotacao, error) {
	var payload struct {
		USDBRL struct {
			Bid        string `json:"bid"`
			Ask        string `json:"ask"`
			CreateDate string `json:"create_date"`
		} `json:"USDBRL"`
	}

	url := s.base + "/json/last/USD-BRL"
	if err := getJSON(ctx, s.client, url, &payload); err != nil {
		return nil, err
	}

	compra, err := strconv.ParseFloat(payload.USDBRL.Bid, 64)
	if err != nil {
		return nil, fmt.Errorf("parse bid %q: %w", payload.USDBRL.Bid, err)
	}
	venda, err := strconv.ParseFloat(payload.USDBRL.Ask, 64)
	if err != nil {
		return nil, fmt.Errorf("parse ask %q: %w", payload.USDBRL.Ask, err)
	}

	return &Cotacao{
		Compra: compra,
		Venda:  venda,
		Data:   payload.USDBRL.CreateDate,
	}, nil
}
