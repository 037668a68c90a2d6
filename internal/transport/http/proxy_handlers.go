package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brasilutil/infohub-server/internal/proxy"
)

// ProxyHandlers provides HTTP handlers for the passthrough endpoints.
// Upstream failures map to a generic 5xx with a short human-readable
// message; a well-formed upstream "not found" maps to 404.
type ProxyHandlers struct {
	services *proxy.Services
	log      *zerolog.Logger
}

// NewProxyHandlers creates a new proxy handlers instance.
func NewProxyHandlers(services *proxy.Services, logger *zerolog.Logger) *ProxyHandlers {
	return &ProxyHandlers{
		services: services,
		log:      logger,
	}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Cep handles postal-code lookup.
// GET /api/cep/:cep
func (h *ProxyHandlers) Cep(c *gin.Context) {
	cep := c.Param("cep")

	endereco, err := h.services.CEP.Lookup(c.Request.Context(), cep)
	if err != nil {
		if errors.Is(err, proxy.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CEP não encontrado"})
			return
		}
		h.log.Error().Err(err).Str("cep", cep).Msg("failed to look up cep")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar CEP"})
		return
	}

	c.JSON(http.StatusOK, endereco)
}

// Dolar handles the USD-BRL quote.
// GET /api/dolar
func (h *ProxyHandlers) Dolar(c *gin.Context) {
	cotacao, err := h.services.Dolar.Quote(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch quote")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar cotação"})
		return
	}

	c.JSON(http.StatusOK, cotacao)
}

// Feriados handles the holiday calendar.
// GET /api/feriados/:ano
func (h *ProxyHandlers) Feriados(c *gin.Context) {
	ano := c.Param("ano")

	feriados, err := h.services.Feriados.List(c.Request.Context(), ano)
	if err != nil {
		h.log.Error().Err(err).Str("ano", ano).Msg("failed to fetch holidays")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar feriados"})
		return
	}

	c.JSON(http.StatusOK, feriados)
}

// Clima handles the current weather.
// GET /api/clima?cidade=X
func (h *ProxyHandlers) Clima(c *gin.Context) {
	cidade := c.Query("cidade")
	if cidade == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cidade não informada"})
		return
	}

	clima, err := h.services.Clima.Current(c.Request.Context(), cidade)
	if err != nil {
		if errors.Is(err, proxy.ErrMissingAPIKey) {
			h.log.Error().Msg("openweather api key not configured")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "OPENWEATHER_API_KEY não definida"})
			return
		}
		h.log.Error().Err(err).Str("cidade", cidade).Msg("failed to fetch weather")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar clima"})
		return
	}

	c.JSON(http.StatusOK, clima)
}

// Estados handles the state registry.
// GET /api/ibge/estados
func (h *ProxyHandlers) Estados(c *gin.Context) {
	estados, err := h.services.IBGE.Estados(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch states")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar dados do IBGE"})
		return
	}

	c.JSON(http.StatusOK, estados)
}
