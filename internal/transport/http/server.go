package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brasilutil/infohub-server/internal/chat"
	"github.com/brasilutil/infohub-server/internal/config"
	"github.com/brasilutil/infohub-server/internal/proxy"
)

// NewServer builds the HTTP server: REST passthrough endpoints under
// /api plus the chat relay WebSocket under /ws.
func NewServer(hub *chat.Hub, services *proxy.Services, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	handlers := NewProxyHandlers(services, logger)
	api := router.Group("/api")
	{
		api.GET("/cep/:cep", handlers.Cep)
		api.GET("/dolar", handlers.Dolar)
		api.GET("/feriados/:ano", handlers.Feriados)
		api.GET("/clima", handlers.Clima)
		api.GET("/ibge/estados", handlers.Estados)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
