package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/observability"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// HealthCheck godoc
// @Summary Verificar saúde do serviço
// @Description Verifica a conectividade com MongoDB e Redis.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Serviço saudável"
// @Failure 503 {object} HealthResponse "Alguma dependência indisponível"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	logger := observability.Logger()

	response := HealthResponse{
		Status:   "healthy",
		Services: map[string]string{},
	}

	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if config.MongoDB != nil {
		if err := config.MongoDB.Client().Ping(checkCtx, readpref.Primary()); err != nil {
			response.Services["mongodb"] = "unhealthy"
			response.Status = "unhealthy"
			logger.Warn("mongodb health check failed", zap.Error(err))
		} else {
			response.Services["mongodb"] = "healthy"
		}
	} else {
		response.Services["mongodb"] = "not_configured"
		response.Status = "unhealthy"
	}

	if config.Redis != nil {
		if err := config.Redis.Ping(checkCtx).Err(); err != nil {
			response.Services["redis"] = "unhealthy"
			response.Status = "unhealthy"
			logger.Warn("redis health check failed", zap.Error(err))
		} else {
			response.Services["redis"] = "healthy"
		}
	} else {
		response.Services["redis"] = "not_configured"
		response.Status = "unhealthy"
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
