package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-entregadores/internal/observability"
	"github.com/prefeitura-rio/app-entregadores/internal/services"
	"github.com/prefeitura-rio/app-entregadores/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// GetDashboard godoc
// @Summary Obter estatísticas do painel
// @Description Recalcula, a partir de todos os entregadores cadastrados, os totais gerais e as contagens agrupadas por nacionalidade, estado civil, tipo de chave PIX, cidade e modal.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardSummary "Estatísticas obtidas com sucesso"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /dashboard [get]
func GetDashboard(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetDashboard")
	defer span.End()

	logger := observability.Logger()

	span.SetAttributes(
		attribute.String("operation", "get_dashboard"),
		attribute.String("service", "dashboard"),
	)

	if services.DashboardServiceInstance == nil {
		logger.Error("dashboard service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Dashboard service unavailable"})
		return
	}

	ctx, querySpan := utils.TraceBusinessLogic(ctx, "dashboard_aggregation")
	summary, err := services.DashboardServiceInstance.GetSummary(ctx)
	if err != nil {
		utils.RecordErrorInSpan(querySpan, err, map[string]interface{}{
			"operation": "get_summary",
		})
		querySpan.End()
		logger.Error("failed to compute dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard summary"})
		return
	}
	utils.AddSpanAttribute(querySpan, "total_entregadores", summary.TotalEntregadores)
	querySpan.End()

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, summary)
	responseSpan.End()

	logger.Debug("GetDashboard completed",
		zap.Int("total_entregadores", summary.TotalEntregadores),
		zap.Int("total_cidades", summary.TotalCidades),
		zap.Duration("total_duration", time.Since(startTime)))
}
