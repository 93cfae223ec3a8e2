package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/logging"
	"github.com/prefeitura-rio/app-entregadores/internal/models"
	"go.uber.org/zap"
)

// DashboardService computes summary statistics over the registered
// population. Every call recomputes from a full store snapshot; the data set
// is small enough that incremental counters would only add state to get wrong.
type DashboardService struct {
	store  EntregadorStore
	logger *logging.SafeLogger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(store EntregadorStore, logger *logging.SafeLogger) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: logger,
	}
}

// Global dashboard service instance
var DashboardServiceInstance *DashboardService

// InitDashboardService initializes the global dashboard service instance
func InitDashboardService() {
	store := NewMongoEntregadorStore(config.MongoDB, config.AppConfig.EntregadorCollection)
	DashboardServiceInstance = NewDashboardService(store, logging.Logger)
	logging.Logger.Info("dashboard service initialized")
}

// GetSummary loads the full set of entregadores and aggregates it
func (s *DashboardService) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	entregadores, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entregadores: %w", err)
	}

	summary := s.Aggregate(entregadores)

	s.logger.Debug("dashboard summary computed",
		zap.Int("total", summary.TotalEntregadores),
		zap.Int("cidades", summary.TotalCidades))

	return summary, nil
}

// Aggregate builds the dashboard summary in a single pass. The result does
// not depend on input order, and an empty input is a valid zero summary.
//
// The two named modal totals match "Moto" and "Bicicleta" case-insensitively,
// while the PorModal grouping keys on the exact stored string. "Moto" and
// "moto" therefore count into the same named total but remain two distinct
// group keys. That asymmetry is intentional and covered by tests.
func (s *DashboardService) Aggregate(entregadores []models.Entregador) *models.DashboardSummary {
	summary := models.NewDashboardSummary()

	for _, e := range entregadores {
		summary.TotalEntregadores++

		if strings.EqualFold(e.Modal, "Moto") {
			summary.TotalModalMoto++
		}
		if strings.EqualFold(e.Modal, "Bicicleta") {
			summary.TotalModalBicicleta++
		}

		summary.PorNacionalidade[e.Nacionalidade]++
		summary.PorEstadoCivil[e.EstadoCivil]++
		summary.PorTipoChavePix[e.TipoChavePix]++
		summary.PorCidade[e.Cidade]++
		summary.PorModal[e.Modal]++
	}

	summary.TotalCidades = len(summary.PorCidade)

	return summary
}
