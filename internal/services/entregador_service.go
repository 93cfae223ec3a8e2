package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/logging"
	"github.com/prefeitura-rio/app-entregadores/internal/models"
	"github.com/prefeitura-rio/app-entregadores/internal/observability"
	"github.com/prefeitura-rio/app-entregadores/internal/redisclient"
	"github.com/prefeitura-rio/app-entregadores/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EntregadorService handles entregador business logic around the store.
// Profiles are write-once, so cached reads never need invalidation.
type EntregadorService struct {
	store    EntregadorStore
	cache    *redisclient.Client
	cacheTTL time.Duration
	logger   *logging.SafeLogger
}

// NewEntregadorService creates a new entregador service instance
func NewEntregadorService(store EntregadorStore, cache *redisclient.Client, cacheTTL time.Duration, logger *logging.SafeLogger) *EntregadorService {
	return &EntregadorService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Global entregador service instance
var EntregadorServiceInstance *EntregadorService

// InitEntregadorService initializes the global entregador service instance
func InitEntregadorService() {
	store := NewMongoEntregadorStore(config.MongoDB, config.AppConfig.EntregadorCollection)
	EntregadorServiceInstance = NewEntregadorService(store, config.Redis, config.AppConfig.RedisTTL, logging.Logger)
	logging.Logger.Info("entregador service initialized")
}

// Register persists a validated entregador. A unique-index conflict surfaces
// as models.ErrDuplicateCPF for the handler to map into the rejection
// vocabulary.
func (s *EntregadorService) Register(ctx context.Context, entregador *models.Entregador) error {
	if err := s.store.Insert(ctx, entregador); err != nil {
		if err == models.ErrDuplicateCPF {
			s.logger.Info("registration refused, cpf already exists",
				zap.String("cpf", observability.MaskCPF(utils.StripNonDigits(entregador.CPF))))
			return err
		}
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		return fmt.Errorf("failed to register entregador: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
	s.logger.Info("registered new entregador",
		zap.String("cpf", observability.MaskCPF(utils.StripNonDigits(entregador.CPF))),
		zap.String("cidade", entregador.Cidade),
		zap.String("modal", entregador.Modal))

	return nil
}

// List returns every registered entregador
func (s *EntregadorService) List(ctx context.Context) ([]models.Entregador, error) {
	entregadores, err := s.store.ListAll(ctx)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return entregadores, nil
}

// GetByCPF returns a single entregador, served from the Redis cache when
// possible. Cache failures degrade to a store read.
func (s *EntregadorService) GetByCPF(ctx context.Context, cpf string) (*models.Entregador, error) {
	cacheKey := entregadorCacheKey(cpf)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var entregador models.Entregador
			if err := json.Unmarshal([]byte(cached), &entregador); err == nil {
				observability.CacheHits.WithLabelValues("hit").Inc()
				s.logger.Debug("entregador served from cache",
					zap.String("cpf", observability.MaskCPF(utils.StripNonDigits(cpf))))
				return &entregador, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("cache read failed", zap.Error(err))
		}
		observability.CacheHits.WithLabelValues("miss").Inc()
	}

	entregador, err := s.store.FindByCPF(ctx, cpf)
	if err != nil {
		if err == models.ErrEntregadorNotFound {
			return nil, err
		}
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()

	if s.cache != nil {
		if data, err := json.Marshal(entregador); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("cache write failed", zap.Error(err))
			}
		}
	}

	return entregador, nil
}

func entregadorCacheKey(cpf string) string {
	return "entregador:cpf:" + utils.StripNonDigits(cpf)
}
