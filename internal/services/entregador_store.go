package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/prefeitura-rio/app-entregadores/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EntregadorStore is the persistence boundary for registered profiles. CPF
// uniqueness is enforced here at write time; the intake pipeline only checks
// format.
type EntregadorStore interface {
	Insert(ctx context.Context, entregador *models.Entregador) error
	ListAll(ctx context.Context) ([]models.Entregador, error)
	FindByCPF(ctx context.Context, cpf string) (*models.Entregador, error)
}

// MongoEntregadorStore implements EntregadorStore on MongoDB, relying on the
// unique cpf index created at startup.
type MongoEntregadorStore struct {
	database   *mongo.Database
	collection string
}

// NewMongoEntregadorStore creates a new MongoDB-backed store
func NewMongoEntregadorStore(database *mongo.Database, collection string) *MongoEntregadorStore {
	return &MongoEntregadorStore{
		database:   database,
		collection: collection,
	}
}

// Insert persists a new entregador, surfacing ErrDuplicateCPF on conflicts
func (s *MongoEntregadorStore) Insert(ctx context.Context, entregador *models.Entregador) error {
	if entregador.ID.IsZero() {
		entregador.ID = primitive.NewObjectID()
	}

	_, err := s.database.Collection(s.collection).InsertOne(ctx, entregador)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateCPF
		}
		return fmt.Errorf("failed to insert entregador: %w", err)
	}
	return nil
}

// ListAll returns every registered entregador
func (s *MongoEntregadorStore) ListAll(ctx context.Context) ([]models.Entregador, error) {
	cursor, err := s.database.Collection(s.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find entregadores: %w", err)
	}
	defer cursor.Close(ctx)

	var entregadores []models.Entregador
	if err = cursor.All(ctx, &entregadores); err != nil {
		return nil, fmt.Errorf("failed to decode entregadores: %w", err)
	}
	return entregadores, nil
}

// FindByCPF returns the entregador registered under the given CPF
func (s *MongoEntregadorStore) FindByCPF(ctx context.Context, cpf string) (*models.Entregador, error) {
	var entregador models.Entregador
	err := s.database.Collection(s.collection).FindOne(ctx, bson.M{"cpf": cpf}).Decode(&entregador)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrEntregadorNotFound
		}
		return nil, fmt.Errorf("failed to find entregador: %w", err)
	}
	return &entregador, nil
}

// InMemoryEntregadorStore is a map-backed EntregadorStore used in tests
type InMemoryEntregadorStore struct {
	mu    sync.RWMutex
	byCPF map[string]models.Entregador
	order []string
}

// NewInMemoryEntregadorStore creates an empty in-memory store
func NewInMemoryEntregadorStore() *InMemoryEntregadorStore {
	return &InMemoryEntregadorStore{byCPF: make(map[string]models.Entregador)}
}

// Insert stores an entregador, surfacing ErrDuplicateCPF on conflicts
func (s *InMemoryEntregadorStore) Insert(_ context.Context, entregador *models.Entregador) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byCPF[entregador.CPF]; exists {
		return models.ErrDuplicateCPF
	}
	if entregador.ID.IsZero() {
		entregador.ID = primitive.NewObjectID()
	}
	s.byCPF[entregador.CPF] = *entregador
	s.order = append(s.order, entregador.CPF)
	return nil
}

// ListAll returns every stored entregador in insertion order
func (s *InMemoryEntregadorStore) ListAll(_ context.Context) ([]models.Entregador, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entregadores := make([]models.Entregador, 0, len(s.order))
	for _, cpf := range s.order {
		entregadores = append(entregadores, s.byCPF[cpf])
	}
	return entregadores, nil
}

// FindByCPF returns the entregador registered under the given CPF
func (s *InMemoryEntregadorStore) FindByCPF(_ context.Context, cpf string) (*models.Entregador, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entregador, exists := s.byCPF[cpf]
	if !exists {
		return nil, models.ErrEntregadorNotFound
	}
	return &entregador, nil
}
