package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/models"
	"github.com/prefeitura-rio/app-entregadores/internal/services"
	"github.com/prefeitura-rio/app-entregadores/tests"
)

func sampleEntregador(cpf, cidade, modal string) *models.Entregador {
	return &models.Entregador{
		Nome:              "João Da Silva",
		Telefone:          "21987654321",
		Email:             "joao@example.com",
		TipoChavePix:      "CPF",
		ChavePix:          cpf,
		ValidacaoChavePix: "validada",
		Nacionalidade:     "Brasileiro",
		EstadoCivil:       "Solteiro",
		CPF:               cpf,
		RG:                "123456789",
		DataNascimento:    "1990-05-10",
		Cidade:            cidade,
		Modal:             modal,
		CreatedAt:         time.Now(),
	}
}

// TestMongoStoreUniqueCPFIndex verifies the unique index refuses a second
// profile under the same CPF at the database level.
func TestMongoStoreUniqueCPFIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := tests.SetupTestContainers(t)
	defer containers.Cleanup()
	defer tests.CleanupDatabase(t, containers.MongoDB)

	ctx := context.Background()
	require.NoError(t, config.EnsureEntregadorIndexes(ctx, containers.MongoDB, config.AppConfig.EntregadorCollection))

	store := services.NewMongoEntregadorStore(containers.MongoDB, config.AppConfig.EntregadorCollection)

	require.NoError(t, store.Insert(ctx, sampleEntregador("12345678900", "Rio de Janeiro", "Moto")))

	err := store.Insert(ctx, sampleEntregador("12345678900", "Niterói", "Bicicleta"))
	assert.ErrorIs(t, err, models.ErrDuplicateCPF)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// TestMongoStoreFindByCPF covers the round trip through a real collection
func TestMongoStoreFindByCPF(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := tests.SetupTestContainers(t)
	defer containers.Cleanup()
	defer tests.CleanupDatabase(t, containers.MongoDB)

	ctx := context.Background()
	store := services.NewMongoEntregadorStore(containers.MongoDB, config.AppConfig.EntregadorCollection)

	require.NoError(t, store.Insert(ctx, sampleEntregador("12345678900", "Rio de Janeiro", "Moto")))

	found, err := store.FindByCPF(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "João Da Silva", found.Nome)
	assert.Equal(t, "Rio de Janeiro", found.Cidade)

	_, err = store.FindByCPF(ctx, "99999999999")
	assert.ErrorIs(t, err, models.ErrEntregadorNotFound)
}

// TestEntregadorServiceRedisCache verifies a profile read lands in the cache
// and the second read is served from it.
func TestEntregadorServiceRedisCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := tests.SetupTestContainers(t)
	defer containers.Cleanup()
	defer tests.CleanupDatabase(t, containers.MongoDB)

	ctx := context.Background()
	store := services.NewMongoEntregadorStore(containers.MongoDB, config.AppConfig.EntregadorCollection)
	svc := services.NewEntregadorService(store, containers.Redis, time.Minute, nil)

	require.NoError(t, svc.Register(ctx, sampleEntregador("12345678900", "Rio de Janeiro", "Moto")))

	// first read populates the cache
	first, err := svc.GetByCPF(ctx, "12345678900")
	require.NoError(t, err)

	cached, err := containers.Redis.Get(ctx, "entregador:cpf:12345678900").Result()
	require.NoError(t, err)
	assert.NotEmpty(t, cached)

	// delete the document behind the cache; the cached copy still answers
	_, err = containers.MongoDB.Collection(config.AppConfig.EntregadorCollection).DeleteMany(ctx, map[string]interface{}{})
	require.NoError(t, err)

	second, err := svc.GetByCPF(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, first.Nome, second.Nome)
	assert.Equal(t, first.CPF, second.CPF)
}

// TestDashboardFromMongo aggregates over documents stored in a real collection
func TestDashboardFromMongo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := tests.SetupTestContainers(t)
	defer containers.Cleanup()
	defer tests.CleanupDatabase(t, containers.MongoDB)

	ctx := context.Background()
	store := services.NewMongoEntregadorStore(containers.MongoDB, config.AppConfig.EntregadorCollection)

	require.NoError(t, store.Insert(ctx, sampleEntregador("11111111111", "Rio de Janeiro", "Moto")))
	require.NoError(t, store.Insert(ctx, sampleEntregador("22222222222", "Rio de Janeiro", "moto")))
	require.NoError(t, store.Insert(ctx, sampleEntregador("33333333333", "Niterói", "Bicicleta")))

	dashboard := services.NewDashboardService(store, nil)
	summary, err := dashboard.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalEntregadores)
	assert.Equal(t, 2, summary.TotalCidades)
	assert.Equal(t, 2, summary.TotalModalMoto)
	assert.Equal(t, 1, summary.TotalModalBicicleta)
	assert.Equal(t, 1, summary.PorModal["Moto"])
	assert.Equal(t, 1, summary.PorModal["moto"])
}
