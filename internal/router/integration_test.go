//go:build integration

package router

// End-to-end flow against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupContainers(t *testing.T) (*httptest.Server, *redis.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("escolar_test"),
		tcPostgres.WithUsername("escolar"),
		tcPostgres.WithPassword("escolar"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.DatabaseURL = pgURL
	cfg.RedisURL = rdURL

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	// Redis-backed sessions and the real email queue
	r := New(ctx, Deps{Config: cfg, DB: db, Redis: rdb, Mailer: infra.NewMailer(cfg)})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, rdb
}

func TestIntegration_FlujoCompleto(t *testing.T) {
	srv, rdb := setupContainers(t)
	cl := newClient(t)

	r := get(t, cl, srv, "/health")
	require.Equal(t, http.StatusOK, r.status, r.body)
	assert.Contains(t, r.body, `"redis":"connected"`)

	r = registrarYEntrar(t, cl, srv, "coord@colegio.edu.co", "1")
	require.Equal(t, http.StatusSeeOther, r.status, r.body)
	assert.Equal(t, "/panel-coordinador/", r.location)

	// correo is unique case-insensitively
	r = post(t, newClient(t), srv, "/registro/", url.Values{
		"correo": {"COORD@colegio.edu.co"}, "rol": {"2"},
		"password": {passwordValida}, "confirmar_password": {passwordValida},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, r.status)
	assert.Contains(t, r.body, "Ya existe un usuario con este correo.")

	r = post(t, cl, srv, "/coordinador/niveles/nuevo/", url.Values{"nombre": {"Básica Secundaria"}})
	require.Equal(t, http.StatusSeeOther, r.status, r.body)
	r = post(t, cl, srv, "/coordinador/grados/nuevo/", url.Values{"nombre": {"Sexto"}, "nivel": {"1"}})
	require.Equal(t, http.StatusSeeOther, r.status, r.body)
	r = post(t, cl, srv, "/coordinador/areas/nuevo/", url.Values{"nombre": {"Ciencias Naturales"}, "obligatoria": {"true"}})
	require.Equal(t, http.StatusSeeOther, r.status, r.body)
	r = post(t, cl, srv, "/coordinador/asignaturas/nuevo/", url.Values{"nombre": {"Biología"}, "grado": {"1"}, "area": {"1"}})
	require.Equal(t, http.StatusSeeOther, r.status, r.body)
	r = post(t, cl, srv, "/coordinador/temas/nuevo/", url.Values{"nombre": {"La célula"}, "asignatura": {"1"}})
	require.Equal(t, http.StatusSeeOther, r.status, r.body)
	r = post(t, cl, srv, "/coordinador/logros/nuevo/", url.Values{"descripcion": {"Identifica los organelos"}, "asignatura": {"1"}})
	require.Equal(t, http.StatusSeeOther, r.status, r.body)

	r = get(t, cl, srv, "/coordinador/logros/")
	assert.Contains(t, r.body, "Identifica los organelos")
	assert.Contains(t, r.body, "Biología")

	r = get(t, cl, srv, "/coordinador/plan-estudios/pdf/")
	assert.Equal(t, http.StatusOK, r.status)

	// the welcome email is waiting in the queue (no worker pool running)
	n, err := rdb.LLen(context.Background(), worker.QueueEmail).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	r = post(t, cl, srv, "/logout/", nil)
	assert.Equal(t, http.StatusSeeOther, r.status)
	assert.Equal(t, http.StatusFound, get(t, cl, srv, "/coordinador/niveles/").status)
}
