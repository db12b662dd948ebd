package router

import (
	"context"
	"net/http"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/config"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/handler"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/middleware"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/web"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the infrastructure handles the router wires into repositories and
// services. Sesiones and Notificador default to the Redis-backed
// implementations when nil.
type Deps struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Mailer      *infra.Mailer
	Sesiones    repository.SesionStore
	Notificador service.Notificador
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// Background goroutines started here stop when ctx is done.
func New(ctx context.Context, d Deps) *gin.Engine {
	cfg := d.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HTMLRender = web.MustNewRenderer()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(ctx, 1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(d.DB)
	rolRepo := repository.NewRolRepository(d.DB)
	nivelRepo := repository.NewNivelRepository(d.DB)
	gradoRepo := repository.NewGradoRepository(d.DB)
	areaRepo := repository.NewAreaRepository(d.DB)
	asignaturaRepo := repository.NewAsignaturaRepository(d.DB)
	temaRepo := repository.NewTemaRepository(d.DB)
	logroRepo := repository.NewLogroRepository(d.DB)

	sesiones := d.Sesiones
	if sesiones == nil {
		sesiones = repository.NewSesionStore(d.Redis)
	}
	notificador := d.Notificador
	if notificador == nil {
		notificador = worker.NewDispatcher(d.Redis)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, sesiones, notificador, cfg)
	nivelSvc := service.NewNivelService(nivelRepo, gradoRepo)
	gradoSvc := service.NewGradoService(gradoRepo, nivelRepo, asignaturaRepo)
	areaSvc := service.NewAreaService(areaRepo, asignaturaRepo)
	asignaturaSvc := service.NewAsignaturaService(asignaturaRepo, gradoRepo, areaRepo, temaRepo, logroRepo)
	temaSvc := service.NewTemaService(temaRepo, asignaturaRepo)
	logroSvc := service.NewLogroService(logroRepo, asignaturaRepo)
	planSvc := service.NewPlanService(nivelRepo, gradoRepo, asignaturaRepo, temaRepo, logroRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	v := validation.MustNew()
	authH := handler.NewAuthHandler(authSvc, v, cfg.IsProduction())
	nivelesH := handler.NewNivelesHandler(nivelSvc, v)
	gradosH := handler.NewGradosHandler(gradoSvc, nivelSvc, v)
	areasH := handler.NewAreasHandler(areaSvc, v)
	asignaturasH := handler.NewAsignaturasHandler(asignaturaSvc, gradoSvc, areaSvc, v)
	temasH := handler.NewTemasHandler(temaSvc, asignaturaSvc, v)
	logrosH := handler.NewLogrosHandler(logroSvc, asignaturaSvc, v)
	planH := handler.NewPlanHandler(planSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(d.DB, d.Redis, d.Mailer))

	// Every page below knows the current principal, if any.
	pages := r.Group("/", middleware.Sesion(authSvc))
	{
		pages.GET("/", handler.Inicio)

		pages.GET("/registro/", authH.RegistroForm)
		pages.POST("/registro/", authH.Registrar)
		pages.GET("/login/", authH.LoginForm)
		pages.POST("/login/", middleware.LoginRateLimiter(ctx, cfg.LoginRateLimit), authH.Login)
		pages.POST("/logout/", authH.Logout)

		// Only the coordinator panel is gated.
		pages.GET("/panel-docente/", handler.Panel("Panel del Docente"))
		pages.GET("/panel-estudiante/", handler.Panel("Panel del Estudiante"))
		pages.GET("/panel-acudiente/", handler.Panel("Panel del Acudiente"))
		pages.GET("/panel-coordinador/", middleware.RequireRole(model.RolCoordinador), handler.PanelCoordinador)

		coord := pages.Group("/coordinador", middleware.RequireRole(model.RolCoordinador))
		{
			crud(coord, "/niveles", nivelesH)
			crud(coord, "/grados", gradosH)
			crud(coord, "/areas", areasH)
			crud(coord, "/asignaturas", asignaturasH)
			crud(coord, "/temas", temasH)
			crud(coord, "/logros", logrosH)

			coord.GET("/plan-estudios/pdf/", planH.DescargarPDF)
		}
	}

	r.NoRoute(middleware.Sesion(authSvc), func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error", gin.H{
			"Titulo":    "Página no encontrada",
			"Mensaje":   "La página solicitada no existe.",
			"Principal": middleware.GetPrincipal(c),
		})
	})

	return r
}

// crudHandler is implemented by every curriculum handler.
type crudHandler interface {
	Listar(c *gin.Context)
	Nuevo(c *gin.Context)
	Crear(c *gin.Context)
	Editar(c *gin.Context)
	Actualizar(c *gin.Context)
	Eliminar(c *gin.Context)
}

func crud(g *gin.RouterGroup, path string, h crudHandler) {
	e := g.Group(path)
	e.GET("/", h.Listar)
	e.GET("/nuevo/", h.Nuevo)
	e.POST("/nuevo/", h.Crear)
	e.GET("/editar/:id/", h.Editar)
	e.POST("/editar/:id/", h.Actualizar)
	e.POST("/eliminar/:id/", h.Eliminar)
}
