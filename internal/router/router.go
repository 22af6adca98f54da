package router

import (
	"database/sql"
	"net/http"
	"time"

	"cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/adapters/storage/sqlstore"
	_ "cat-collector/internal/docs"
	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/metrics"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => registry nuevo

	// Sessions es requerido: emite y verifica la cookie de sesión.
	Sessions auth.SessionManager
	// DebugAuth habilita X-Debug-User-ID (solo dev/tests).
	DebugAuth bool

	// Opcional: si viene, usa SQL (Postgres o SQLite). Si no, in-memory.
	DB       *sql.DB
	IsUnique sqlstore.UniqueViolation

	// Límite por IP para POST de login/signup. <= 0 desactiva.
	AuthRatePerMin int
	AuthRateBurst  int

	// BcryptCost 0 => bcrypt.DefaultCost.
	BcryptCost int

	// Done detiene la limpieza periódica del rate limiter.
	Done <-chan struct{}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	var (
		accountRepo accounts.Repository
		catRepo     cats.Repository
		feedingRepo feedings.Repository
		toyRepo     toys.Repository
	)

	if opts.DB != nil {
		accountRepo = sqlstore.NewAccountsRepo(opts.DB, opts.IsUnique)
		catRepo = sqlstore.NewCatsRepo(opts.DB)
		feedingRepo = sqlstore.NewFeedingsRepo(opts.DB)
		toyRepo = sqlstore.NewToysRepo(opts.DB)
	} else {
		// Un solo store para que los borrados en cascada sean atómicos.
		st := memory.NewStore()
		accountRepo = memory.NewAccountRepo(st)
		catRepo = memory.NewCatRepo(st)
		feedingRepo = memory.NewFeedingRepo(st)
		toyRepo = memory.NewToyRepo(st)
	}

	// Services por módulo
	accountsSvc := accounts.NewService(accountRepo)
	if opts.BcryptCost > 0 {
		accountsSvc.WithHashCost(opts.BcryptCost)
	}
	toysSvc := toys.NewService(toyRepo)
	catsSvc := cats.NewService(catRepo, toysSvc)
	feedingsSvc := feedings.NewService(feedingRepo, catsSvc)

	rn := web.MustRenderer(log)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.Sessions, accountsSvc, opts.DebugAuth, log))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/about/", func(w http.ResponseWriter, req *http.Request) {
		rn.Render(w, req, http.StatusOK, "about.html", web.Page{Title: "About"})
	})
	r.NotFound(rn.NotFound)

	limiter := middleware.NewRateLimiter(opts.AuthRatePerMin, opts.AuthRateBurst, log)
	if opts.Done != nil {
		limiter.StartCleanup(10*time.Minute, opts.Done)
	}

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc, opts.Sessions, rn, m, log, limiter.Handler)
	cats.RegisterRoutes(r, catsSvc, feedingsSvc, toysSvc, rn, m)
	toys.RegisterRoutes(r, toysSvc, rn, m)

	return r
}
