package router

import (
	"database/sql"
	"encoding/json"
	"net/http"

	_ "capivaras-api/docs"
	"capivaras-api/internal/adapters/storage/document"
	"capivaras-api/internal/adapters/storage/jsonfile"
	mem "capivaras-api/internal/adapters/storage/memory"
	pg "capivaras-api/internal/adapters/storage/postgres"
	"capivaras-api/internal/domain/capivaras"
	"capivaras-api/internal/middleware"
	"capivaras-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// MsgRouteNotFound es la respuesta para cualquier ruta o método no soportado.
const MsgRouteNotFound = "Rota não encontrada"

type Options struct {
	Logger logger.Logger // nil => descarta logs

	// EnableSwagger monta /swagger/* (HTML, no JSON). Apagado => 404 como cualquier ruta.
	EnableSwagger bool

	// Prioridad: Repository explícito > DB (Postgres) > DataDir (archivo JSON) > in-memory.
	Repository capivaras.Repository
	DB         *sql.DB
	DataDir    string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	// Antes de montar subrouters: chi los propaga al hacer Route/Mount.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	repo := opts.Repository
	switch {
	case repo != nil:
	case opts.DB != nil:
		repo = document.NewCapivarasRepo(pg.NewCollectionsStore(opts.DB))
	case opts.DataDir != "":
		repo = document.NewCapivarasRepo(jsonfile.NewStore(opts.DataDir))
	default:
		repo = mem.NewCapivarasRepo(nil)
	}

	svc := capivaras.NewService(repo)
	capivaras.RegisterRoutes(r, svc, log.With(map[string]any{"component": "capivaras"}))

	return r
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"mensagem": MsgRouteNotFound})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
