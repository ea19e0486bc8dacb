package router

import (
	"database/sql"
	"net/http"
	"os"

	filestore "petmate/internal/adapters/storage/file"
	pg "petmate/internal/adapters/storage/postgres"
	"petmate/internal/domain/adminops"
	"petmate/internal/domain/consumption"
	"petmate/internal/domain/dashboard"
	"petmate/internal/domain/hospital"
	"petmate/internal/domain/medication"
	"petmate/internal/domain/pets"
	"petmate/internal/domain/unsafedb"
	"petmate/internal/domain/users"
	"petmate/internal/middleware"
	"petmate/internal/platform/logger"
	"petmate/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petmate/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil (login sin token)

	// Opcional: si viene, usa Postgres. Si no, archivos planos en DataDir.
	DB      *sql.DB
	DataDir string

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		userRepo   users.Repository
		petRepo    pets.Repository
		consRepo   consumption.Repository
		medRepo    medication.Repository
		hospRepo   hospital.Repository
		unsafeRepo unsafedb.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		consRepo = pg.NewConsumptionRepo(db)
		medRepo = pg.NewMedicationRepo(db)
		hospRepo = pg.NewHospitalRepo(db)
		unsafeRepo = pg.NewUnsafeRepo(db)
	} else {
		dir := opts.DataDir
		if dir == "" {
			dir = "data"
		}
		store, err := filestore.NewStore(dir)
		if err != nil {
			return nil, err
		}
		userRepo = filestore.NewUsersRepo(store)
		petRepo = filestore.NewPetsRepo(store)
		consRepo = filestore.NewConsumptionRepo(store)
		medRepo = filestore.NewMedicationRepo(store)
		hospRepo = filestore.NewHospitalRepo(store)
		unsafeRepo = filestore.NewUnsafeRepo(store)
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo)
	consSvc := consumption.NewService(consRepo)
	medSvc := medication.NewService(medRepo)
	hospSvc := hospital.NewService(hospRepo)
	unsafeSvc := unsafedb.NewService(unsafeRepo)
	dashSvc := dashboard.NewService(petsSvc, consSvc, medSvc, hospSvc)
	adminSvc := adminops.NewService(usersSvc, petsSvc, consSvc, medSvc, hospSvc, unsafeSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, opts.TokenIssuer)
	pets.RegisterRoutes(r, petsSvc)
	consumption.RegisterRoutes(r, consSvc)
	medication.RegisterRoutes(r, medSvc)
	hospital.RegisterRoutes(r, hospSvc)
	unsafedb.RegisterRoutes(r, unsafeSvc)
	dashboard.RegisterRoutes(r, dashSvc)
	adminops.RegisterRoutes(r, adminSvc)

	return r, nil
}
