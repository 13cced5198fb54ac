package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/edixon-javier/qargo-coffee-manager/internal/analytics"
	"github.com/edixon-javier/qargo-coffee-manager/internal/apisrv/auth"
	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	repo    dependency.Repository
	metrics *analytics.Service
	authSrv *auth.Server
	limiter *ratelimit.APILimiter
	done    chan struct{}
}

// New creates a new server
func New(config *Config, repo dependency.Repository, metrics *analytics.Service, authSrv *auth.Server) *Server {
	return &Server{
		c:       config,
		repo:    repo,
		metrics: metrics,
		authSrv: authSrv,
		limiter: ratelimit.NewAPILimiter(),
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.login)

		r.Get("/dashboard/metrics", s.getDashboardMetrics)
		r.Get("/statuses", s.listStatuses)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.listOrders)
			r.Get("/{uuid}", s.getOrderByUUID)
			r.Group(func(r chi.Router) {
				r.Use(s.authSrv.WithAuth)
				r.Post("/", s.createOrder)
				r.Put("/{uuid}/status", s.updateOrderStatus)
				r.Put("/{uuid}/tracking", s.setTrackingNumber)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Get("/{id}", s.getProductByID)
			r.Group(func(r chi.Router) {
				r.Use(s.authSrv.WithAuth)
				r.Post("/", s.addProduct)
				r.Put("/{id}", s.updateProduct)
				r.Delete("/{id}", s.deleteProduct)
			})
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", s.listSuppliers)
			r.Get("/{id}", s.getSupplierByID)
			r.Group(func(r chi.Router) {
				r.Use(s.authSrv.WithAuth)
				r.Post("/", s.addSupplier)
				r.Put("/{id}", s.updateSupplier)
				r.Delete("/{id}", s.deleteSupplier)
			})
		})

		r.Route("/franchisees", func(r chi.Router) {
			r.Get("/", s.listFranchisees)
			r.Get("/{id}", s.getFranchiseeByID)
			r.Group(func(r chi.Router) {
				r.Use(s.authSrv.WithAuth)
				r.Post("/", s.addFranchisee)
				r.Put("/{id}", s.updateFranchisee)
				r.Delete("/{id}", s.deleteFranchisee)
			})
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("qargo-coffee-manager listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()))
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, draining in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
