// Package httpapi exposes the service over HTTP: JSON and multipart
// handlers, the bearer-token middleware, and static serving of disk-stored
// uploads.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/petarea/petarea/internal/logging"
	"github.com/petarea/petarea/internal/server/assets"
	"github.com/petarea/petarea/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	pets      *services.PetService
	assets    assets.Store
	jwtSecret []byte
	router    *httprouter.Router
}

// NewServer wires the routes. uploadDir, when non-empty, is served under
// /uploads/ (the disk asset store's references point there).
func NewServer(address string, l logging.Logger, us *services.UserService, ps *services.PetService,
	st assets.Store, secretKey string, uploadDir string) *Server {

	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		pets:      ps,
		assets:    st,
		jwtSecret: []byte(secretKey),
		router:    httprouter.New(),
	}

	s.router.POST("/CadastroUsuarioPet", s.handleRegister)
	s.router.POST("/usuarioPet", s.handleLogin)
	s.router.GET("/areaUsuarioPet", s.protect(s.handleUserArea))
	s.router.POST("/updateProfile", s.protect(s.handleUpdateProfile))
	s.router.POST("/cadastrarPet", s.protect(s.handleRegisterPet))
	s.router.GET("/meusPets", s.protect(s.handleMyPets))
	s.router.POST("/uploadProfilePhoto", s.protect(s.handleUploadProfilePhoto))

	if uploadDir != "" {
		s.router.ServeFiles("/uploads/*filepath", http.Dir(uploadDir))
	}

	return s
}

// Handler returns the routed handler; tests drive it directly.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.router}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
