package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/api/handler"
	"github.com/vfg2006/home-services-api/internal/api/handler/router"
	"github.com/vfg2006/home-services-api/internal/config"
	"github.com/vfg2006/home-services-api/internal/usecases/authenticating"
	"github.com/vfg2006/home-services-api/internal/usecases/booking"
	"github.com/vfg2006/home-services-api/internal/usecases/dashboarding"
	"github.com/vfg2006/home-services-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Repositories agrupa os repositórios expostos diretamente pelas rotas CRUD
type Repositories struct {
	Customer   repository.CustomerRepository
	Vendor     repository.VendorRepository
	Service    repository.ServiceRepository
	Payment    repository.PaymentRepository
	Inspection repository.InspectionRepository
	Booking    repository.BookingRepository
}

func New(
	config *config.Config,
	dashboardService dashboarding.Dashboarder,
	bookingService booking.BookingService,
	authenticator authenticating.Authenticator,
	repos Repositories,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
		router.WithRoutes(handler.Customers(repos.Customer)...),
		router.WithRoutes(handler.Vendors(repos.Vendor)...),
		router.WithRoutes(handler.Services(repos.Service)...),
		router.WithRoutes(handler.Bookings(bookingService)...),
		router.WithRoutes(handler.Payments(repos.Payment)...),
		router.WithRoutes(handler.Inspections(repos.Inspection, repos.Booking)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
