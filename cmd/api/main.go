package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/api"
	"github.com/vfg2006/home-services-api/internal/config"
	"github.com/vfg2006/home-services-api/internal/scheduler"
	"github.com/vfg2006/home-services-api/internal/usecases/authenticating"
	"github.com/vfg2006/home-services-api/internal/usecases/booking"
	"github.com/vfg2006/home-services-api/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	vendorRepo := repository.NewVendorRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	bookingRepo := repository.NewBookingRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)
	inspectionRepo := repository.NewInspectionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	bookingService := booking.NewService(bookingRepo, serviceRepo)
	dashboardService := dashboarding.NewService(cfg, dashboardRepo)

	// Jobs de manutenção em background
	bookingExpiryService := scheduler.NewBookingExpiryService(bookingRepo, cfg)
	vendorStatsSyncService := scheduler.NewVendorStatsSyncService(vendorRepo, cfg)

	if err := bookingExpiryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o job de expiração de agendamentos")
	} else {
		logrus.Info("Job de expiração de agendamentos iniciado com sucesso")
	}

	if err := vendorStatsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o job de estatísticas de fornecedores")
	} else {
		logrus.Info("Job de estatísticas de fornecedores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		bookingService,
		authenticator,
		api.Repositories{
			Customer:   customerRepo,
			Vendor:     vendorRepo,
			Service:    serviceRepo,
			Payment:    paymentRepo,
			Inspection: inspectionRepo,
			Booking:    bookingRepo,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
