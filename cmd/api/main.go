package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirge-io/performance-api/infrastructure/database/postgres"
	"github.com/sirge-io/performance-api/infrastructure/integrator/facebook"
	"github.com/sirge-io/performance-api/infrastructure/integrator/facebook/facebookclient"
	"github.com/sirge-io/performance-api/infrastructure/integrator/tiktok"
	"github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/sirge-io/performance-api/infrastructure/repository"
	"github.com/sirge-io/performance-api/internal/api"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/scheduler"
	"github.com/sirge-io/performance-api/internal/usecases/authenticating"
	"github.com/sirge-io/performance-api/internal/usecases/converting"
	"github.com/sirge-io/performance-api/internal/usecases/reporting"
	"github.com/sirge-io/performance-api/pkg/metrics"
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

	userRepo := repository.NewUserRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	attributionRepo := repository.NewAttributionRepository(pgConn)
	exchangeRateRepo := repository.NewExchangeRateRepository(pgConn)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	facebookClient := facebookclient.NewClient(cfg)
	facebookIntegrator := facebook.New(cfg, facebookClient)

	tiktokClient := tiktokclient.NewClient(cfg)
	tiktokIntegrator := tiktok.New(cfg, tiktokClient)

	currencyResolver := converting.NewService(exchangeRateRepo)

	appMetrics := metrics.New("performance_api")

	reportService := reporting.NewService(
		cfg,
		businessRepo,
		attributionRepo,
		currencyResolver,
		appMetrics,
		facebookIntegrator,
		tiktokIntegrator,
	)

	// Inicializa o agendador de pré-geração de snapshots
	snapshotSyncService := scheduler.NewReportSnapshotSyncService(
		businessRepo,
		snapshotRepo,
		reportService,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de relatório")
	} else {
		logrus.Info("Agendador de snapshots de relatório iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		snapshotRepo,
		authenticator,
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
