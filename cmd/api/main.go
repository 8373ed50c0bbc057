package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/infrastructure/integrator/bsestar"
	"github.com/finxpert/advisor-api/infrastructure/integrator/gemini"
	"github.com/finxpert/advisor-api/infrastructure/integrator/icicipru"
	"github.com/finxpert/advisor-api/infrastructure/integrator/loanpartner"
	"github.com/finxpert/advisor-api/infrastructure/integrator/setu"
	"github.com/finxpert/advisor-api/infrastructure/messaging"
	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/adapters"
	"github.com/finxpert/advisor-api/internal/api"
	"github.com/finxpert/advisor-api/internal/config"
	"github.com/finxpert/advisor-api/internal/scheduler"
	"github.com/finxpert/advisor-api/internal/usecases/advising"
	"github.com/finxpert/advisor-api/internal/usecases/campaigning"
	"github.com/finxpert/advisor-api/internal/usecases/portfolio"
	"github.com/finxpert/advisor-api/internal/usecases/tasking"
	"github.com/finxpert/advisor-api/internal/usecases/transacting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	if pgConn != nil {
		defer pgConn.Close()
	}

	// Repositories stay nil without a database; every usecase degrades to
	// mock data or a configuration error instead of crashing.
	var (
		clientRepo      repository.ClientRepository
		positionRepo    repository.PositionRepository
		taskRepo        repository.TaskRepository
		campaignRepo    repository.CampaignRepository
		transactionRepo repository.TransactionRepository
		complianceRepo  repository.ComplianceRepository
		agentLogRepo    repository.AgentLogRepository
	)
	if pgConn != nil {
		clientRepo = repository.NewClientRepository(pgConn)
		positionRepo = repository.NewPositionRepository(pgConn)
		taskRepo = repository.NewTaskRepository(pgConn)
		campaignRepo = repository.NewCampaignRepository(pgConn)
		transactionRepo = repository.NewTransactionRepository(pgConn)
		complianceRepo = repository.NewComplianceRepository(pgConn)
		agentLogRepo = repository.NewAgentLogRepository(pgConn)
	}

	geminiClient := gemini.NewClient(cfg.Gemini)
	setuClient := setu.NewClient(cfg.Setu)
	iciciClient := icicipru.NewClient(cfg.ICICIPru)
	bseStarClient := bsestar.NewClient(cfg.BSEStar)
	loanPartnerClient := loanpartner.NewClient(cfg.LoanPartner)

	mutualFundAdapter := adapters.NewMutualFundAdapter(positionRepo)
	loanAdapter := adapters.NewLoanAdapter(positionRepo)
	insuranceAdapter := adapters.NewInsuranceAdapter(setuClient, iciciClient, positionRepo)
	aifAdapter := adapters.NewAIFAdapter(positionRepo)

	advisingService := advising.NewService(geminiClient, mutualFundAdapter, loanAdapter, agentLogRepo)

	portfolioService := portfolio.NewService(
		mutualFundAdapter,
		loanAdapter,
		insuranceAdapter,
		aifAdapter,
		clientRepo,
		campaignRepo,
		complianceRepo,
		advisingService,
	)

	transactionService := transacting.NewService(clientRepo, transactionRepo, bseStarClient, loanPartnerClient)

	campaignService := campaigning.NewService(
		campaignRepo,
		clientRepo,
		messaging.NewWhatsAppSender(cfg.WhatsApp),
		messaging.NewSMSSender(cfg.Twilio),
		messaging.NewEmailSender(cfg.SendGrid),
	)

	taskService := tasking.NewService(taskRepo)

	complianceSweep := scheduler.NewComplianceSweepService(complianceRepo, cfg)
	if err := complianceSweep.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start compliance sweep scheduler")
	}
	defer complianceSweep.Stop()

	server, err := api.New(
		cfg,
		portfolioService,
		advisingService,
		transactionService,
		campaignService,
		taskService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn connects to PostgreSQL. An unreachable or disabled database is not
// fatal; the service runs on mock data until the store comes back.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	if !dbConfig.Enabled {
		logrus.Info("database disabled by configuration, serving mock data")
		return nil
	}

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("could not connect to PostgreSQL, serving mock data")
		return nil
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
