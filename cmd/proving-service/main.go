package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"zk-proving-service/docs"
	"zk-proving-service/internal/deployments"
	"zk-proving-service/internal/handlers"
	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/ledger"
	"zk-proving-service/internal/prover"
	"zk-proving-service/internal/workers"
	"zk-proving-service/pkg/appbuilder"
	"zk-proving-service/pkg/logger"
	"zk-proving-service/pkg/rabbitmq"
	"zk-proving-service/pkg/rest"
)

const logPublisherAlias rabbitmq.PublisherAlias = "LogPublisher"

// @title           Zero-Knowledge Proving Service API
// @version         1.0
// @description     Program deployment, key synthesis, offline execution and proof verification
// @BasePath /api
func main() {
	_ = godotenv.Load()

	builder := appbuilder.New[ProvingServiceConfigJson, ProvingServiceConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []logger.LoggerArg{
				{Key: "application", Value: "proving-service"},
				{Key: "version", Value: "1.0.0"},
			},
		}).
		LoadConfig(configPath())

	config := builder.Config()
	mainLogger := logger.Default()

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", config.GetRestApiPort())

	db, err := deployments.ConnectToDatabase(config.DatabasePath)
	if err != nil {
		mainLogger.Fatal(err, "Unable to connect to deployments database")
	}
	repository := deployments.NewRepository(db)

	store, err := keycache.NewArtifactStore(config.ArtifactDir)
	if err != nil {
		mainLogger.Fatal(err, "Unable to open key artifact store")
	}
	cache := keycache.NewSynthesisCache(store)
	executor := prover.NewExecutor(cache)
	verifier := prover.NewVerifier(cache)

	ledgerKeys, err := ledger.LoadLedgerKeys()
	if err != nil {
		mainLogger.Fatal(err, "Unable to load ledger keypairs")
	}
	ledgerClient := ledger.NewClient(ledgerKeys, config.LedgerRpcUrl)

	service := handlers.NewProvingService(cache, executor, verifier, ledgerClient, repository)
	handler := handlers.NewProvingHandler(service)

	builder = builder.
		InitRabbitmqConnection().
		InitRabbitmqRegistries()

	logSink := rabbitmq.CreateRabbitmqLoggerSink(rabbitmq.GetPublisher(logPublisherAlias))
	logger.AddSinkToLoggerInstance(mainLogger, logSink)

	builder.
		AddWorkerServices(
			workers.NewDeploymentWorker(ledgerClient, cache, repository),
			workers.NewReconciliationWorker(repository),
		).
		AddGinMiddleware(rest.NewMiddleware(rest.AllGroups, handlers.CORSMiddleware())).
		AddGinRoutes(handlers.Routes(handler)...).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.json"
}
