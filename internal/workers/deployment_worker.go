package workers

import (
	"encoding/json"

	"github.com/consensys/gnark/backend/groth16"
	amqp "github.com/rabbitmq/amqp091-go"

	"zk-proving-service/internal/deployments"
	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/ledger"
	"zk-proving-service/internal/messages"
	"zk-proving-service/internal/program"
	"zk-proving-service/pkg/logger"
	"zk-proving-service/pkg/rabbitmq"
	"zk-proving-service/pkg/reasoncodes"
)

// DeploymentWorker consumes deployment requests from the queue, synthesizes
// the verifying keys for every function, publishes the program to the ledger
// and records the outcome.
type DeploymentWorker struct {
	Client     *ledger.Client
	Cache      *keycache.SynthesisCache
	Repository *deployments.Repository
	Consumer   rabbitmq.IRabbitmqConsumer
}

func NewDeploymentWorker(client *ledger.Client, cache *keycache.SynthesisCache, repository *deployments.Repository) *DeploymentWorker {
	return &DeploymentWorker{
		Client:     client,
		Cache:      cache,
		Repository: repository,
		Consumer:   rabbitmq.GetConsumer(deploymentWorkerServiceName),
	}
}

func (w *DeploymentWorker) GetServiceName() string {
	return string(deploymentWorkerServiceName)
}

func (w *DeploymentWorker) StartService() {
	workerLogger := logger.Default()
	failurePublisher := rabbitmq.GetPublisher(failureQueuePublisherAlias)
	resultPublisher := rabbitmq.GetPublisher(resultQueuePublisherAlias)

	w.Consumer.StartConsuming(func(d amqp.Delivery) {
		var request messages.DeploymentRequestDto
		failureFactory := messages.NewFailureFactory("", d.Body)

		if err := json.Unmarshal(d.Body, &request); err != nil {
			_ = failurePublisher.Publish(failureFactory.CreateErrorDto(err, reasoncodes.ErrUnmarshal))
			return
		}
		failureFactory = messages.NewFailureFactory(request.EventId, d.Body)

		prog, err := program.Parse([]byte(request.ProgramSource))
		if err != nil {
			workerLogger.Errorf(err, "Failed to parse program for event %s", request.EventId)
			w.failDeployment(request.EventId, failurePublisher, failureFactory.CreateErrorDto(err, reasoncodes.ErrProgramParse))
			return
		}

		verifyingKeys := make(map[string]groth16.VerifyingKey, len(prog.Functions))
		for _, fnName := range prog.FunctionNames() {
			entry, err := w.Cache.Keys(prog, fnName)
			if err != nil {
				workerLogger.Errorf(err, "Key synthesis failed for %s/%s", prog.Checksum(), fnName)
				w.failDeployment(request.EventId, failurePublisher, failureFactory.CreateErrorDto(err, reasoncodes.ErrKeySynthesis))
				return
			}
			verifyingKeys[fnName] = entry.VerifyingKey
		}

		deployment, err := ledger.NewProgramDeployment(prog, []byte(request.ProgramSource), verifyingKeys)
		if err != nil {
			w.failDeployment(request.EventId, failurePublisher, failureFactory.CreateErrorDto(err, reasoncodes.ErrKeySynthesis))
			return
		}

		refChan := make(chan ledger.DeploymentReference)
		errChan := make(chan error)

		go w.Client.PublishDeployment(deployment, errChan, refChan)

		var reference ledger.DeploymentReference
		select {
		case reference = <-refChan:
			workerLogger.Infof("Deployed program %s with signature: %s", prog.ProgramID, reference.Signature.String())
		case err := <-errChan:
			workerLogger.Errorf(err, "Unable to publish the deployment to the ledger")
			w.failDeployment(request.EventId, failurePublisher, failureFactory.CreateErrorDto(err, reasoncodes.ErrLedger))
			return
		}

		if err := w.Repository.MarkDeployed(
			request.EventId,
			reference.Account.String(),
			reference.Signature.String(),
			reference.Fee.TotalLamports,
		); err != nil {
			workerLogger.Errorf(err, "Failed to persist deployment for event %s", request.EventId)
			_ = failurePublisher.Publish(failureFactory.CreateErrorDto(err, reasoncodes.ErrPersistence))
			return
		}

		result := messages.DeploymentResultDto{
			EventId:         request.EventId,
			ProgramID:       prog.ProgramID,
			ProgramChecksum: prog.Checksum(),
			LedgerAccount:   reference.Account.String(),
			LedgerSignature: reference.Signature.String(),
			FeeLamports:     reference.Fee.TotalLamports,
		}

		_ = resultPublisher.Publish(result)
		workerLogger.Infof(
			"Processed deployment for event %s. Signature: %s, Account: %s, Fee: %d lamports",
			result.EventId, result.LedgerSignature, result.LedgerAccount, result.FeeLamports,
		)
	})
}

func (w *DeploymentWorker) failDeployment(eventId string, publisher rabbitmq.IRabbitmqPublisher, failure messages.DeploymentFailureDto) {
	if eventId != "" {
		if err := w.Repository.MarkFailed(eventId, string(failure.ReasonCode)); err != nil {
			logger.Default().Errorf(err, "Failed to mark deployment %s as failed", eventId)
		}
	}
	_ = publisher.Publish(failure)
}
