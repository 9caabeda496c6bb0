package workers

import (
	"fmt"
	"time"

	"github.com/robfig/cron"

	"zk-proving-service/internal/deployments"
	"zk-proving-service/internal/messages"
	"zk-proving-service/pkg/logger"
	"zk-proving-service/pkg/rabbitmq"
	"zk-proving-service/pkg/reasoncodes"
)

const reconciliationWorkerName = "ReconciliationCronWorker"

// pendingDeploymentTimeout is how long a deployment may sit in the pending
// state before it is written off. The deployment worker normally resolves a
// request within seconds; anything older was lost to a crash or a dropped
// queue message.
const pendingDeploymentTimeout = 15 * time.Minute

// ReconciliationWorker periodically times out deployments stuck in pending so
// their status endpoint does not report an in-flight request forever.
type ReconciliationWorker struct {
	repository *deployments.Repository
	cron       *cron.Cron
}

func NewReconciliationWorker(repository *deployments.Repository) rabbitmq.WorkerService {
	return &ReconciliationWorker{
		repository: repository,
		cron:       cron.New(),
	}
}

func (rw *ReconciliationWorker) GetServiceName() string {
	return reconciliationWorkerName
}

func (rw *ReconciliationWorker) StartService() {
	err := rw.cron.AddFunc("@every 1m", func() { rw.timeoutStaleDeployments() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", reconciliationWorkerName)
	}

	rw.cron.Start()
}

func (rw *ReconciliationWorker) timeoutStaleDeployments() {
	reconciliationLogger := logger.Default()
	failurePublisher := rabbitmq.GetPublisher(failureQueuePublisherAlias)

	records, err := rw.repository.ListStalePending(pendingDeploymentTimeout)
	if err != nil {
		reconciliationLogger.Error(err, "Could not read stale deployments from database")
		return
	}

	for _, record := range records {
		reconciliationLogger.Warnf("Timing out deployment %s (pending since %s)", record.EventId, record.CreatedAt)

		if err := rw.repository.MarkFailed(record.EventId, "deployment timed out"); err != nil {
			reconciliationLogger.Errorf(err, "Could not mark deployment %s as failed", record.EventId)
			continue
		}

		failure := messages.NewFailureFactory(record.EventId, nil).CreateErrorDto(
			fmt.Errorf("deployment pending for more than %s", pendingDeploymentTimeout),
			reasoncodes.ErrLedger,
		)
		if err := failurePublisher.Publish(failure); err != nil {
			reconciliationLogger.Error(err, "Can't publish to queue")
		}
	}
}
