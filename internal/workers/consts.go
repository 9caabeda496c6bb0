package workers

import "zk-proving-service/pkg/rabbitmq"

const (
	deploymentWorkerServiceName rabbitmq.ConsumerAlias = "DeploymentWorker"

	resultQueuePublisherAlias  rabbitmq.PublisherAlias = "DeploymentResultsPublisher"
	failureQueuePublisherAlias rabbitmq.PublisherAlias = "DeploymentFailurePublisher"
)
