package handlers

import (
	"zk-proving-service/pkg/rest"
)

// Routes returns the route table for the proving service REST surface.
func Routes(handler *ProvingHandler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "api", "/v1/programs/deploy", handler.Deploy),
		rest.NewRoute(rest.GET, "api", "/v1/deployments/:event_id", handler.DeploymentStatus),
		rest.NewRoute(rest.GET, "api", "/v1/programs/:checksum/deployments", handler.ListDeployments),
		rest.NewRoute(rest.GET, "api", "/v1/programs/:checksum/executions/:function", handler.ListExecutions),
		rest.NewRoute(rest.POST, "api", "/v1/programs/fee-estimate", handler.EstimateFee),
		rest.NewRoute(rest.POST, "api", "/v1/programs/synthesize", handler.SynthesizeKeys),
		rest.NewRoute(rest.POST, "api", "/v1/programs/execute", handler.Execute),
		rest.NewRoute(rest.POST, "api", "/v1/programs/verify", handler.VerifyExecution),
		rest.NewRoute(rest.POST, "api", "/v1/records/parse", handler.ParseRecord),
		rest.NewRoute(rest.POST, "api", "/v1/records/serial-number", handler.RecordSerialNumber),
		rest.NewRoute(rest.POST, "api", "/v1/accounts", handler.NewAccount),
		rest.NewRoute(rest.POST, "api", "/v1/accounts/decrypt", handler.DecryptAccount),
		rest.NewRoute(rest.POST, "api", "/v1/accounts/sign", handler.Sign),
		rest.NewRoute(rest.POST, "api", "/v1/accounts/verify-signature", handler.VerifySignature),
	}
}
