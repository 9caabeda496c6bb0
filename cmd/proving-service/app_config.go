package main

import (
	"zk-proving-service/pkg/logger"
	"zk-proving-service/pkg/rabbitmq"
)

type ProvingServiceConfigJson struct {
	LoggerConf   logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConf rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestApiPort  uint16                     `json:"rest_api_port"`
	DatabasePath string                     `json:"database_path"`
	ArtifactDir  string                     `json:"artifact_dir"`
	LedgerRpcUrl string                     `json:"ledger_rpc_url"`
}

type ProvingServiceConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestApiPort  uint16
	DatabasePath string
	ArtifactDir  string
	LedgerRpcUrl string
}

func (pcj ProvingServiceConfigJson) ConvertToDomain() ProvingServiceConfig {
	return ProvingServiceConfig{
		LoggerConf:   pcj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: pcj.RabbitmqConf.ConvertToDomain(),
		RestApiPort:  pcj.RestApiPort,
		DatabasePath: pcj.DatabasePath,
		ArtifactDir:  pcj.ArtifactDir,
		LedgerRpcUrl: pcj.LedgerRpcUrl,
	}
}

func (pc ProvingServiceConfig) GetLoggerConfig() logger.LoggerConfig {
	return pc.LoggerConf
}

func (pc ProvingServiceConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return pc.RabbitmqConf
}

func (pc ProvingServiceConfig) GetRestApiPort() uint16 {
	return pc.RestApiPort
}
