package deployments

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"zk-proving-service/pkg/logger"
)

func ConnectToDatabase(connectionString string) (*gorm.DB, error) {
	dbLogger := logger.Default()
	dbLogger.Infof("Establishing connection to database: %s", connectionString)

	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("cannot establish database connection: %w", err)
	}

	dbLogger.Info("Running migrations for deployment tables")
	if err := db.AutoMigrate(&DeploymentRecord{}, &ExecutionRecord{}); err != nil {
		return nil, fmt.Errorf("migrating database failed: %w", err)
	}

	return db, nil
}
