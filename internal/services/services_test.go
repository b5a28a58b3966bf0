package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/princeprakhar/product-reviews/internal/config"
	"github.com/princeprakhar/product-reviews/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DriverSQLite, ":memory:", logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

var ctx = context.Background()
