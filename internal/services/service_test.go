package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory SQLite database per test. TranslateError
// is on so duplicate-key detection behaves like the Postgres deployment.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Video{},
		&models.Favorite{},
		&models.Ticket{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{ID: uuid.New(), Email: "user@example.com", Name: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createRestaurant(t *testing.T, db *gorm.DB, name string, lat, lng float64) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		ID:        uuid.New(),
		Name:      name,
		Address:   "Calle Falsa 123, Sevilla",
		Latitude:  lat,
		Longitude: lng,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}
