// Command seed loads the curated Seville restaurants and their TikTok
// videos. It is idempotent: restaurants are keyed on a synthetic
// google_place_id and videos are skipped when their URL already exists.
package main

import (
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/tapaspot/tapaspot-backend/internal/config"
	"github.com/tapaspot/tapaspot-backend/internal/database"
	"github.com/tapaspot/tapaspot-backend/internal/logging"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedRestaurant struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type seedVideo struct {
	RestaurantName string
	TikTokURL      string
}

var restaurants = []seedRestaurant{
	{"Eslava", "Calle Eslava 3, Sevilla", 37.38756, -5.99982},
	{"La Brunilda", "Calle Galera 5, Sevilla", 37.38690, -5.99300},
	{"La Azotea", "Calle Jesús del Gran Poder 31, Sevilla", 37.39140, -5.99650},
	{"Bar El Comercio", "Calle Lineros 9, Sevilla", 37.38630, -5.99250},
	{"Duo Tapas", "Calle Betis 51, Sevilla", 37.38210, -5.99620},
	{"Bar Gonzalo", "Calle Mateos Gago 22, Sevilla", 37.38580, -5.99120},
	{"Contenedor", "Calle San Luis 50, Sevilla", 37.39380, -5.99410},
	{"El Rinconcillo", "Calle Gerona 40, Sevilla", 37.39220, -5.99560},
	{"Bodeguita Casablanca", "Calle Adolfo Rodríguez Jurado 12, Sevilla", 37.38870, -5.99430},
	{"Bar Alfalfa", "Plaza Alfalfa 1, Sevilla", 37.38720, -5.99170},
}

var videos = []seedVideo{
	{"Bodeguita Casablanca", "https://www.tiktok.com/@miguedesevilla/video/6966863283659738374"},
	{"Bodeguita Casablanca", "https://www.tiktok.com/@chef_aprueba/video/7150231236278062341"},
	{"Eslava", "https://www.tiktok.com/@loquedigaelchef/video/7420141262138821921"},
	{"Eslava", "https://www.tiktok.com/@jnotions/video/7536931323009682710"},
	{"La Brunilda", "https://www.tiktok.com/@alertafoodie/video/7246833959278005531"},
	{"La Brunilda", "https://www.tiktok.com/@eldasworld/video/7467251240552975621"},
	{"La Azotea", "https://www.tiktok.com/@foodcanastera/video/7147014068199574789"},
	{"La Azotea", "https://www.tiktok.com/@foodsevillamalagaandmore/video/7160365360422669574"},
}

var handlePattern = regexp.MustCompile(`tiktok\.com/@([^/]+)`)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := seedRestaurants(db); err != nil {
		slog.Error("restaurant seeding failed", "error", err)
		os.Exit(1)
	}
	if err := seedVideos(db); err != nil {
		slog.Error("video seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding done", "restaurants", len(restaurants), "videos", len(videos))
}

func seedRestaurants(db *gorm.DB) error {
	for _, data := range restaurants {
		placeID := "seed-" + slugify(data.Name)
		restaurant := models.Restaurant{
			ID:            uuid.New(),
			Name:          data.Name,
			Address:       data.Address,
			Latitude:      data.Latitude,
			Longitude:     data.Longitude,
			GooglePlaceID: &placeID,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "google_place_id"}},
			DoNothing: true,
		}).Create(&restaurant).Error
		if err != nil {
			return err
		}
		slog.Info("restaurant seeded", "name", data.Name)
	}
	return nil
}

func seedVideos(db *gorm.DB) error {
	for _, data := range videos {
		var restaurant models.Restaurant
		if err := db.First(&restaurant, "name = ?", data.RestaurantName).Error; err != nil {
			slog.Warn("restaurant not found, skipping video", "name", data.RestaurantName)
			continue
		}

		var count int64
		if err := db.Model(&models.Video{}).Where("tik_tok_url = ?", data.TikTokURL).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			slog.Info("video already exists", "url", data.TikTokURL)
			continue
		}

		video := models.Video{
			ID:            uuid.New(),
			RestaurantID:  restaurant.ID,
			Source:        models.SourceTikTok,
			TikTokURL:     data.TikTokURL,
			CreatorHandle: extractHandle(data.TikTokURL),
			// Seeded videos are pre-moderated content
			Status: models.VideoApproved,
		}
		if err := db.Create(&video).Error; err != nil {
			return err
		}
		slog.Info("video seeded", "restaurant", data.RestaurantName, "handle", video.CreatorHandle)
	}
	return nil
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func extractHandle(url string) string {
	m := handlePattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return "@" + m[1]
}
