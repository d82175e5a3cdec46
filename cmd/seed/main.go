package main

import (
	"fmt"

	"vidtube/internal/model"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		fullName string
		email    string
		username string
		password string
	}{
		{"Alice Anders", "alice@test.com", "alice", "password123"},
		{"Bob Brown", "bob@test.com", "bob", "password123"},
		{"Charlie Clark", "charlie@test.com", "charlie", "password123"},
		{"Diana Diaz", "diana@test.com", "diana", "password123"},
		{"Eve Evans", "eve@test.com", "eve", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, u := range testUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := model.UserModel{
			FullName:  u.fullName,
			Email:     u.email,
			Username:  u.username,
			Password:  string(hashed),
			AvatarURL: fmt.Sprintf("https://placehold.co/256x256?text=%s", u.username),
		}
		if err := db.Where("username = ?", u.username).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}

		log.Info("Seeded user %s (%s)", user.Username, user.ID)
		userIDs = append(userIDs, user.ID)
	}

	for i, ownerID := range userIDs {
		for j := 0; j < 3; j++ {
			video := model.VideoModel{
				OwnerID:      ownerID,
				VideoURL:     fmt.Sprintf("https://example.com/videos/seed-%d-%d.mp4", i, j),
				ThumbnailURL: fmt.Sprintf("https://placehold.co/640x360?text=video-%d-%d", i, j),
				Title:        fmt.Sprintf("Seed video %d by %s", j+1, testUsers[i].username),
				Description:  "Seeded video for local development",
				Duration:     float64(60 + 30*j),
				IsPublished:  j != 2,
			}
			if err := db.Where("video_url = ?", video.VideoURL).FirstOrCreate(&video).Error; err != nil {
				return fmt.Errorf("failed to seed video: %w", err)
			}
		}
	}

	// Everyone subscribes to the first channel.
	for _, subscriberID := range userIDs[1:] {
		sub := model.SubscriptionModel{
			SubscriberID: subscriberID,
			ChannelID:    userIDs[0],
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sub).Error; err != nil {
			return fmt.Errorf("failed to seed subscription: %w", err)
		}
	}

	return nil
}
