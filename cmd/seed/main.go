package main

import (
	"fmt"
	"time"

	"friendboard/internal/model"
	"friendboard/pkg/config"
	"friendboard/pkg/database"
	"friendboard/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with a small friend circle, a stranger, and
// enough posts, comments and likes to exercise the feed and info endpoints.
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
		email     string
		username  string
		firstName string
		lastName  string
	}{
		{"alice@test.com", "alice", "Alice", "Archer"},
		{"bob@test.com", "bob", "Bob", "Baker"},
		{"charlie@test.com", "charlie", "Charlie", "Cook"},
		{"diana@test.com", "diana", "Diana", "Drake"},
		{"eve@test.com", "eve", "Eve", "Everett"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, u := range testUsers {
		user := &model.UserModel{
			Username:     u.username,
			FirstName:    u.firstName,
			LastName:     u.lastName,
			AvatarURL:    fmt.Sprintf("https://avatars.test/%s.png", u.username),
			Email:        u.email,
			PasswordHash: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		log.Info("Created user %s (%s)", u.username, user.ID)
		userIDs = append(userIDs, user.ID)
	}

	// alice, bob and charlie form a friend circle; diana is only friends with
	// alice; eve knows nobody, so her posts never reach the others' feeds.
	friendPairs := [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}}
	for _, pair := range friendPairs {
		rows := []model.FriendshipModel{
			{UserID: userIDs[pair[0]], FriendID: userIDs[pair[1]]},
			{UserID: userIDs[pair[1]], FriendID: userIDs[pair[0]]},
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create friendship: %w", err)
		}
	}

	var postIDs []string
	for i, authorIdx := range []int{0, 1, 2, 3, 4} {
		post := &model.PostModel{
			AuthorID:  userIDs[authorIdx],
			Content:   fmt.Sprintf("Seed post %d from %s", i+1, testUsers[authorIdx].username),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		postIDs = append(postIDs, post.ID)
	}

	comment := &model.CommentModel{
		PostID:   postIDs[0],
		AuthorID: userIDs[1],
		Content:  "First!",
	}
	if err := db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	likes := []model.PostLikeModel{
		{UserID: userIDs[1], PostID: postIDs[0]},
		{UserID: userIDs[2], PostID: postIDs[0]},
	}
	if err := db.Create(&likes).Error; err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}

	commentLike := model.CommentLikeModel{UserID: userIDs[0], CommentID: comment.ID}
	if err := db.Create(&commentLike).Error; err != nil {
		return fmt.Errorf("failed to create comment like: %w", err)
	}

	return nil
}
