package seed

import (
	"log"
	"math/rand"

	"github.com/Shiven1412/dead-poets/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPoems    int
	ShouldClean bool
}

// Seed populates the database with demo users, a follow graph, poems, likes,
// and comments. All seeded users share the password "Password123".
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d poems...", opts.NumUsers, opts.NumPoems)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return err
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	// Follow graph: each user follows a handful of random others.
	for _, user := range users {
		followCount := 1 + rand.Intn(5)
		for j := 0; j < followCount; j++ {
			target := users[rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			edge := models.Follow{FollowerID: user.ID, FolloweeID: target.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
				return err
			}
		}
	}

	poems := make([]*models.Poem, 0, opts.NumPoems)
	for i := 0; i < opts.NumPoems; i++ {
		author := users[rand.Intn(len(users))]
		poem, err := f.CreatePoem(author)
		if err != nil {
			return err
		}
		poems = append(poems, poem)
	}

	// Engagement: random likes and comments.
	for _, poem := range poems {
		likeCount := rand.Intn(len(users)/2 + 1)
		for j := 0; j < likeCount; j++ {
			user := users[rand.Intn(len(users))]
			like := models.Like{UserID: user.ID, PoemID: poem.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
		}

		commentCount := rand.Intn(4)
		for j := 0; j < commentCount; j++ {
			user := users[rand.Intn(len(users))]
			if _, err := f.CreateComment(user, poem); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d poems", len(users), len(poems))
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents to respect foreign keys.
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Poem{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
