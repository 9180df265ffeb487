// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Bio:      gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePoem constructs and persists a sample poem for the given author.
// The content has a few short lines so it reads like verse.
func (f *Factory) CreatePoem(author *models.User, overrides ...func(*models.Poem)) (*models.Poem, error) {
	lineCount := 3 + f.rng.Intn(5)
	lines := make([]string, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		lines = append(lines, gofakeit.Sentence(3+f.rng.Intn(5)))
	}

	poem := &models.Poem{
		Title:    gofakeit.BookTitle(),
		Content:  strings.Join(lines, "\n"),
		AuthorID: author.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	poem.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(poem)
	}

	if err := f.db.Create(poem).Error; err != nil {
		return nil, err
	}
	return poem, nil
}

// CreateComment persists a sample comment by the user on the poem.
func (f *Factory) CreateComment(user *models.User, poem *models.Poem) (*models.Comment, error) {
	comment := &models.Comment{
		PoemID: poem.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(4 + f.rng.Intn(8)),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
