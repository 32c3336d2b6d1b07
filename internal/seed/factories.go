// Package seed provides helpers to create demo data for development
// databases. The write paths go through the repositories so denormalized
// counters stay consistent with the underlying rows.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"alcove/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
	}

	// Skipping bcrypt makes large seeds fast in dev.
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	return user, f.db.Create(user).Error
}

// BuildPost constructs a post without persisting it, with a realistic
// created_at spread over the recent past.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	post := &models.Post{
		UserID: user.ID,
		Title:  gofakeit.Sentence(5),
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	// Roughly a third link posts, the rest text posts.
	if f.rng.Intn(3) == 0 {
		link := gofakeit.URL()
		post.URL = &link
		post.Title = fmt.Sprintf("%s: %s", gofakeit.DomainName(), post.Title)
	} else {
		content := gofakeit.Paragraph(1, 3, 8, "\n")
		post.Content = &content
	}
	return post
}

// CommentContent generates plausible comment text.
func (f *Factory) CommentContent() string {
	return gofakeit.Sentence(f.rng.Intn(18) + 3)
}
