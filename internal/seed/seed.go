package seed

import (
	"context"
	"fmt"
	"log"

	"alcove/internal/models"
	"alcove/internal/repository"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxDays     int
	SkipBcrypt  bool
	ShouldClean bool
}

// Seed populates the database with demo users, posts, threaded comments and
// upvotes. Comments and votes are created through the repositories so the
// denormalized points and comment counters match the real rows.
func Seed(db *gorm.DB, opts Options) error {
	ctx := context.Background()
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	upvoteRepo := repository.NewUpvoteRepository(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[factory.rng.Intn(len(users))]
		post := factory.BuildPost(author)
		if err := postRepo.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))

	comments := 0
	for _, post := range posts {
		topLevel := factory.rng.Intn(5)
		for i := 0; i < topLevel; i++ {
			commenter := users[factory.rng.Intn(len(users))]
			comment, err := commentRepo.CreateTopLevel(ctx, &models.Comment{
				PostID:  post.ID,
				UserID:  commenter.ID,
				Content: factory.CommentContent(),
			})
			if err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++

			// A thread under roughly half the comments.
			parent := comment
			for factory.rng.Intn(2) == 0 {
				replier := users[factory.rng.Intn(len(users))]
				reply, err := commentRepo.CreateReply(ctx, parent.ID, &models.Comment{
					UserID:  replier.ID,
					Content: factory.CommentContent(),
				})
				if err != nil {
					return fmt.Errorf("failed to create reply: %w", err)
				}
				comments++
				parent = reply
			}
		}
	}
	log.Printf("Created %d comments", comments)

	votes := 0
	for _, post := range posts {
		for _, user := range users {
			if factory.rng.Intn(4) != 0 {
				continue
			}
			if _, _, err := upvoteRepo.TogglePost(ctx, post.ID, user.ID); err != nil {
				return fmt.Errorf("failed to upvote post: %w", err)
			}
			votes++
		}
	}
	log.Printf("Created %d post upvotes", votes)

	log.Println("Seeding complete")
	return nil
}

// clearData removes seeded rows in dependency order.
func clearData(db *gorm.DB) error {
	tables := []string{
		"comment_upvotes",
		"post_upvotes",
		"comments",
		"posts",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
