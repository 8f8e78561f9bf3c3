package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/terraincognita07/vitalis/internal/db"
	"github.com/terraincognita07/vitalis/internal/services"
)

type PublishPostInput struct {
	Title       string
	Summary     string
	BodyPath    string
	PublishedAt time.Time
}

func RunPublishPostCommand(dbPath string, input PublishPostInput, out io.Writer) error {
	body, err := os.ReadFile(input.BodyPath)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	post, err := services.NewBlogService(db.NewBlogRepository(database)).
		Publish(input.Title, input.Summary, string(body), input.PublishedAt)
	if err != nil {
		return fmt.Errorf("publish post: %w", err)
	}

	fmt.Fprintf(out, "Published %s (%s) at %s\n", post.Slug, post.ID, post.PublishedAt.Format(time.RFC3339))
	return nil
}
