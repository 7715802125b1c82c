package cli

import (
	"context"
	"fmt"

	"github.com/dgidpl/startup-app/internal/client/models"
)

// Comments loads and prints the comment thread of an idea, oldest first.
func (a *App) Comments(ctx context.Context, id string) error {
	list, err := a.comments.Load(ctx, models.ID(id))
	if err != nil {
		// Show what we already have; a failed reload is not fatal.
		list = a.comments.Comments(models.ID(id))
	}

	if len(list) == 0 {
		printlnFn("Коментарів поки немає")
		return err
	}

	for _, c := range list {
		line := fmt.Sprintf("%s: %s", c.Author, c.Text)
		if !c.Date.IsZero() {
			line += " (" + c.Date.Format("02.01.2006 15:04") + ")"
		}
		if c.LocalID != "" {
			line += " [надсилається]"
		}
		printlnFn(line)
	}
	return err
}

// Comment interactively collects an author name and a comment body and
// posts them. The name prompt is prefilled with the last-used nickname.
func (a *App) Comment(ctx context.Context, id string) error {
	prompt := "Ваше ім'я"
	if nick := a.comments.Nickname(ctx); nick != "" {
		prompt += " [" + nick + "]"
	}

	author, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if author == "" {
		author = a.comments.Nickname(ctx)
	}

	text, err := GetMultiline(a.reader, "Коментар", a.out)
	if err != nil {
		return err
	}

	return a.comments.Post(ctx, models.ID(id), author, text)
}
