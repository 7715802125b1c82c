package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgidpl/startup-app/internal/client/models"
)

const itemsPerPage = 10

// statusLabels maps a status bucket to the badge shown next to an idea.
var statusLabels = map[models.StatusKind]string{
	models.StatusNew:         "нова",
	models.StatusUnderReview: "на розгляді",
	models.StatusInProgress:  "в роботі",
	models.StatusImplemented: "реалізовано",
	models.StatusRejected:    "відхилено",
}

// FilterIdeas returns the ideas whose content or author contains query,
// case-insensitively. An empty query returns the full list.
func FilterIdeas(ideas []models.Idea, query string) []models.Idea {
	if query == "" {
		return ideas
	}
	q := strings.ToLower(query)

	filtered := make([]models.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if strings.Contains(strings.ToLower(idea.Content), q) ||
			(idea.Author != "" && strings.Contains(strings.ToLower(idea.Author), q)) {
			filtered = append(filtered, idea)
		}
	}
	return filtered
}

// PageNumbers returns the page strip for the pager: all pages when there are
// at most seven, otherwise the first page, a window of one page around the
// current one, and the last page, with "..." filling the gaps.
func PageNumbers(current, total int) []string {
	if total <= 7 {
		pages := make([]string, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, strconv.Itoa(i))
		}
		return pages
	}

	pages := []string{"1"}
	start := max(2, current-1)
	end := min(total-1, current+1)
	if start > 2 {
		pages = append(pages, "...")
	}
	for i := start; i <= end; i++ {
		pages = append(pages, strconv.Itoa(i))
	}
	if end < total-1 {
		pages = append(pages, "...")
	}
	return append(pages, strconv.Itoa(total))
}

// List renders the current page of the (possibly filtered) idea list.
func (a *App) List(ctx context.Context) error {
	ideas := a.ideas.Ideas()

	a.mu.Lock()
	query, page := a.query, a.page
	a.mu.Unlock()

	filtered := FilterIdeas(ideas, query)
	if len(filtered) == 0 {
		if query != "" {
			printlnFn("Нічого не знайдено за запитом:", query)
		} else {
			printlnFn("Ідей поки немає")
		}
		return nil
	}

	totalPages := (len(filtered) + itemsPerPage - 1) / itemsPerPage
	if page > totalPages {
		page = totalPages
	}

	first := (page - 1) * itemsPerPage
	last := min(first+itemsPerPage, len(filtered))
	for _, idea := range filtered[first:last] {
		printlnFn(a.formatIdea(ctx, idea))
	}

	if totalPages > 1 {
		printlnFn("Сторінка " + strconv.Itoa(page) + " з " + strconv.Itoa(totalPages) +
			"  [" + strings.Join(PageNumbers(page, totalPages), " ") + "]")
	}
	return nil
}

// Search sets the bank filter and re-renders from the first page. An empty
// query clears the filter.
func (a *App) Search(ctx context.Context, query string) error {
	a.mu.Lock()
	a.query = strings.TrimSpace(query)
	a.page = 1
	a.mu.Unlock()
	return a.List(ctx)
}

// Page jumps to the given page of the current listing.
func (a *App) Page(ctx context.Context, page string) error {
	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		printlnFn("Usage: page <n>")
		return nil
	}

	a.mu.Lock()
	a.page = n
	a.mu.Unlock()
	return a.List(ctx)
}

// formatIdea renders one idea row: id, status badge, topic, content, author
// and the vote counters, with a marker for the direction this client voted.
func (a *App) formatIdea(ctx context.Context, idea models.Idea) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%s [%s]", idea.ID, statusLabels[models.ClassifyStatus(idea.Status)])
	if idea.Topic != "" {
		fmt.Fprintf(&b, " %s:", idea.Topic)
	}
	fmt.Fprintf(&b, " %s", idea.Content)
	if idea.Author != "" {
		fmt.Fprintf(&b, " — %s", idea.Author)
	}
	if !idea.Date.IsZero() {
		fmt.Fprintf(&b, " (%s)", idea.Date.Format("02.01.2006"))
	}

	up, down := strconv.Itoa(idea.Upvotes), strconv.Itoa(idea.Downvotes)
	if direction, voted := a.votes.Voted(ctx, idea.ID); voted {
		if direction == models.VoteUp {
			up += "*"
		} else {
			down += "*"
		}
	}
	fmt.Fprintf(&b, " ↑%s ↓%s", up, down)

	return b.String()
}
