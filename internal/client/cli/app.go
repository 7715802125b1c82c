package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/dgidpl/startup-app/internal/client/api"
	"github.com/dgidpl/startup-app/internal/client/config"
	"github.com/dgidpl/startup-app/internal/client/nav"
	"github.com/dgidpl/startup-app/internal/client/notify"
	"github.com/dgidpl/startup-app/internal/client/services"
	"github.com/dgidpl/startup-app/internal/client/storage"
	"github.com/dgidpl/startup-app/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the idea-bank client together: configuration, local storage,
// the API client, the navigation state machine and the four services the
// REPL commands call into.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	emitter   *notify.Emitter
	navigator *nav.Navigator
	ideas     *services.IdeaService
	votes     *services.VoteService
	comments  *services.CommentService
	submit    *services.SubmitService
	reader    *bufio.Reader
	out       io.Writer

	mu    sync.Mutex
	page  int
	query string
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, db, err := storage.OpenOrReset(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		page:   1,
	}

	a.emitter = notify.NewEmitter(c.NotificationTTL, func(n notify.Notification) {
		prefix := "[ok]"
		if n.Severity == notify.SeverityError {
			prefix = "[error]"
		}
		printlnFn(prefix, n.Message)
	})

	apiClient := api.NewHTTPClient(c.EndpointURL)
	store := nav.NewFileSessionStore(c.SessionFilePath)
	a.navigator = nav.NewNavigator(store, c.TransitionOut, c.TransitionIn)

	a.ideas = services.NewIdeaService(apiClient, a.emitter, log, c.RefreshInterval)
	a.votes = services.NewVoteService(apiClient, repos.Votes, a.emitter, log, a.ideas, c.HighlightWindow)
	a.comments = services.NewCommentService(apiClient, repos.Metadata, a.emitter, log)
	a.submit = services.NewSubmitService(apiClient, a.emitter, log, a.ideas, a.navigator, c.NavigateDelay)

	return a, nil
}

// getStatus renders the prompt decoration: the active section, with a
// loading marker while a manual refresh is in flight.
func (a *App) getStatus() string {
	s := string(a.navigator.Active())
	if a.ideas.Loading() {
		s += " loading"
	}
	return "(" + s + ")"
}

// GoTab switches to the named section. The polling hooks registered in Run
// fire at the swap point of the transition.
func (a *App) GoTab(target string) {
	t, ok := nav.ParseTab(target)
	if !ok {
		printlnFn("Unknown section:", target)
		return
	}
	a.navigator.Go(t)
}

// Run performs the initial load and enters the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.ideas.StopPolling()
		_ = a.db.Close()
	}()

	a.navigator.SetHooks(
		func(t nav.Tab) {
			renderSection(t)
			if t == nav.TabBank {
				a.ideas.StartPolling(ctx)
			}
		},
		func(t nav.Tab) {
			if t == nav.TabBank {
				a.ideas.StopPolling()
			}
		},
	)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		printlnFn("Банк ідей (type 'help' for commands)")
	}

	_ = a.ideas.Refresh(ctx, false)
	if a.navigator.Active() == nav.TabBank {
		a.ideas.StartPolling(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Refresh reloads the idea list from the server, with the loading marker
// and an error notification on failure.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.ideas.Refresh(ctx, false); err != nil {
		return err
	}
	return a.List(ctx)
}
