package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/blogcli/internal/client/client"
	"github.com/dmitrijs2005/blogcli/internal/client/config"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/client/services"
	"github.com/dmitrijs2005/blogcli/internal/client/session"
	"github.com/dmitrijs2005/blogcli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	postService services.PostService
	repos       *client.Repositories
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	// userName is the decoded viewer identity; "" when logged out or when
	// the stored token cannot be decoded.
	userName string
	loggedIn bool

	// feed is the last rendered feed; delete and fav operate on it.
	feed []models.FeedItem
	// favorites is a cosmetic per-run toggle, never persisted.
	favorites map[string]bool
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(repos.Metadata)

	clientID, err := store.ClientID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving client id: %w", err)
	}

	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, clientID)

	as := services.NewAuthService(apiClient, store, log)
	ps := services.NewPostService(apiClient, store, repos.Posts, repos.DB, log)

	a := &App{
		config:      c,
		authService: as,
		postService: ps,
		repos:       repos,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		favorites:   make(map[string]bool),
	}
	a.refreshIdentity(ctx)
	return a, nil
}

// refreshIdentity re-reads the stored credential after an auth state change.
func (a *App) refreshIdentity(ctx context.Context) {
	a.loggedIn = a.authService.IsLoggedIn(ctx)
	a.userName = a.authService.CurrentUsername(ctx)
}

func (a *App) Run(ctx context.Context) {
	defer a.repos.DB.Close()

	fmt.Fprintln(a.out, "Welcome to the blog CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	if a.loggedIn {
		return "(logged in)"
	}
	return ""
}
