// Command admin runs one-off maintenance tasks against the newsdesk database.
//
//	admin create-user --email a@example.com --password secret --role editor
//	admin delete-articles --id 3 --id 7
//	admin export --out snapshot.yaml
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	adminUC "newsdesk/internal/usecase/admin"
	aucUC "newsdesk/internal/usecase/auction"
	envcfg "newsdesk/pkg/config"
)

// env is what every subcommand runs against. It is filled by the parser's
// command handler so that --help never touches the database.
type env struct {
	ctx    context.Context
	db     *sql.DB
	svc    *adminUC.Service
	out    io.Writer
	logger *slog.Logger
}

var app env

type options struct {
	CreateUser        createUserCmd        `command:"create-user" description:"Create an admin user, or reset an existing one"`
	ListUsers         listUsersCmd         `command:"list-users" description:"Print users"`
	SeedCategories    seedCategoriesCmd    `command:"seed-categories" description:"Insert the default categories if missing"`
	ResetArticleFlags resetArticleFlagsCmd `command:"reset-article-flags" description:"Clear breaking and featured flags on all articles"`
	DeleteArticles    deleteArticlesCmd    `command:"delete-articles" description:"Hard-delete articles by id"`
	PurgeAuctions     purgeAuctionsCmd     `command:"purge-auctions" description:"Delete all auctions and their bids"`
	CloseAuctions     closeAuctionsCmd     `command:"close-auctions" description:"End every auction past its end time"`
	Stats             statsCmd             `command:"stats" description:"Print row counts"`
	Export            exportCmd            `command:"export" description:"Dump content to a JSON or YAML file"`
	Import            importCmd            `command:"import" description:"Load a JSON or YAML dump in one transaction"`
	Migrate           migrateCmd           `command:"migrate" description:"Apply pending migrations, or roll back with --down"`
}

func newParser(opts *options) *flags.Parser {
	p := flags.NewParser(opts, flags.Default)
	p.ShortDescription = "newsdesk maintenance"
	return p
}

func main() {
	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts options
	parser := newParser(&opts)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		closeDB, err := connect(ctx, logger)
		if err != nil {
			return err
		}
		defer closeDB()
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		// go-flags は自前のエラーを既に表示している
		if flagsErr == nil {
			logger.Error("command failed", slog.Any("error", err))
		}
		os.Exit(1)
	}
}

// connect opens the database and fills app. The returned func closes it.
func connect(ctx context.Context, logger *slog.Logger) (func(), error) {
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database, err := db.Open(openCtx)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	closer := &aucUC.Service{Repo: pgRepo.NewAuctionRepo(database)}
	app = env{
		ctx: ctx,
		db:  database,
		svc: &adminUC.Service{
			Users:      pgRepo.NewUserRepo(database),
			Categories: pgRepo.NewCategoryRepo(database),
			Articles:   pgRepo.NewArticleRepo(database),
			Auctions:   pgRepo.NewAuctionRepo(database),
			Snapshots:  pgRepo.NewSnapshotRepo(database),
			Closer:     closer,
			BcryptCost: envcfg.GetEnvInt("BCRYPT_COST", 10),
			Logger:     logger,
		},
		out:    os.Stdout,
		logger: logger,
	}
	return func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}, nil
}
