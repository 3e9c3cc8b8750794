// Command clubctl runs maintenance tasks against the club database.
//
//	clubctl refresh-movies [-limit N] [-sleep 250ms] [-dry-run]
//	clubctl add-user <username>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/config"
	"movieclub-backend/internal/database"
	applog "movieclub-backend/internal/logger"
	"movieclub-backend/internal/repository"
	"movieclub-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	loadEnvFile()

	cfg := config.Load()
	log := applog.New(cfg.Log, os.Getenv("GO_ENV"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "refresh-movies":
		err = refreshMovies(ctx, cfg, log, os.Args[2:])
	case "add-user":
		err = addUser(ctx, cfg, log, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Error(os.Args[1] + " failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: clubctl refresh-movies [-limit N] [-sleep DURATION] [-dry-run]")
	fmt.Fprintln(os.Stderr, "       clubctl add-user <username>")
}

func refreshMovies(ctx context.Context, cfg *config.Config, log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("refresh-movies", flag.ExitOnError)
	limit := fs.Int("limit", 0, "refresh at most N movies (0 = all)")
	sleep := fs.Duration("sleep", cfg.Refresh.Delay, "minimum delay between TMDB requests")
	dryRun := fs.Bool("dry-run", false, "report changes without writing them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	movieService := services.NewMovieService(repository.NewMovieRepository(db), catalog.NewTMDBClient(cfg.TMDB), nil, log)
	report, err := movieService.RefreshFromTMDB(ctx, services.RefreshOptions{
		Limit:  *limit,
		Delay:  *sleep,
		DryRun: *dryRun,
	})
	if errors.Is(err, catalog.ErrNotConfigured) {
		fmt.Println("TMDB_API_KEY is not set.")
		return err
	}
	if err != nil {
		return err
	}

	for _, change := range report.Changes {
		for _, f := range change.Changes {
			fmt.Printf("%s (tmdb %d): %s %v -> %v\n", change.Title, change.TMDBID, f.Field, f.From, f.To)
		}
	}
	fmt.Printf("Done. Processed=%d, Failed=%d\n", report.Processed, report.Failed)
	return nil
}

func addUser(ctx context.Context, cfg *config.Config, log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("add-user", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	userService := services.NewUserService(repository.NewUserRepository(db), log)
	user, token, err := userService.CreateUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (id %d)\n", user.Username, user.ID)
	fmt.Printf("Token: %s\n", token)
	return nil
}

// loadEnvFile reads envs/.env.<GO_ENV>, falling back to envs/.env, the same
// files the server reads. Missing files are fine when the environment is
// already set.
func loadEnvFile() {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}
	if err := godotenv.Load(filepath.Join("envs", ".env."+env)); err != nil {
		_ = godotenv.Load(filepath.Join("envs", ".env"))
	}
}
