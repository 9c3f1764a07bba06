// Command campusgate-admin provisions identities out of band. The auth
// core never creates accounts; this tool is the supported write path.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/campusgate/campusgate/internal/adapters/password"
	"github.com/campusgate/campusgate/internal/bootstrap"
	"github.com/campusgate/campusgate/internal/data"
	domainauth "github.com/campusgate/campusgate/internal/domain/auth"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger, os.Args[1:]); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: campusgate-admin <useradd|userdel|list> [flags]")
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig:    cfg.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	if migErr := bootstrap.RunMigrations(ctx, db, bootstrap.DatabaseConfig{DBConfig: cfg.Postgres, Logger: logger}); migErr != nil {
		return migErr
	}

	repo := data.NewIdentityRepo(db)

	switch args[0] {
	case "useradd":
		return userAdd(ctx, repo, cfg.Auth.BcryptCost, args[1:])
	case "userdel":
		return userDel(ctx, repo, args[1:])
	case "list":
		return userList(ctx, repo, args[1:])
	default:
		return fmt.Errorf("unknown command: %q", args[0])
	}
}

func userAdd(ctx context.Context, repo *data.IdentityRepo, bcryptCost int, args []string) error {
	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	email := fs.String("email", "", "email address (unique, case-insensitive)")
	pass := fs.String("password", "", "plaintext password to hash")
	name := fs.String("name", "", "display name")
	roleStr := fs.String("role", "", "role: student, teacher, or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *pass == "" || *name == "" || *roleStr == "" {
		return errors.New("useradd requires -email, -password, -name, and -role")
	}

	role, err := domainauth.ParseRole(*roleStr)
	if err != nil {
		return err
	}

	hash, err := password.New(bcryptCost).Hash(*pass)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	created, err := repo.Create(ctx, domainauth.Identity{
		Email:        *email,
		PasswordHash: hash,
		DisplayName:  *name,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, data.ErrEmailExists) {
			return fmt.Errorf("email %q is already registered", *email)
		}
		return err
	}

	fmt.Printf("created %s (%s) id=%s\n", created.Email, created.Role, created.ID)
	return nil
}

func userDel(ctx context.Context, repo *data.IdentityRepo, args []string) error {
	fs := flag.NewFlagSet("userdel", flag.ContinueOnError)
	id := fs.String("id", "", "identity ID to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("userdel requires -id")
	}

	if err := repo.Delete(ctx, *id); err != nil {
		if errors.Is(err, data.ErrIdentityNotFound) {
			return fmt.Errorf("no identity with id %q", *id)
		}
		return err
	}

	fmt.Printf("deleted %s\n", *id)
	return nil
}

func userList(ctx context.Context, repo *data.IdentityRepo, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	limit := fs.Int("limit", 100, "maximum rows to print")
	offset := fs.Int("offset", 0, "rows to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	identities, err := repo.List(ctx, *limit, *offset)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE")
	for _, ident := range identities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ident.ID, ident.Email, ident.DisplayName, ident.Role)
	}
	return w.Flush()
}
