package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"datawise-backend/internal/config"
	"datawise-backend/internal/database"
	"datawise-backend/internal/logger"
	"datawise-backend/internal/notification"
	"datawise-backend/internal/repository"
	"datawise-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// seedFile is the optional YAML input of the seeding tool
type seedFile struct {
	Admin service.SeedAdminRequest `yaml:"admin"`
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the root tenant and its first admin",
		Long: `Create a tenant and an active admin principal in one transaction, then
mail the credentials to the admin.

Values given as flags override the ones read from --file. When no password is
given a random one is generated; it is printed only if the welcome email could
not be sent.

Example:
  go run ./scripts --email adm@datawiseservice.com --password 'S3cret!pass'
  go run ./scripts --file scripts/data/seed.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(cmd)
			if err != nil {
				return err
			}
			skipEmail, _ := cmd.Flags().GetBool("skip-email")
			attempts, _ := cmd.Flags().GetInt("db-attempts")
			return run(cmd.Context(), req, skipEmail, attempts)
		},
	}

	cmd.Flags().StringP("file", "f", "", "YAML seed file")
	cmd.Flags().StringP("email", "e", "", "Admin email")
	cmd.Flags().StringP("password", "p", "", "Admin password (generated when empty)")
	cmd.Flags().StringP("tenant", "t", "", "Tenant name (default: ROOT)")
	cmd.Flags().String("logo-url", "", "Tenant logo URL")
	cmd.Flags().Bool("skip-email", false, "Do not send the welcome email")
	cmd.Flags().Int("db-attempts", 30, "Database connection attempts, one per second")
	return cmd
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	if err := newSeedCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed admin: %v\n", err)
		os.Exit(1)
	}
}

// buildRequest reads the seed file, if any, and applies flag overrides
func buildRequest(cmd *cobra.Command) (*service.SeedAdminRequest, error) {
	req := &service.SeedAdminRequest{}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		loaded, err := loadSeedFile(path)
		if err != nil {
			return nil, err
		}
		req = loaded
	}

	if v, _ := cmd.Flags().GetString("email"); v != "" {
		req.Email = v
	}
	if v, _ := cmd.Flags().GetString("password"); v != "" {
		req.Password = v
	}
	if v, _ := cmd.Flags().GetString("tenant"); v != "" {
		req.TenantName = v
	}
	if v, _ := cmd.Flags().GetString("logo-url"); v != "" {
		req.LogoURL = &v
	}

	if req.Email == "" {
		return nil, fmt.Errorf("an admin email is required (--email or --file)")
	}
	return req, nil
}

func loadSeedFile(path string) (*service.SeedAdminRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &file.Admin, nil
}

func run(ctx context.Context, req *service.SeedAdminRequest, skipEmail bool, attempts int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, attempts, time.Second)
	if err != nil {
		return err
	}
	defer database.Close(db)

	var sender notification.Sender
	if !skipEmail {
		smtp, err := notification.NewSMTPSender(notification.NewSMTPConfig(cfg))
		if err != nil {
			logrus.WithError(err).Warn("SMTP is not configured, the welcome email will not be sent")
		} else {
			sender = smtp
		}
	}

	bootstrap := service.NewBootstrapService(repository.NewUserRepository(db), sender, service.NewValidator())
	result, err := bootstrap.SeedAdmin(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Tenant: %s\n", result.TenantID)
	fmt.Printf("Admin:  %s (%s)\n", result.Email, result.UserID)
	if result.GeneratedPassword != "" && !result.EmailSent {
		fmt.Printf("Generated password: %s\n", result.GeneratedPassword)
	}
	if !result.EmailSent {
		fmt.Fprintln(os.Stderr, "Welcome email was not sent")
	}
	return nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
