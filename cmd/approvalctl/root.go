package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/core/services"
	"github.com/SscSPs/municipal_approval_app/internal/dto"
	"github.com/SscSPs/municipal_approval_app/internal/notifications"
	"github.com/SscSPs/municipal_approval_app/internal/platform/config"
	"github.com/SscSPs/municipal_approval_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/municipal_approval_app/internal/repositories/memory"
	"github.com/SscSPs/municipal_approval_app/pkg/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the state shared by every subcommand.
type cli struct {
	v   *viper.Viper
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}

	rootCmd := &cobra.Command{
		Use:   "approvalctl",
		Short: "Review and decide municipal approval requests",
		Long: `approvalctl lists, filters and decides approval requests.

It talks to the same PostgreSQL database as the API server. Use --memory to
try the commands against a seeded in-process store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	c.v.SetEnvPrefix("APPROVAL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL URL (defaults to PGSQL_URL)")
	rootCmd.PersistentFlags().Bool("memory", false, "use a seeded in-memory store")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = c.v.BindPFlag("database-url", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = c.v.BindPFlag("memory", rootCmd.PersistentFlags().Lookup("memory"))
	_ = c.v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(
		c.listCmd(),
		c.pendingCmd(),
		c.filterCmd(),
		c.showCmd(),
		c.approveCmd(),
		c.rejectCmd(),
		c.resendCmd(),
		c.municipalitiesCmd(),
		c.migrateCmd(),
	)
	return rootCmd
}

// withServices builds the service container for one command run and releases
// its resources afterwards.
func (c *cli) withServices(ctx context.Context, fn func(context.Context, *portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	composer, err := notifications.NewComposer(notifications.Signature{
		Name:         cfg.EmailSignatureName,
		ContactPhone: cfg.EmailContactPhone,
		ContactEmail: cfg.EmailFrom,
	})
	if err != nil {
		return err
	}
	var notifier portssvc.Notifier = notifications.LogSender{}
	if cfg.SMTPHost != "" {
		notifier = notifications.NewSMTPSender(notifications.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
		})
	}
	collab := services.Collaborators{Notifier: notifier, Composer: composer, Config: cfg}

	if c.v.GetBool("memory") {
		container := services.NewServiceContainer(memory.NewStore().Provider(), collab)
		if err := seedDemo(ctx, container); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		return fn(ctx, container)
	}

	url := c.databaseURL(cfg)
	if url == "" {
		return errors.New("no database configured: set --database-url, APPROVAL_DATABASE_URL or PGSQL_URL, or pass --memory")
	}
	pool, err := database.NewPgxPool(ctx, url)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)
	return fn(ctx, services.NewServiceContainer(pgsql.NewRepositoryProvider(pool), collab))
}

func (c *cli) databaseURL(cfg *config.Config) string {
	if url := c.v.GetString("database-url"); url != "" {
		return url
	}
	return cfg.DatabaseURL
}

func (c *cli) jsonOutput() bool {
	return c.v.GetBool("json")
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printApproval(r dto.ApprovalResponse) error {
	if c.jsonOutput() {
		return c.printJSON(r)
	}
	fmt.Fprintf(c.out, "Request %d: %s (municipality %d, version %d)\n", r.ID, r.Status, r.MunicipalityID, r.Version)
	return nil
}
