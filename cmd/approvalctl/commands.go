package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/dto"
	"github.com/SscSPs/municipal_approval_app/internal/platform/config"
	"github.com/SscSPs/municipal_approval_app/pkg/database"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func parseIDArg(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func (c *cli) renderApprovals(list []domain.ApprovalRequest) error {
	resp := dto.ToListApprovalResponse(list)
	if c.jsonOutput() {
		return c.printJSON(resp)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(c.out)
	tw.AppendHeader(table.Row{"ID", "Municipality", "Status", "Requested", "Decided", "Version"})
	for _, r := range resp {
		tw.AppendRow(table.Row{r.ID, r.MunicipalityID, r.Status, r.RequestedAt.Format(time.DateTime), formatDate(r.DecidedAt), r.Version})
	}
	tw.Render()
	return nil
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every approval request, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				list, err := svc.Approval.ListApprovals(ctx)
				if err != nil {
					return err
				}
				return c.renderApprovals(list)
			})
		},
	}
}

func (c *cli) pendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending <city-id>",
		Short: "List the pending requests of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cityID, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				list, err := svc.Approval.ListPendingApprovalsByCity(ctx, cityID)
				if err != nil {
					return err
				}
				return c.renderApprovals(list)
			})
		},
	}
}

func (c *cli) filterCmd() *cobra.Command {
	var criteria domain.ApprovalFilterCriteria
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter approval requests; every given flag must match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				rows, err := svc.Approval.FilterApprovals(ctx, criteria)
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					return c.printJSON(rows)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(c.out)
				tw.AppendHeader(table.Row{"ID", "City", "UF", "Mayor", "Status", "Requested", "Term"})
				for _, r := range rows {
					term := ""
					if r.TermStart != nil || r.TermEnd != nil {
						term = formatDate(r.TermStart) + " / " + formatDate(r.TermEnd)
					}
					tw.AppendRow(table.Row{r.RequestID, r.CityName, r.StateCode, r.MayorName, r.Status, r.RequestedAt.Format(domain.DateLayout), term})
				}
				tw.AppendFooter(table.Row{"", "", "", "", "", "Total", len(rows)})
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&criteria.SubjectNameContains, "name", "", "city name contains (case-insensitive)")
	cmd.Flags().StringVar(&criteria.Status, "status", "", "Pending, Approved or Rejected")
	cmd.Flags().StringVar(&criteria.TermStartOnOrAfter, "term-start-from", "", "term start on or after (yyyy-MM-dd)")
	cmd.Flags().StringVar(&criteria.TermEndOnOrBefore, "term-end-until", "", "term end on or before (yyyy-MM-dd)")
	cmd.Flags().StringVar(&criteria.RequestedOnExactDate, "requested-on", "", "request date (yyyy-MM-dd)")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <approval-id>",
		Short: "Show one approval request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				r, err := svc.Approval.GetApprovalByID(ctx, id)
				if err != nil {
					return err
				}
				return c.printApproval(dto.ToApprovalResponse(r))
			})
		},
	}
}

func (c *cli) approveCmd() *cobra.Command {
	var termStart, termEnd string
	cmd := &cobra.Command{
		Use:   "approve <approval-id>",
		Short: "Approve a pending request and email the municipality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			start, err := domain.ParseDate(termStart)
			if err != nil {
				return fmt.Errorf("invalid --term-start: %w", err)
			}
			end, err := domain.ParseDate(termEnd)
			if err != nil {
				return fmt.Errorf("invalid --term-end: %w", err)
			}
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				r, err := svc.Approval.Approve(ctx, id, start, end)
				if err != nil {
					return err
				}
				return c.printApproval(dto.ToApprovalResponse(r))
			})
		},
	}
	cmd.Flags().StringVar(&termStart, "term-start", "", "mandate start (yyyy-MM-dd)")
	cmd.Flags().StringVar(&termEnd, "term-end", "", "mandate end (yyyy-MM-dd)")
	_ = cmd.MarkFlagRequired("term-start")
	_ = cmd.MarkFlagRequired("term-end")
	return cmd
}

func (c *cli) rejectCmd() *cobra.Command {
	var justification string
	cmd := &cobra.Command{
		Use:   "reject <approval-id>",
		Short: "Reject a pending request and email the mayor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				r, err := svc.Approval.Reject(ctx, id, justification)
				if err != nil {
					return err
				}
				return c.printApproval(dto.ToApprovalResponse(r))
			})
		},
	}
	cmd.Flags().StringVarP(&justification, "justification", "j", "", "reason shown to the mayor")
	return cmd
}

func (c *cli) resendCmd() *cobra.Command {
	var emails string
	cmd := &cobra.Command{
		Use:   "resend <municipality-id>",
		Short: "Replace the recipients and re-send the approval email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			municipalityID, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if !dto.ValidEmailList(emails) {
				return fmt.Errorf("invalid --emails %q", emails)
			}
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				sent := svc.Approval.ResendApprovalNotification(ctx, municipalityID, emails)
				if c.jsonOutput() {
					return c.printJSON(dto.ResendEmailResponse{Sent: sent})
				}
				if sent {
					fmt.Fprintln(c.out, "Approval email sent.")
				} else {
					fmt.Fprintln(c.out, "Approval email was not sent.")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&emails, "emails", "", "semicolon-separated recipients")
	_ = cmd.MarkFlagRequired("emails")
	return cmd
}

func (c *cli) municipalitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "municipalities",
		Short: "List registered municipalities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				list, err := svc.Municipality.ListMunicipalities(ctx)
				if err != nil {
					return err
				}
				if c.jsonOutput() {
					resp := make([]dto.MunicipalityResponse, 0, len(list))
					for i := range list {
						resp = append(resp, dto.ToMunicipalityResponse(&list[i]))
					}
					return c.printJSON(resp)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(c.out)
				tw.AppendHeader(table.Row{"ID", "City", "Mayor", "Office", "Emails", "Term"})
				for _, m := range list {
					term := ""
					if m.TermStart != nil || m.TermEnd != nil {
						term = formatDate(m.TermStart) + " / " + formatDate(m.TermEnd)
					}
					tw.AppendRow(table.Row{m.ID, m.CityName(), m.MayorName, m.Office, m.Emails, term})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or revert the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.v.GetBool("memory") {
				return errors.New("migrate needs a database, not --memory")
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			url := c.databaseURL(cfg)
			if url == "" {
				return errors.New("no database configured: set --database-url, APPROVAL_DATABASE_URL or PGSQL_URL")
			}
			changed, err := database.RunMigrations(url, cfg.MigrationsPath, database.MigrationDirection(args[0]))
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(c.out, "Migrations applied (%s).\n", args[0])
			} else {
				fmt.Fprintln(c.out, "No migrations to apply.")
			}
			return nil
		},
	}
}
