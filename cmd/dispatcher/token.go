package main

import (
	"errors"
	"fmt"

	"webhook-dispatcher/config"
	"webhook-dispatcher/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var cmdIssueToken = &cobra.Command{
	Use:   "issue-token",
	Short: "issue a management API bearer token for a team",
	RunE: func(c *cobra.Command, args []string) error {
		return issueToken(c)
	},
}

type issueTokenOptions struct {
	teamID string
}

var issueTokenOpts issueTokenOptions

func init() {
	flags := cmdIssueToken.Flags()

	flags.StringVar(&issueTokenOpts.teamID, "team", "", "team id (uuid)")

	if err := cmdIssueToken.MarkFlagRequired("team"); err != nil {
		panic(err)
	}

	cmdDispatcher.AddCommand(cmdIssueToken)
}

func issueToken(c *cobra.Command) error {
	teamID, err := uuid.Parse(issueTokenOpts.teamID)
	if err != nil {
		return fmt.Errorf("invalid team id: %w", err)
	}

	cfg, err := config.Load(rootOpts.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer).Generate(teamID)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), token)
	fmt.Fprintf(c.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format("2006-01-02T15:04:05Z"))
	return nil
}
