package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/photom/photom/internal/cliconfig"
	"github.com/photom/photom/internal/output"
)

func newAccountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and delete stored accounts",
	}
	cmd.AddCommand(newAccountsListCmd(a), newAccountsDeleteCmd(a))
	return cmd
}

func newAccountsListCmd(a *app) *cobra.Command {
	var opts output.JSONOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := a.client.ListAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}
			a.log.Debug().Int("count", len(accounts)).Msg("listed accounts")

			if a.cfg.Output == cliconfig.OutputTable {
				output.Accounts(a.out, accounts)
				return nil
			}
			return output.JSON(a.out, accounts, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "gjson path to print instead of the whole list")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "print JSON on one line")
	return cmd
}

func newAccountsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <email>",
		Short: "Delete the account for an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			resp, err := a.client.DeleteAccount(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("delete account: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			a.log.Debug().Str("email", email).Int("status", resp.StatusCode).Msg("delete response")

			if resp.StatusCode/100 != 2 {
				return fmt.Errorf("delete %s: server returned %d: %s", email, resp.StatusCode, string(body))
			}
			fmt.Fprintf(a.out, "deleted %s (%d)\n", email, resp.StatusCode)
			return nil
		},
	}
}
