package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	late "github.com/kbukum/late-go"
)

func (a *app) accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect connected social accounts",
	}
	cmd.AddCommand(a.accountsListCmd(), a.accountsHealthCmd())
	return cmd
}

func (a *app) accountsListCmd() *cobra.Command {
	var params late.ListAccountsParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connected accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			accounts, err := c.Accounts.List(cmd.Context(), &params)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(a.env.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLATFORM\tUSERNAME\tACTIVE")
			for _, acc := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", acc.ID, acc.Platform, acc.Username, acc.IsActive)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&params.ProfileID, "profile", "", "filter by profile id")
	cmd.Flags().StringVar(&params.Platform, "platform", "", "filter by platform")
	return cmd
}

func (a *app) accountsHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health [account-id]",
		Short: "Show whether accounts can still publish",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				h, err := c.Accounts.GetHealth(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.printJSON(h)
			}
			all, err := c.Accounts.GetAllHealth(cmd.Context())
			if err != nil {
				return err
			}
			s := all.Summary
			fmt.Fprintf(a.env.Stdout, "%d accounts: %d healthy, %d warning, %d error, %d need reconnect\n",
				s.Total, s.Healthy, s.Warning, s.Error, s.NeedsReconnect)
			w := tabwriter.NewWriter(a.env.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLATFORM\tUSERNAME\tSTATUS\tCAN POST")
			for _, h := range all.Accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", h.AccountID, h.Platform, h.Username, h.Status, h.CanPost)
			}
			return w.Flush()
		},
	}
}
