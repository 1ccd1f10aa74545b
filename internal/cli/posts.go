package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	late "github.com/kbukum/late-go"
	"github.com/kbukum/late-go/util"
)

func (a *app) postsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List and manage posts",
	}
	cmd.AddCommand(a.postsListCmd(), a.postsGetCmd(), a.postsDeleteCmd(), a.postsRetryCmd())
	return cmd
}

func (a *app) postsListCmd() *cobra.Command {
	var params late.ListPostsParams
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List posts",
		Example: "  late posts list --status scheduled --limit 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			page, err := c.Posts.List(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if asJSON {
				return a.printJSON(page)
			}
			w := tabwriter.NewWriter(a.env.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tSCHEDULED\tPLATFORMS\tCONTENT")
			for _, p := range page.Posts {
				scheduled := "-"
				if p.ScheduledFor != nil {
					scheduled = p.ScheduledFor.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Status, scheduled, len(p.Platforms), truncate(p.Content, 40))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			pg := page.Pagination
			if pg.Pages > 0 {
				fmt.Fprintf(a.env.Stdout, "page %d of %d (%d posts)\n", pg.Page, pg.Pages, pg.Total)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&params.Status, "status", "", "filter by status")
	f.StringVar(&params.Platform, "platform", "", "filter by platform")
	f.StringVar(&params.ProfileID, "profile", "", "filter by profile id")
	f.IntVar(&params.Page, "page", 0, "page number")
	f.IntVar(&params.Limit, "limit", 0, "page size")
	f.BoolVar(&asJSON, "json", false, "print the raw response")
	return cmd
}

func (a *app) postsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <post-id>",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			res, err := c.Posts.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(res.Post)
		},
	}
}

func (a *app) postsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			res, err := c.Posts.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.env.Stdout, util.Coalesce(res.Message, "deleted "+args[0]))
			return nil
		},
	}
}

func (a *app) postsRetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry <post-id>",
		Short: "Retry publishing a failed post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			res, err := c.Posts.Retry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.env.Stdout, "%s: %s\n", res.Post.ID, res.Post.Status)
			return nil
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
