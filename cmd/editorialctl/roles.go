package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"journalflow.app/editorial/internal/model"
)

func rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Grant, revoke and list journal roles",
	}

	var journalID, userID int64
	var role string

	list := &cobra.Command{
		Use:   "list",
		Short: "List users holding roles in a journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				users, err := a.services.JournalRoles().List(cmd.Context(), operator, journalID)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "USER\tNAME\tEMAIL\tROLES")
				for _, u := range users {
					names := make([]string, 0, len(u.Roles))
					for _, g := range u.Roles {
						names = append(names, string(g.Role))
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.UserID, u.Name, u.Email, strings.Join(names, ","))
				}
				return tw.Flush()
			})
		},
	}
	list.Flags().Int64Var(&journalID, "journal", 0, "journal id")
	_ = list.MarkFlagRequired("journal")

	grant := &cobra.Command{
		Use:   "grant",
		Short: "Grant a journal role to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := model.ParseJournalRole(role)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				assignment, err := a.services.JournalRoles().Add(cmd.Context(), operator, journalID, userID, r)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "granted %s to user %d in journal %d\n",
					assignment.Role, assignment.UserID, assignment.JournalID)
				return nil
			})
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a journal role from a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := model.ParseJournalRole(role)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				if err := a.services.JournalRoles().Remove(cmd.Context(), operator, journalID, userID, r); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "revoked %s from user %d in journal %d\n", r, userID, journalID)
				return nil
			})
		},
	}

	for _, c := range []*cobra.Command{grant, revoke} {
		c.Flags().Int64Var(&journalID, "journal", 0, "journal id")
		c.Flags().Int64Var(&userID, "user", 0, "user id")
		c.Flags().StringVar(&role, "role", "", "journal role")
		_ = c.MarkFlagRequired("journal")
		_ = c.MarkFlagRequired("user")
		_ = c.MarkFlagRequired("role")
	}

	cmd.AddCommand(list, grant, revoke)
	return cmd
}
