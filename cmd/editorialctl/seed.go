package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"journalflow.app/editorial/common"
	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/internal/model"
)

func journalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journals",
		Short: "Manage journals",
	}

	var name, path, acronym string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				derived, err := common.JournalPath(name, acronym)
				if err != nil {
					return err
				}
				path = derived
			}
			return withApp(cmd.Context(), func(a *app) error {
				journal := &model.Journal{ID: id.New(), Name: name, Path: path}
				if err := a.stores.Journals().Create(cmd.Context(), journal); err != nil {
					return fmt.Errorf("creating journal: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "journal %d created at /%s\n", journal.ID, journal.Path)
				return nil
			})
		},
	}
	create.Flags().StringVar(&name, "name", "", "journal name")
	create.Flags().StringVar(&path, "path", "", "URL path segment (derived from name when empty)")
	create.Flags().StringVar(&acronym, "acronym", "", "fallback used to derive the path")
	_ = create.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List journals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				journals, err := a.stores.Journals().List(cmd.Context())
				if err != nil {
					return fmt.Errorf("listing journals: %w", err)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tPATH\tNAME")
				for _, j := range journals {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", j.ID, j.Path, j.Name)
				}
				return tw.Flush()
			})
		},
	}

	cmd.AddCommand(create, list)
	return cmd
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	var name, email string
	var siteAdmin bool
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a user ahead of their first login",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				user := &model.User{ID: id.New(), Name: name, Email: email, IsSiteAdmin: siteAdmin}
				if err := a.stores.Users().Create(cmd.Context(), user); err != nil {
					return fmt.Errorf("creating user: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %d created for %s\n", user.ID, user.Email)
				return nil
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "display name")
	add.Flags().StringVar(&email, "email", "", "login email")
	add.Flags().BoolVar(&siteAdmin, "site-admin", false, "grant site administrator rights")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("email")

	cmd.AddCommand(add)
	return cmd
}

func submissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "Manage submissions",
	}

	var journalID int64
	var title, stage string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := model.ParseStage(stage)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				sub := &model.Submission{ID: id.New(), JournalID: journalID, Title: title, CurrentStage: current}
				if err := a.stores.Submissions().Create(cmd.Context(), sub); err != nil {
					return fmt.Errorf("creating submission: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "submission %d created in journal %d at %s\n", sub.ID, sub.JournalID, sub.CurrentStage)
				return nil
			})
		},
	}
	create.Flags().Int64Var(&journalID, "journal", 0, "journal id")
	create.Flags().StringVar(&title, "title", "", "manuscript title")
	create.Flags().StringVar(&stage, "stage", string(model.StageSubmission), "current workflow stage")
	_ = create.MarkFlagRequired("journal")
	_ = create.MarkFlagRequired("title")

	cmd.AddCommand(create)
	return cmd
}
