package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func participantsCmd() *cobra.Command {
	var submissionID int64

	cmd := &cobra.Command{
		Use:   "participants",
		Short: "Print the stage assignments of a submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				participants, err := a.services.Participants().List(cmd.Context(), submissionID)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "STAGE\tROLE\tUSER\tNAME\tRECOMMEND_ONLY\tCAN_CHANGE_METADATA\tASSIGNED_AT")
				for _, p := range participants {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%t\t%t\t%s\n",
						p.Stage, p.Role, p.UserID, p.UserName,
						p.RecommendOnly, p.CanChangeMetadata, p.AssignedAt.Format("2006-01-02 15:04"))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().Int64Var(&submissionID, "submission", 0, "submission id")
	_ = cmd.MarkFlagRequired("submission")

	return cmd
}
