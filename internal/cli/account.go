package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountCmd(b backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account administration",
	}
	cmd.AddCommand(newAccountPromoteCmd(b))
	return cmd
}

func newAccountPromoteCmd(b backend) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Give an existing account the Admin role",
		Long:  "Promotes the account with the given email to Admin. Used to bootstrap the first administrator.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd, b)
			if err != nil {
				return err
			}

			_, svc, closeFn, err := b.connect(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeFn()

			acc, err := svc.Promote(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("promote %q: %w", email, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %q (%s) promoted to admin.\n", acc.Email, acc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the account to promote")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
