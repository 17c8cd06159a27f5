package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aidenliw/msl-mohawk/internal/auth"
	"github.com/aidenliw/msl-mohawk/internal/domain"
)

func newTokenCmd(b backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token utilities",
	}
	cmd.AddCommand(newTokenIssueCmd(b))
	return cmd
}

func newTokenIssueCmd(b backend) *cobra.Command {
	var (
		userID    string
		role      string
		studentID int
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Mint a signed access token",
		Long:  "Mints an access token signed with auth.jwt_secret. Sign-in normally happens in the identity service; this is for operators and API testing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := setup(cmd, b)
			if err != nil {
				return err
			}

			id := uuid.New()
			if userID != "" {
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("--user-id: %w", err)
				}
			}
			if role != string(domain.RoleAdmin) && role != string(domain.RoleStudent) {
				return fmt.Errorf("--role must be %s or %s (got %q)", domain.RoleAdmin, domain.RoleStudent, role)
			}
			if studentID < 0 || studentID >= domain.StudentIDLimit {
				return fmt.Errorf("--student-id must be between 0 and %d", domain.StudentIDLimit-1)
			}

			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(auth.Identity{UserID: id, Role: role, StudentID: studentID})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "account id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleStudent), "Admin or Student")
	cmd.Flags().IntVar(&studentID, "student-id", 0, "student number carried by the token")

	return cmd
}
