package main

import (
	"fmt"

	"casino-backend/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newDepositsCmd() *cobra.Command {
	deposits := &cobra.Command{
		Use:   "deposits",
		Short: "Review and settle deposits",
	}
	deposits.AddCommand(
		newDepositsListCmd(),
		newDepositsApproveCmd(),
		newDepositsRejectCmd(),
		newDepositsExpireCmd(),
	)
	return deposits
}

func newDepositsListCmd() *cobra.Command {
	var (
		status string
		limit  int
		offset int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deposits, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *model.TransactionStatus
			if status != "" {
				s, err := model.ParseTransactionStatus(status)
				if err != nil {
					return fmt.Errorf("%w: %s", err, status)
				}
				filter = &s
			}

			return withApp(cmd.Context(), func(a *app) error {
				resp, err := a.deposits.ListDeposits(cmd.Context(), filter, limit, offset)
				if err != nil {
					return err
				}
				printDeposits(cmd.OutOrStdout(), resp.Transactions)
				neutral.Fprintf(cmd.OutOrStdout(), "%d of %d\n", len(resp.Transactions), resp.Total)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "awaiting_payment, pending, approved or rejected")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	return cmd
}

func parseSettleArgs(id, admin string) (uuid.UUID, uuid.UUID, error) {
	depositID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid deposit id: %w", err)
	}
	adminID, err := uuid.Parse(admin)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("--admin must be the operator's user id: %w", err)
	}
	return depositID, adminID, nil
}

func newDepositsApproveCmd() *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "approve <deposit-id>",
		Short: "Approve a deposit and credit the player, including any promotion bonus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depositID, adminID, err := parseSettleArgs(args[0], admin)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				result, err := a.deposits.ApproveDeposit(cmd.Context(), depositID, adminID)
				if err != nil {
					return err
				}
				printSettlement(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "operator user id recorded as approver")
	_ = cmd.MarkFlagRequired("admin")
	return cmd
}

func newDepositsRejectCmd() *cobra.Command {
	var admin, note string
	cmd := &cobra.Command{
		Use:   "reject <deposit-id>",
		Short: "Reject a deposit without crediting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depositID, adminID, err := parseSettleArgs(args[0], admin)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				result, err := a.deposits.RejectDeposit(cmd.Context(), depositID, adminID, note)
				if err != nil {
					return err
				}
				printSettlement(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "operator user id recorded on the deposit")
	cmd.Flags().StringVar(&note, "note", "", "reason shown to the player")
	_ = cmd.MarkFlagRequired("admin")
	return cmd
}

func newDepositsExpireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire",
		Short: "Run one pass of the payment link expiry job",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				n, err := a.expiry.ExpireStaleDeposits(cmd.Context())
				if err != nil {
					return err
				}
				if n == 0 {
					neutral.Fprintln(cmd.OutOrStdout(), "no stale deposits")
					return nil
				}
				warn.Fprintf(cmd.OutOrStdout(), "expired %d deposit(s)\n", n)
				return nil
			})
		},
	}
}
