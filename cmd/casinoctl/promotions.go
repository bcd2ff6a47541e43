package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newPromotionsCmd() *cobra.Command {
	promotions := &cobra.Command{
		Use:   "promotions",
		Short: "Inspect promotions and issue one-time codes",
	}
	promotions.AddCommand(newPromotionsListCmd(), newCodesGenerateCmd())
	return promotions
}

func newPromotionsListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List promotions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				list, err := a.promotions.ListPromotions(cmd.Context(), !all)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					neutral.Fprintln(cmd.OutOrStdout(), "no promotions")
					return nil
				}
				printPromotions(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include inactive and expired promotions")
	return cmd
}

func newCodesGenerateCmd() *cobra.Command {
	var (
		count  int
		prefix string
		output string
	)
	cmd := &cobra.Command{
		Use:   "codes <promotion-id>",
		Short: "Generate one-time codes for a promotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			promotionID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid promotion id: %w", err)
			}

			return withApp(cmd.Context(), func(a *app) error {
				codes, err := a.promotions.GenerateCodes(cmd.Context(), promotionID, count, prefix)
				if err != nil {
					return err
				}

				if output != "" {
					if err := os.WriteFile(output, []byte(strings.Join(codes, "\n")+"\n"), 0o600); err != nil {
						return fmt.Errorf("write codes: %w", err)
					}
					success.Fprintf(cmd.OutOrStdout(), "%d codes written to %s\n", len(codes), output)
					return nil
				}

				for _, c := range codes {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				success.Fprintf(cmd.ErrOrStderr(), "%d codes generated\n", len(codes))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of codes")
	cmd.Flags().StringVar(&prefix, "prefix", "", "code prefix, upper-cased")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write codes to this file instead of stdout")
	return cmd
}
