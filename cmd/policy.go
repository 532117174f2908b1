package main

import (
	"context"
	"fmt"
	"os"
	"sharecart/internal/config"
	"sharecart/pkg/domain"
	"sharecart/pkg/logger"
	"sharecart/pkg/storage/postgres"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// policyCommand groups the subcommands managing per order type expiration
// and claim settings.
func policyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Manages shared cart expiration per order type",
	}

	cmd.AddCommand(
		policyListCommand(cfg),
		policySetCommand(cfg),
		policyClearCommand(cfg),
	)

	return cmd
}

func policyListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists order types with their expiration policy",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			orderTypes, err := strg.OrderTypes(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list order types", zap.Error(err))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tLABEL\tEXPIRATION\tDELETE CLAIMED ITEMS\tDELETE SHARED CART")
			for _, ot := range orderTypes {
				expiration := "never"
				if ot.Expiration != nil {
					expiration = ot.Expiration.String()
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\n",
					ot.ID, ot.Label, expiration, ot.Claim.DeleteClaimedItems, ot.Claim.DeleteSharedCart)
			}
			_ = w.Flush()
		},
	}
}

func policySetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set ORDER_TYPE",
		Short: "Creates or updates an order type and its expiration policy",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			count, _ := cmd.Flags().GetInt("count")
			unit, _ := cmd.Flags().GetString("unit")
			policy := domain.ExpirationPolicy{Count: count, Unit: domain.IntervalUnit(unit)}
			if err := policy.Validate(); err != nil {
				logger.Fatal(ctx, "invalid expiration policy", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ot := loadOrderType(ctx, strg, args[0])
			ot.Expiration = &policy
			applyOrderTypeFlags(cmd, ot)

			storeOrderType(ctx, strg, ot)
		},
	}

	cmd.Flags().Int("count", 0, "Number of units a shared cart may stay unchanged")
	cmd.Flags().String("unit", string(domain.IntervalUnitDay), "Interval unit (day, week, month, year)")
	addOrderTypeFlags(cmd)
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func policyClearCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear ORDER_TYPE",
		Short: "Removes the expiration policy, shared carts of the type never expire",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ot := loadOrderType(ctx, strg, args[0])
			ot.Expiration = nil
			applyOrderTypeFlags(cmd, ot)

			storeOrderType(ctx, strg, ot)
		},
	}

	addOrderTypeFlags(cmd)

	return cmd
}

func addOrderTypeFlags(cmd *cobra.Command) {
	cmd.Flags().String("label", "", "Order type label (defaults to the ID for new types)")
	cmd.Flags().Bool("delete-claimed-items", false, "Remove claimed items from the shared cart")
	cmd.Flags().Bool("delete-shared-cart", false, "Delete the shared cart once it was claimed")
}

// applyOrderTypeFlags overrides only the flags given on the command line.
func applyOrderTypeFlags(cmd *cobra.Command, ot *domain.OrderType) {
	if cmd.Flags().Changed("label") {
		ot.Label, _ = cmd.Flags().GetString("label")
	}
	if cmd.Flags().Changed("delete-claimed-items") {
		ot.Claim.DeleteClaimedItems, _ = cmd.Flags().GetBool("delete-claimed-items")
	}
	if cmd.Flags().Changed("delete-shared-cart") {
		ot.Claim.DeleteSharedCart, _ = cmd.Flags().GetBool("delete-shared-cart")
	}
}

func loadOrderType(ctx context.Context, strg *postgres.PgSQL, id string) *domain.OrderType {
	ot, err := strg.OrderTypeByID(ctx, id)
	if err != nil {
		logger.Fatal(ctx, "could not load order type", zap.String("order_type", id), zap.Error(err))
	}
	if ot == nil {
		ot = &domain.OrderType{ID: id, Label: id}
	}

	return ot
}

func storeOrderType(ctx context.Context, strg *postgres.PgSQL, ot *domain.OrderType) {
	stored, err := strg.StoreOrderType(ctx, *ot)
	if err != nil {
		logger.Fatal(ctx, "could not store order type", zap.String("order_type", ot.ID), zap.Error(err))
	}

	expiration := "never"
	if stored.Expiration != nil {
		expiration = stored.Expiration.String()
	}
	logger.Info(ctx, "stored order type",
		zap.String("order_type", stored.ID),
		zap.String("expiration", expiration),
		zap.Bool("delete_claimed_items", stored.Claim.DeleteClaimedItems),
		zap.Bool("delete_shared_cart", stored.Claim.DeleteSharedCart))
}
