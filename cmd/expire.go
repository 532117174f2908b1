package main

import (
	"context"
	"sharecart/internal/config"
	"sharecart/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// expireCommand runs a single expiration scan. Found carts are enqueued for
// the workers of a running serve command; nothing is deleted here.
func expireCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Scans for stale shared carts once and enqueues them for deletion",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			stopTracing := setupTracing(ctx, cfg)
			defer stopTracing(ctx)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := newServices(cfg, strg).scanner.Scan(ctx)
			if err != nil {
				logger.Fatal(ctx, "expiration scan failed", zap.Error(err))
			}

			logger.Info(ctx, "expiration scan finished",
				zap.Int("order_types", report.OrderTypes),
				zap.Int("candidates", report.Candidates),
				zap.Int("batches", report.Batches))
		},
	}

	return cmd
}
