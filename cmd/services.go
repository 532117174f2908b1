package main

import (
	"sharecart/internal/config"
	"sharecart/internal/expiration"
	"sharecart/internal/sharing"
	"sharecart/internal/token"
	"sharecart/pkg/clock"
	"sharecart/pkg/storage/postgres"
)

// services is the dependency graph shared by the serve and expire commands.
type services struct {
	sharing sharing.Sharing
	scanner expiration.Scanner
	expirer expiration.Expirer
}

func newServices(cfg *config.Config, strg *postgres.PgSQL) services {
	clk := clock.System{}
	policies := expiration.NewStoragePolicies(strg)
	tokens := token.New(token.StaticSecret(cfg.Sharing.Secret))

	return services{
		sharing: sharing.New(clk,
			sharing.NewGuard(clk, policies, tokens),
			strg,
			sharing.NewOptions(cfg)),
		scanner: expiration.NewScanner(clk,
			policies,
			strg,
			expiration.NewJobQueue(strg, cfg.Expiration.MaxAttempts),
			expiration.NewOptions(cfg)),
		expirer: expiration.NewExpirer(clk, policies, strg),
	}
}
