package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/domus-inc/domus/internal/infrastructure/cache"
	"github.com/domus-inc/domus/internal/infrastructure/config"
	"github.com/domus-inc/domus/internal/shared/logger"
)

var (
	env    string
	userID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Cache maintenance tools",
		Long:  `Inspect and flush cached state. Roles edited directly in the profile store stay cached until their TTL expires unless flushed here.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newFlushRoleCommand())

	return cmd
}

func newFlushRoleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flush-role",
		Short: "Drop a user's cached role",
		RunE:  runFlushRole,
	}

	cmd.Flags().UintVar(&userID, "user-id", 0, "User whose cached role should be dropped")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func runFlushRole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	roleCache := cache.NewRedisRoleCache(client, cache.DefaultRoleTTL)
	if err := roleCache.Invalidate(ctx, userID); err != nil {
		return err
	}

	log.Infow("cached role dropped", "user_id", userID)
	return nil
}
