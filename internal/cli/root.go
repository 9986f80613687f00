package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/lautaroCastilloJ/storefront/internal/api"
	"github.com/lautaroCastilloJ/storefront/internal/cart"
	"github.com/lautaroCastilloJ/storefront/internal/config"
	"github.com/lautaroCastilloJ/storefront/internal/session"
	"github.com/lautaroCastilloJ/storefront/internal/storage"
)

// NewRootCommand creates the root command for the storefront CLI.
func NewRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Command-line storefront for the commerce API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	cmd.AddCommand(newLoginCommand(&configPath))
	cmd.AddCommand(newLogoutCommand(&configPath))
	cmd.AddCommand(newWhoamiCommand(&configPath))
	cmd.AddCommand(newRegisterCommand(&configPath))
	cmd.AddCommand(newProductsCommand(&configPath))
	cmd.AddCommand(newCartCommand(&configPath))
	cmd.AddCommand(newCheckoutCommand(&configPath))
	cmd.AddCommand(newOrdersCommand(&configPath))
	cmd.AddCommand(newMockServerCommand())

	return cmd
}

// app is the composition root: config, storage, the two stores, and the
// API client, wired together the way the web client wired its providers.
type app struct {
	cfg     config.Config
	storage storage.Store
	session *session.Store
	cart    *cart.Store
	api     *api.Client
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var st storage.Store
	switch cfg.Storage {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}
		st = storage.NewRedisStore(client, cfg.Profile)
	default:
		st, err = storage.NewSQLiteStore(cfg.ProfileDir)
		if err != nil {
			return nil, err
		}
	}

	apiClient := api.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	sess := session.NewStore(ctx, st, apiClient)
	apiClient.SetTokenSource(sess)
	apiClient.SetUnauthorizedHook(func() {
		sess.ForceReset(context.Background())
	})

	return &app{
		cfg:     cfg,
		storage: st,
		session: sess,
		cart:    cart.NewStore(ctx, st),
		api:     apiClient,
	}, nil
}

func (a *app) Close() error {
	return a.storage.Close()
}
