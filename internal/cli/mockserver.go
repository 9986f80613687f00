package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lautaroCastilloJ/storefront/internal/mockapi"
)

func newMockServerCommand() *cobra.Command {
	var addr, secret string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Run the in-memory development backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := &http.Server{
				Addr:    addr,
				Handler: mockapi.NewServer(secret).Handler(),
			}

			go func() {
				log.Printf("mock backend listening on %s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("failed to serve: %v", err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Println("shutting down mock backend...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&secret, "secret", "dev-secret-please-change", "JWT signing secret")
	return cmd
}
