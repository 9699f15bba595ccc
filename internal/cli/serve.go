package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/kiss2smiles/wdqa/internal"
	"github.com/kiss2smiles/wdqa/internal/server"
)

// NewServeCommand starts the HTTP answer service.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the question-answering HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := internal.LoadConfig()
			if err != nil {
				return err
			}

			logger := internal.NewLogger(config)
			slog.SetDefault(logger)

			e, err := server.InitServer(config, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			go func() {
				if err := e.Start(config.EchoAddr); err != nil && err != http.ErrServerClosed {
					e.Logger.Fatal("shutting down the server")
				}
			}()

			<-ctx.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(ctx)
		},
	}
}
