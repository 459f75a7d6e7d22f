package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"crud_testbench/internal/db"
	httpserver "crud_testbench/internal/http"
	"crud_testbench/internal/seed"
	"crud_testbench/internal/service"
	"crud_testbench/internal/store"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the tables and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gdb, err := open()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			if cfg.SeedOnStart {
				if _, err := seed.FirstSetup(cmd.Context(), gdb, time.Now().UTC()); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
			}
			if cfg.GinMode != "" {
				gin.SetMode(cfg.GinMode)
			}

			svc := service.NewRecords(
				store.NewRecordStore(gdb),
				store.NewOperationLogStore(gdb),
				service.WithTracerProvider(otel.GetTracerProvider()),
			)
			r := httpserver.NewRouter(gdb, svc, httpserver.Options{
				DefaultLogLimit: cfg.OpLogDefaultLimit,
				MaxLogLimit:     cfg.OpLogMaxLimit,
			})

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%s", cfg.AppPort),
				Handler:           otelhttp.NewHandler(r, "crudbench"),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Println("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
