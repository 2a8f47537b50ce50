/*
main.go - Application entry point

PURPOSE:
  Starts the punch-card converter server: engine, handlers, router,
  graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (optional) and parse flags
  2. Build the zap logger
  3. Build the timesheet engine (schedule catalog)
  4. Configure the HTTP router
  5. Serve with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080, env PORT)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, drain active requests for
  up to 30s, exit. The engine is stateless, nothing needs flushing.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/api"
	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

func main() {
	// .env is optional; flags override it.
	_ = godotenv.Load()

	defaultPort := 8080
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		defaultPort = p
	}
	port := flag.Int("port", defaultPort, "HTTP server port")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	engine := timesheet.NewEngine(logger)
	handler := api.NewHandler(engine, logger)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("servidor iniciado", zap.Int("porta", *port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor encerrou com erro", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("encerrando")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("encerramento forçado", zap.Error(err))
	}
}
