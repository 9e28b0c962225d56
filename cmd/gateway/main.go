package main

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"github.com/cardstream/payment-gateway/gateway"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout))

	app := gateway.NewApp(logger, gateway.ConfigFromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	app.Shutdown()
}
