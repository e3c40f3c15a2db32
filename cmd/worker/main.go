package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/mailer"
	"atrium/internal/notification"
	"atrium/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer := notification.NewConsumer(kafka.New(cfg), mailer.New(cfg), cfg)
	consumer.Run(ctx)
}
