package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/config"
	queueadapter "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/adapter"
	gwadapter "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/gateway/adapter"
	notiftask "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/application/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	srv, err := queueadapter.NewAsynqServer(cfg.RedisURL, 10)
	if err != nil {
		log.Fatalf("failed to create queue server: %v", err)
	}

	smsGateway, err := gwadapter.NewHTTPSMSGateway(cfg.SMSAPIURL, cfg.SMSAPIKey)
	if err != nil {
		log.Fatalf("failed to build sms gateway: %v", err)
	}
	emailGateway, err := gwadapter.NewSMTPEmailGateway(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err != nil {
		log.Fatalf("failed to build email gateway: %v", err)
	}

	notiftask.RegisterSendSMSTask(srv, smsGateway)
	notiftask.RegisterSendEmailTask(srv, emailGateway)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run blocks until the context is canceled, then drains in-flight tasks.
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
