package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/ads-pilot-api/internal/api"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/scanning"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	logConfigPresence(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	googleClient := googleclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, googleClient, nil)

	authorizer := authorizing.NewService(cfg, googleClient)
	scanner := scanning.NewService(cfg, adsIntegrator)

	server, err := api.New(cfg, authorizer, scanner)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// logConfigPresence registra quais credenciais estão configuradas, sem
// nunca logar os valores
func logConfigPresence(cfg *config.Config) {
	logrus.WithFields(logrus.Fields{
		"has_client_id":       cfg.Google.ClientID != "",
		"has_client_secret":   cfg.Google.HasClientSecret(),
		"has_developer_token": cfg.Google.HasDeveloperToken(),
		"backend_url":         cfg.App.BackendURL,
		"frontend_url":        cfg.App.FrontendURL,
	}).Info("Configuração carregada")

	if !cfg.Google.HasClientSecret() {
		logrus.Warn("GOOGLE_CLIENT_SECRET não configurado - o fluxo OAuth não funcionará")
	}

	if !cfg.Google.HasDeveloperToken() {
		logrus.Warn("GOOGLE_DEVELOPER_TOKEN não configurado - scan usará dados mock")
	}
}
