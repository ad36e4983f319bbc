package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(dbStorage)
	verifier := auth.NewVerifier(envConfig.JWTSecret, envConfig.JWTIssuer)

	operatorDelegator := operator.NewOperatorDelegator(dbStorage, numOperatorWorkers)
	operatorDelegator.Start()
	defer operatorDelegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.ServerPort,
			Service:  svc,
			Operator: operatorDelegator,
			Verifier: verifier,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
