package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/gradecalc/apps/api/echo"
	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/school"
	"github.com/trezcool/gradecalc/services/logger"
	"github.com/trezcool/gradecalc/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	calc, err := school.NewCalculatorFromConfig(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up calculator: %v", err), err)
	}
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	svc := school.NewService(inmemdb.NewRepository(db), calc, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	if conf.LoadSampleData {
		if err = school.SeedSampleData(context.Background(), svc); err != nil {
			logger.Fatal(fmt.Sprintf("loading sample data: %v", err), err)
		}
		logger.Info("Sample data loaded")
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:      conf,
		Logger:    logger,
		SchoolSvc: svc,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
