package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogAnalyzer/internal/analyzer"
	"github.com/Egor213/LogAnalyzer/internal/broker"
	kafkabroker "github.com/Egor213/LogAnalyzer/internal/broker/kafka"
	"github.com/Egor213/LogAnalyzer/internal/config"
	"github.com/Egor213/LogAnalyzer/internal/metrics"
	"github.com/Egor213/LogAnalyzer/internal/reader"
	"github.com/Egor213/LogAnalyzer/internal/service"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
	"github.com/Egor213/LogAnalyzer/pkg/logger"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	logger.SetOutput(os.Stderr)
	log.Info("Logger has been set up")

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource, so the deferred closes happen before Run exits.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Log source
	log.WithFields(log.Fields{
		"path":   cfg.Source.Path,
		"format": cfg.Source.Format,
	}).Info("Opening log source")
	provider := reader.NewProvider(
		reader.WithFormat(reader.Format(cfg.Source.Format)),
		reader.Strict(cfg.Source.Strict),
	)
	a, err := analyzer.New(cfg.Source.Path, provider)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error(err)
		}
	}()

	// Producer
	var producer broker.Producer
	if cfg.Kafka.Enabled {
		log.Debugf("Kafka brokers: %v, topic: %s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
		p := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer func() {
			if err := p.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		producer = p
	}

	// Services
	metricsCnt := metrics.New()
	services := service.NewServices(service.ServicesDependencies{
		Analyzer:       a,
		Counters:       metricsCnt,
		BrokerProducer: producer,
	})

	switch cfg.App.Mode {
	case config.ModeServe:
		return serve(ctx, cfg, services, metricsCnt)
	case config.ModeReport:
		if cfg.App.PrintData {
			if err := a.PrintData(os.Stdout); err != nil {
				return errorsUtils.WrapPathErr(err)
			}
		}
		return writeReport(ctx, services.Stats, os.Stdout)
	default:
		return errorsUtils.WrapPathErr(errors.New("unreachable mode " + cfg.App.Mode))
	}
}
