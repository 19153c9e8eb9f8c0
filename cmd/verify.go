package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"verifier/internal/api"
	"verifier/internal/config"
	"verifier/internal/consumer"
	"verifier/internal/fields"
	"verifier/internal/match"
	"verifier/internal/verifier"
	"verifier/internal/worker"
	"verifier/pkg/bizregistry/ntsapi"
	"verifier/pkg/broker"
	"verifier/pkg/broker/kafka"
	"verifier/pkg/certregistry/hrdkorea"
	"verifier/pkg/domain"
	"verifier/pkg/imagefetch"
	"verifier/pkg/logger"
	"verifier/pkg/ocr/documentai"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// externalAPITimeout bounds single calls to the OCR, registry and image
// hosting endpoints. The per-message timeout still caps the pipeline as a
// whole.
const externalAPITimeout = 30 * time.Second

func setupServer(ctx context.Context, cfg *config.Config) (*sdkmetric.MeterProvider, func(ctx context.Context)) {
	server, mp, err := api.NewServer(api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return mp, func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Starts the verification consumer, background workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			mp, stopWebserver := setupServer(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			publisher, err := kafka.NewPublisher(kafka.Options{
				Brokers:  cfg.Kafka.Brokers,
				ClientID: cfg.Kafka.ClientID,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create kafka publisher", zap.Error(err))
			}

			httpClient := &http.Client{Timeout: externalAPITimeout}
			matcher := fields.NewEmbeddingMatcher(fields.NewNGramEmbedder())

			v := verifier.New(verifier.Dependencies{
				Fetcher: imagefetch.New(httpClient),
				OCR: documentai.New(httpClient, documentai.Options{
					Endpoint:    cfg.OCR.Endpoint,
					ProjectID:   cfg.OCR.ProjectID,
					Location:    cfg.OCR.Location,
					ProcessorID: cfg.OCR.ProcessorID,
					Token:       cfg.OCR.Token,
				}),
				BizRegistry: ntsapi.New(httpClient, ntsapi.Options{
					BaseURL:    cfg.BizRegistry.BaseURL,
					ServiceKey: cfg.BizRegistry.ServiceKey,
				}),
				CertRegistry: hrdkorea.New(httpClient, hrdkorea.Options{
					BaseURL:    cfg.CertRegistry.BaseURL,
					ServiceKey: cfg.CertRegistry.ServiceKey,
				}),
				Publisher:         publisher,
				Storage:           strg,
				Resolver:          match.NewResolver(strg),
				LicenseFields:     fields.NewLicenseNormalizer(matcher),
				CertificateFields: fields.NewCertificateNormalizer(matcher),
			}, verifier.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, v, cfg.Verifier.QueueWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			router := consumer.NewRouter()
			router.Register(domain.TopicLicenseRequest, v.HandleLicense)
			router.Register(domain.TopicCertificateRequest, v.HandleCertificate)

			cons, err := consumer.New(router, publisher, func(topics ...string) (broker.Consumer, error) {
				return kafka.NewConsumer(kafka.Options{
					Brokers:  cfg.Kafka.Brokers,
					Group:    cfg.Kafka.Group,
					ClientID: cfg.Kafka.ClientID,
				}, topics...)
			}, mp, consumer.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create consumer", zap.Error(err))
			}

			if err := cons.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start consumer", zap.Error(err))
			}
			go func() {
				if err := cons.StartConsumer(ctx,
					domain.TopicLicenseRequest, domain.TopicCertificateRequest); err != nil {
					logger.Error(ctx, "consumer loop failed", zap.Error(err))
				}
			}()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			if err := cons.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop consumer", zap.Error(err))
			}
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
