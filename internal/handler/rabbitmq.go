package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/metrics"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/rabbitmq"
	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Consumer --filename consumer.go

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

//go:generate mockery --name Resolver --filename resolver.go

// Resolver stores url matching resolution results.
type Resolver interface {
	ResolveURLMatching(ctx context.Context, id uuid.UUID, status models.ManualURLMatchingStatus) error
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	consumer Consumer
	resolver Resolver
	logger   *zerolog.Logger
}

// NewRMQHandler returns new RMQHandler.
func NewRMQHandler(consumer Consumer, resolver Resolver, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer: consumer,
		resolver: resolver,
		logger:   logger,
	}
}

// Start starts consuming and handling url matching results from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.HandleURLMatchingResult)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// HandleURLMatchingResult stores resolution status carried by message.
// Results of already resolved url matchings are accepted and ignored.
func (h *RMQHandler) HandleURLMatchingResult(ctx context.Context, message rabbitmq.Message) error {
	result, err := decodeMessage(message.Body)
	if err != nil {
		return err
	}

	status := models.ManualURLMatchingStatus(result.Status)
	err = h.resolver.ResolveURLMatching(ctx, result.ManualURLMatchingID, status)
	if err != nil {
		return fmt.Errorf("can't resolve url matching %s: %w", result.ManualURLMatchingID, err)
	}

	metrics.URLMatchingResultsTotal.WithLabelValues(result.Status).Inc()
	h.logger.Debug().
		Str("manualUrlMatchingId", result.ManualURLMatchingID.String()).
		Str("status", result.Status).
		Bool("redelivered", message.Redelivered).
		Msg("url matching resolved")

	return nil
}

func decodeMessage(msg []byte) (*commander.URLMatchingResult, error) {
	var result commander.URLMatchingResult
	err := json.Unmarshal(msg, &result)
	if err != nil {
		return nil, fmt.Errorf("can't decode url matching result: %w", err)
	}

	if result.ManualURLMatchingID == uuid.Nil {
		return nil, fmt.Errorf("%w: url matching result without id", platform.ErrValidation)
	}

	return &result, nil
}
