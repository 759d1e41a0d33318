package handler_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/handler"
	"github.com/MichalMitros/shelf-analytics/internal/handler/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/rabbitmq"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitHandleURLMatchingResult(t *testing.T) {
	id := uuid.New()

	tests := map[string]struct {
		body          string
		resolveStatus models.ManualURLMatchingStatus
		resolveErr    error
		wantErr       error
		wantAnyErr    bool
	}{
		"resolved": {
			body:          fmt.Sprintf(`{"manualUrlMatchingId":"%s","status":"resolved"}`, id),
			resolveStatus: models.ManualURLMatchingResolved,
		},
		"failed": {
			body:          fmt.Sprintf(`{"manualUrlMatchingId":"%s","status":"failed"}`, id),
			resolveStatus: models.ManualURLMatchingFailed,
		},
		"unknown url matching": {
			body:          fmt.Sprintf(`{"manualUrlMatchingId":"%s","status":"resolved"}`, id),
			resolveStatus: models.ManualURLMatchingResolved,
			resolveErr:    platform.ErrNotFound,
			wantErr:       platform.ErrNotFound,
		},
		"malformed message": {
			body:       `{"manualUrlMatchingId":`,
			wantAnyErr: true,
		},
		"message without id": {
			body:    `{"status":"resolved"}`,
			wantErr: platform.ErrValidation,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := mocks.NewResolver(t)
			if tt.resolveStatus != "" {
				resolver.On("ResolveURLMatching", mock.Anything, id, tt.resolveStatus).Return(tt.resolveErr)
			}

			logger := zerolog.Nop()
			h := handler.NewRMQHandler(mocks.NewConsumer(t), resolver, &logger)
			err := h.HandleURLMatchingResult(context.TODO(), rabbitmq.Message{Body: []byte(tt.body)})

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			case tt.wantAnyErr:
				require.Error(t, err, "should return error")
			default:
				require.NoError(t, err, "should handle message")
			}
		})
	}
}

func TestUnitRMQHandlerStart(t *testing.T) {
	errs := make(chan error)
	close(errs)

	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, "results", mock.Anything).Return((<-chan error)(errs), nil)

	logger := zerolog.Nop()
	h := handler.NewRMQHandler(consumer, mocks.NewResolver(t), &logger)

	require.NoError(t, h.Start(context.TODO(), "results"), "should start consuming")
}

func TestUnitRMQHandlerStartError(t *testing.T) {
	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, "results", mock.Anything).Return(nil, assert.AnError)

	logger := zerolog.Nop()
	h := handler.NewRMQHandler(consumer, mocks.NewResolver(t), &logger)

	require.ErrorIs(t, h.Start(context.TODO(), "results"), assert.AnError, "should return consuming error")
}
