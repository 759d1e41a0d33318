package commander_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander"
	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendResolveURLCommand(t *testing.T) {
	cmd := commander.ResolveURLCommand{
		ManualURLMatchingID: uuid.New(),
		BrandProductID:      uuid.New(),
		RetailerID:          uuid.New(),
		URL:                 faker.URL(),
	}
	body := []byte(fmt.Sprintf(
		`{"manualUrlMatchingId":"%s","brandProductId":"%s","retailerId":"%s","url":"%s"}`,
		cmd.ManualURLMatchingID, cmd.BrandProductID, cmd.RetailerID, cmd.URL,
	))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, cmd.ManualURLMatchingID.String(), body).Return(tt.senderError)

			cmndr := commander.NewURLMatchingCommander(sender)
			err := cmndr.SendResolveURLCommand(context.TODO(), cmd)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitSendResolveURLCommandWithoutID(t *testing.T) {
	sender := mocks.NewSender(t)

	cmndr := commander.NewURLMatchingCommander(sender)
	err := cmndr.SendResolveURLCommand(context.TODO(), commander.ResolveURLCommand{URL: faker.URL()})

	require.Error(t, err, "should reject command without url matching id")
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
