package helpers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander"
	"github.com/go-faker/faker/v4"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
)

// Pair is brand product with its candidates at single retailer.
type Pair struct {
	Brand            pgmodels.Brand
	Retailer         pgmodels.Retailer
	BrandProduct     pgmodels.BrandProduct
	RetailerProducts []pgmodels.RetailerProduct
}

// InsertPair is helper function inserting brand product with n auto matched candidates at new retailer.
func InsertPair(t *testing.T, exc qrm.Executable, n int) Pair {
	t.Helper()

	p := Pair{
		Brand:    pgmodels.Brand{ID: uuid.New(), Name: faker.Word()},
		Retailer: pgmodels.Retailer{ID: uuid.New(), Name: faker.Word(), Country: "SE"},
	}
	storagetesting.InsertBrands(t, exc, p.Brand)
	storagetesting.InsertRetailers(t, exc, p.Brand, p.Retailer)

	p.BrandProduct = pgmodels.BrandProduct{
		ID:      uuid.New(),
		BrandID: p.Brand.ID,
		Name:    faker.Name(),
		Active:  true,
	}
	storagetesting.InsertBrandProducts(t, exc, p.BrandProduct)

	for range n {
		rp := pgmodels.RetailerProduct{
			ID:         uuid.New(),
			RetailerID: p.Retailer.ID,
			Name:       p.BrandProduct.Name + " " + faker.Word(),
			Price:      lo.ToPtr(99.0),
			Currency:   lo.ToPtr("SEK"),
			FetchedAt:  time.Now().UTC(),
		}
		p.RetailerProducts = append(p.RetailerProducts, rp)
		storagetesting.InsertRetailerProducts(t, exc, rp)
		storagetesting.InsertProductMatchings(t, exc, pgmodels.ProductMatching{
			ID:                uuid.New(),
			BrandProductID:    p.BrandProduct.ID,
			RetailerProductID: rp.ID,
			Certainty:         pgmodels.MatchingCertainty_AutoLowConfidence,
		})
	}

	return p
}

// WaitForURLMatchingStatus is blocking helper function, returns url matching once it leaves pending status.
func WaitForURLMatchingStatus(t *testing.T, queryable qrm.Queryable, timeout time.Duration) pgmodels.ManualURLMatching {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "url matching wasn't resolved in time")
		case <-time.After(time.Millisecond * 250):
		}

		matchings := storagetesting.GetManualURLMatchings(t, queryable)
		if len(matchings) > 0 && matchings[0].Status != pgmodels.ManualURLMatchingStatus_Pending {
			return matchings[0]
		}
	}
}

// StartURLResolver is helper function acting as url matching worker.
// It answers every command from queue with result of given status published to routing key.
// Returns channel receiving consumed commands.
func StartURLResolver(
	ctx context.Context,
	t *testing.T,
	channel *amqp.Channel,
	queue, exchange, resultsRoutingKey, status string,
) <-chan commander.ResolveURLCommand {
	t.Helper()

	deliveries, err := channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't consume commands", queue, err)
	}

	commands := make(chan commander.ResolveURLCommand, 1)
	go func() {
		defer close(commands)
		for {
			var delivery amqp.Delivery
			var ok bool
			select {
			case <-ctx.Done():
				return
			case delivery, ok = <-deliveries:
				if !ok {
					return
				}
			}

			var cmd commander.ResolveURLCommand
			if err := json.Unmarshal(delivery.Body, &cmd); err != nil {
				_ = delivery.Nack(false, false)
				continue
			}

			body, _ := json.Marshal(commander.URLMatchingResult{
				ManualURLMatchingID: cmd.ManualURLMatchingID,
				Status:              status,
			})
			_ = channel.PublishWithContext(ctx, exchange, resultsRoutingKey, false, false, amqp.Publishing{
				ContentType: "application/json",
				MessageId:   delivery.MessageId,
				Body:        body,
			})
			_ = delivery.Ack(false)

			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	return commands
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
