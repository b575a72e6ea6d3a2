// Package kafka runs the audit consumer that logs booking and room status events.
package kafka

import (
	"context"
	"sync"

	"hotel/config"
	"hotel/infras/kafka"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const defaultConsumerGroup = "hotel-audit"

type Consumer struct {
	cfg    *config.Config
	client kafka.Client
}

func New(cfg *config.Config, client kafka.Client) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
	}
}

// Run consumes both event topics until ctx is done.
func (c *Consumer) Run(ctx context.Context) {
	group := c.cfg.Kafka.ConsumerGroup
	if group == "" {
		group = defaultConsumerGroup
	}

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()
		c.client.Consume(ctx, group, c.cfg.Kafka.Topics.Booking, HandleBookingEvent)
	}()

	go func() {
		defer wg.Done()
		c.client.Consume(ctx, group, c.cfg.Kafka.Topics.Room, HandleRoomStatusEvent)
	}()

	log.Info().Str("group", group).Msg("Audit consumer started")

	wg.Wait()

	log.Info().Msg("Audit consumer stopped")
}

func HandleBookingEvent(msg kafkaGo.Message) {
	key, event, err := kafka.DecodeKafkaMessage[bookingModel.ConfirmedEvent](msg)
	if err != nil {
		log.Warn().Err(err).Str("topic", msg.Topic).Int64("offset", msg.Offset).Msg("skipping undecodable booking event")

		return
	}

	log.Info().
		Str("key", key).
		Str("type", event.Type).
		Str("booking_id", event.BookingID).
		Int("room_id", event.RoomID).
		Int("nights", event.Nights).
		Float64("total_cost", event.TotalCost).
		Msg("booking event")
}

func HandleRoomStatusEvent(msg kafkaGo.Message) {
	key, event, err := kafka.DecodeKafkaMessage[roomModel.StatusUpdatedEvent](msg)
	if err != nil {
		log.Warn().Err(err).Str("topic", msg.Topic).Int64("offset", msg.Offset).Msg("skipping undecodable room event")

		return
	}

	log.Info().
		Str("key", key).
		Str("type", event.Type).
		Int("room_id", event.RoomID).
		Str("status", string(event.Status)).
		Str("cause", event.Cause).
		Msg("room status event")
}
