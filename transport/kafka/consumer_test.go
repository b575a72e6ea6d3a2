package kafka_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/transport/kafka"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	return &buf
}

func TestConsumer_RunSubscribesToBothTopics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Booking = "hotel.booking"
	cfg.Kafka.Topics.Room = "hotel.room"

	var mu sync.Mutex

	topics := []string{}
	consume := func(_ context.Context, group, topic string, _ func(kafkaGo.Message)) {
		mu.Lock()
		defer mu.Unlock()

		assert.Equal(t, "hotel-audit", group)
		topics = append(topics, topic)
	}

	client.EXPECT().Consume(gomock.Any(), gomock.Any(), "hotel.booking", gomock.Any()).Do(consume)
	client.EXPECT().Consume(gomock.Any(), gomock.Any(), "hotel.room", gomock.Any()).Do(consume)

	kafka.New(cfg, client).Run(context.Background())

	assert.ElementsMatch(t, []string{"hotel.booking", "hotel.room"}, topics)
}

func TestHandleBookingEvent(t *testing.T) {
	buf := captureLogs(t)

	kafka.HandleBookingEvent(kafkaGo.Message{
		Key:   []byte("b1"),
		Value: []byte(`{"type":"booking.confirmed","bookingId":"b1","roomId":1,"nights":2,"totalCost":200}`),
	})

	assert.Contains(t, buf.String(), `"booking_id":"b1"`)
	assert.Contains(t, buf.String(), `"nights":2`)

	buf.Reset()

	kafka.HandleBookingEvent(kafkaGo.Message{Key: []byte("b2"), Value: []byte(`not json`)})

	assert.Contains(t, buf.String(), "skipping undecodable booking event")
}

func TestHandleRoomStatusEvent(t *testing.T) {
	buf := captureLogs(t)

	kafka.HandleRoomStatusEvent(kafkaGo.Message{
		Key:   []byte("3"),
		Value: []byte(`{"type":"room.status.updated","roomId":3,"status":"needs_cleaning","cause":"admin.flag"}`),
	})

	assert.Contains(t, buf.String(), `"status":"needs_cleaning"`)
	assert.Contains(t, buf.String(), `"cause":"admin.flag"`)
}
