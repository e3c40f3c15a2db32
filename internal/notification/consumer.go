package notification

import (
	"context"

	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/mailer"
	"atrium/internal/domains/reservation/model/dto"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer reads reservation events off Kafka and sends the matching
// notification mails.
type Consumer struct {
	kafka  kafka.Client
	mailer mailer.Mailer
	cfg    *config.Config
}

func NewConsumer(kafkaClient kafka.Client, mailer mailer.Mailer, cfg *config.Config) *Consumer {
	return &Consumer{
		kafka:  kafkaClient,
		mailer: mailer,
		cfg:    cfg,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().
		Str("topic", c.cfg.Kafka.Topics.ReservationConfirmed).
		Str("consumerGroup", c.cfg.Kafka.ConsumerGroup).
		Msg("Starting reservation notification consumer.")

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.ReservationConfirmed, c.HandleReservationConfirmed)
}

func (c *Consumer) HandleReservationConfirmed(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[dto.ReservationConfirmedEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode reservation confirmed event")

		return
	}

	event, ok := decoded.Value.(dto.ReservationConfirmedEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected payload type for reservation confirmed event")

		return
	}

	if err := c.mailer.SendReservationConfirmed(event.UserEmail, event.UserName, event.RoomName, event.StartTime, event.EndTime); err != nil {
		log.Error().
			Err(err).
			Str("reservation_id", event.ReservationID).
			Str("recipient", event.UserEmail).
			Msg("failed to send reservation confirmation mail")

		return
	}

	log.Info().
		Str("reservation_id", event.ReservationID).
		Str("recipient", event.UserEmail).
		Msg("Reservation confirmation mail sent.")
}
