package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/Astemirdum/ureserve/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
	now      func() time.Time
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	if topic == "" {
		topic = kafka.ReservationTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
		now:      time.Now,
	}
}

func (p *Publisher) ReservationSubmitted(_ context.Context, r model.ReservationRequest) error {
	ids := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		ids = append(ids, m.StudentID)
	}
	event := kafka.EventReservation{
		EventType:       kafka.EventReservationSubmitted,
		Timestamp:       p.now().UTC(),
		ReservationID:   r.ReservationID,
		ReservationCode: r.ReservationCode,
		FacilityType:    string(r.FacilityType),
		FacilityID:      r.FacilityID,
		Date:            r.Date.String(),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		StudentIDs:      ids,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(r.FacilityType),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	p.log.Debug("reservation event sent",
		zap.Int("code", r.ReservationCode),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}
