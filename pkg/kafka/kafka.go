package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const ReservationTopic = "reservation.submitted"

type Config struct {
	Addrs            []string `envconfig:"KAFKA_ADDRS"`
	ReservationTopic string   `envconfig:"KAFKA_RESERVATION_TOPIC" default:"reservation.submitted"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const EventReservationSubmitted EventType = "RESERVATION_SUBMITTED"

type EventReservation struct {
	EventType       EventType `json:"eventType"`
	Timestamp       time.Time `json:"timestamp"`
	ReservationID   int       `json:"reservationId"`
	ReservationCode int       `json:"reservationCode"`
	FacilityType    string    `json:"facilityType"`
	FacilityID      *int      `json:"facilityId,omitempty"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	StudentIDs      []string  `json:"studentIds"`
}
