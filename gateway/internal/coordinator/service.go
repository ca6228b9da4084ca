package coordinator

import (
	"context"

	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/Astemirdum/ureserve/gateway/internal/service/events"
	"github.com/Astemirdum/ureserve/gateway/internal/service/facility"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ FacilityClient = (*facility.Service)(nil)
	_ Notifier       = (*events.Publisher)(nil)
)

type FacilityClient interface {
	CreateReservation(ctx context.Context, payload model.ReservationPayload) (model.Reservation, error)
	CreateReservationDetail(ctx context.Context, ft model.FacilityType, d model.ReservationDetail) error
	DeleteReservation(ctx context.Context, id int) error
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, error)
}

type Notifier interface {
	ReservationSubmitted(ctx context.Context, r model.ReservationRequest) error
}
