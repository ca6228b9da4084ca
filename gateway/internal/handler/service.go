package handler

import (
	"context"

	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/Astemirdum/ureserve/gateway/internal/service/facility"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ FacilityService = (*facility.Service)(nil)

type FacilityService interface {
	ListFacilities(ctx context.Context, ft model.FacilityType) ([]model.Facility, error)
	GetFacility(ctx context.Context, ft model.FacilityType, id int) (model.Facility, error)
	CreateFacility(ctx context.Context, ft model.FacilityType, f model.Facility) (model.Facility, error)
	UpdateFacility(ctx context.Context, ft model.FacilityType, id int, f model.Facility) (model.Facility, error)
	DeleteFacility(ctx context.Context, ft model.FacilityType, id int) error

	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	UpdateReservation(ctx context.Context, id int, r model.Reservation) (model.Reservation, error)

	FindStudent(ctx context.Context, studentID string) (model.Person, bool, error)
}
