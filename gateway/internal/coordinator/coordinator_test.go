package coordinator_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Astemirdum/ureserve/gateway/internal/coordinator"
	mock_coordinator "github.com/Astemirdum/ureserve/gateway/internal/coordinator/mocks"
	"github.com/Astemirdum/ureserve/gateway/internal/errs"
	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Tuesday
var today = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

var (
	ana   = model.Person{ID: 1, FirstName: "Ana", LastName: "López", StudentID: "2025-0001"}
	luis  = model.Person{ID: 2, FirstName: "Luis", LastName: "Pérez", StudentID: "2025-0002"}
	marta = model.Person{ID: 3, FirstName: "Marta", LastName: "Ruiz", StudentID: "2025-0003"}
)

func newCoordinator(t *testing.T, opts ...coordinator.Option) (*coordinator.Coordinator, *mock_coordinator.MockFacilityClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock_coordinator.NewMockFacilityClient(ctrl)
	opts = append([]coordinator.Option{
		coordinator.WithClock(func() time.Time { return today }),
		coordinator.WithCodes(coordinator.NewCodes(42)),
	}, opts...)
	return coordinator.New(client, zap.NewExample().Named("test"), opts...), client
}

func readyDraft(t *testing.T, c *coordinator.Coordinator, ft model.FacilityType, members ...model.Person) {
	t.Helper()
	require.NoError(t, c.Initialize(ft, members[0]))
	for _, m := range members[1:] {
		added, err := c.AddMember(m)
		require.NoError(t, err)
		require.True(t, added)
	}
	require.NoError(t, c.SetHours("2"))
	require.NoError(t, c.SetDateRange(model.NewDate(2025, 6, 12), model.NewClock(9, 0), model.NewClock(11, 0)))
}

func TestCoordinator_Initialize(t *testing.T) {
	t.Parallel()
	c, _ := newCoordinator(t)

	require.NoError(t, c.Initialize(model.FacilityCubicle, ana))
	require.NoError(t, c.Initialize(model.FacilityCubicle, ana))
	st := c.State()
	require.Equal(t, []model.Person{ana}, st.Request.Members)
	require.Equal(t, model.StatusDraft, st.Request.Status)
	require.Nil(t, st.Request.FacilityID)
	require.Equal(t, 3, st.RequiredMembers)
	require.Equal(t, 2, st.RemainingSlots)

	require.ErrorIs(t, c.Initialize(model.FacilityType("Gym"), ana), errs.ErrUnknownFacility)
}

func TestCoordinator_Initialize_FacilityCase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ft       model.FacilityType
		want     model.FacilityType
		required int
	}{
		{name: "lower laboratory", ft: "laboratory", want: model.FacilityLaboratory, required: 3},
		{name: "upper cubicle", ft: "CUBICLE", want: model.FacilityCubicle, required: 3},
		{name: "mixed vip room", ft: "viproom", want: model.FacilityVipRoom, required: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := newCoordinator(t)
			require.NoError(t, c.Initialize(tt.ft, ana))
			st := c.State()
			require.Equal(t, tt.want, st.Request.FacilityType)
			require.Equal(t, tt.required, st.RequiredMembers)
			require.Equal(t, tt.required-1, st.RemainingSlots)

			// same facility in canonical case keeps the draft
			require.NoError(t, c.Initialize(tt.want, ana))
			require.Len(t, c.State().Request.Members, 1)
		})
	}
}

func TestCoordinator_Submit_LowercaseLaboratoryNeedsGroup(t *testing.T) {
	t.Parallel()
	c, _ := newCoordinator(t)
	require.NoError(t, c.Initialize(model.FacilityType("laboratory"), ana))
	require.NoError(t, c.SetHours("2"))
	require.NoError(t, c.SetDateRange(model.NewDate(2025, 6, 12), model.NewClock(9, 0), model.NewClock(11, 0)))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, errs.ErrInsufficientMembers)
	require.Equal(t, model.StatusDraft, c.Status())
}

func TestCoordinator_AddMember_Dedup(t *testing.T) {
	t.Parallel()
	c, _ := newCoordinator(t)
	require.NoError(t, c.Initialize(model.FacilityLaboratory, ana))

	added, err := c.AddMember(model.Person{ID: 10, StudentID: "2025-7896"})
	require.NoError(t, err)
	require.True(t, added)

	added, err = c.AddMember(model.Person{ID: 11, StudentID: "20257896"})
	require.NoError(t, err)
	require.False(t, added)

	added, err = c.AddMember(model.Person{ID: 10, StudentID: "other"})
	require.NoError(t, err)
	require.False(t, added)

	require.Len(t, c.State().Request.Members, 2)
}

func TestCoordinator_RemoveMember(t *testing.T) {
	t.Parallel()
	c, _ := newCoordinator(t)
	require.NoError(t, c.Initialize(model.FacilityCubicle, ana))
	_, _ = c.AddMember(luis)

	removed, err := c.RemoveMember("9999999")
	require.NoError(t, err)
	require.False(t, removed)
	require.Len(t, c.State().Request.Members, 2)

	removed, err = c.RemoveMember("20250002")
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, []model.Person{ana}, c.State().Request.Members)
}

func TestCoordinator_SetHours(t *testing.T) {
	t.Parallel()
	c, _ := newCoordinator(t)
	require.NoError(t, c.Initialize(model.FacilityProjector, ana))

	require.NoError(t, c.SetHours("3"))
	require.NoError(t, c.SetHours(""))
	require.NoError(t, c.SetHours("12"))

	for _, bad := range []string{"2h", "1.5", "-1", " 2"} {
		err := c.SetHours(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHours, bad)
		require.True(t, errs.IsValidation(err))
	}
	st := c.State()
	require.Equal(t, "12", st.Request.Hours)
	require.Equal(t, "hours: hours must contain digits only", st.LastError)
}

func TestCoordinator_SetDateRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		date       model.Date
		start, end model.Clock
		wantErr    error
	}{
		{name: "ok", date: model.NewDate(2025, 6, 12), start: model.NewClock(10, 0), end: model.NewClock(12, 0)},
		{name: "ok. today", date: model.NewDate(2025, 6, 10), start: model.NewClock(16, 0), end: model.NewClock(17, 0)},
		{name: "err. end before start", date: model.NewDate(2025, 6, 12), start: model.NewClock(10, 0), end: model.NewClock(9, 0), wantErr: errs.ErrInvalidRange},
		{name: "err. end before start on sunday", date: model.NewDate(2025, 6, 8), start: model.NewClock(10, 0), end: model.NewClock(9, 0), wantErr: errs.ErrInvalidRange},
		{name: "err. empty range", date: model.NewDate(2025, 6, 12), start: model.NewClock(10, 0), end: model.NewClock(10, 0), wantErr: errs.ErrInvalidRange},
		{name: "err. sunday", date: model.NewDate(2025, 6, 8), start: model.NewClock(10, 0), end: model.NewClock(11, 0), wantErr: errs.ErrUnavailableDate},
		{name: "err. past", date: model.NewDate(2025, 6, 9), start: model.NewClock(10, 0), end: model.NewClock(11, 0), wantErr: errs.ErrUnavailableDate},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := newCoordinator(t)
			require.NoError(t, c.Initialize(model.FacilityCubicle, ana))
			err := c.SetDateRange(tt.date, tt.start, tt.end)
			st := c.State()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.False(t, st.ScheduleSet)
				require.True(t, st.Request.Date.IsZero())
				return
			}
			require.NoError(t, err)
			require.True(t, st.ScheduleSet)
			require.Equal(t, tt.date, st.Request.Date)
			require.Equal(t, tt.start, st.Request.StartTime)
		})
	}
}

func TestCoordinator_Submit_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		prepare func(t *testing.T, c *coordinator.Coordinator)
		wantErr error
	}{
		{
			name: "laboratory with two members",
			prepare: func(t *testing.T, c *coordinator.Coordinator) {
				readyDraft(t, c, model.FacilityLaboratory, ana, luis)
			},
			wantErr: errs.ErrInsufficientMembers,
		},
		{
			name: "blank hours",
			prepare: func(t *testing.T, c *coordinator.Coordinator) {
				readyDraft(t, c, model.FacilityCubicle, ana, luis, marta)
				require.NoError(t, c.SetHours(""))
			},
			wantErr: errs.ErrBlankHours,
		},
		{
			name: "no schedule",
			prepare: func(t *testing.T, c *coordinator.Coordinator) {
				require.NoError(t, c.Initialize(model.FacilityProjector, ana))
				require.NoError(t, c.SetHours("1"))
			},
			wantErr: errs.ErrMissingSchedule,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// no expectations: the remote must not be called
			c, _ := newCoordinator(t)
			tt.prepare(t, c)

			code, err := c.Submit(context.Background())
			require.Zero(t, code)
			require.ErrorIs(t, err, tt.wantErr)
			require.True(t, errs.IsValidation(err))
			require.Equal(t, model.StatusDraft, c.Status())
			require.Zero(t, c.State().Request.ReservationCode)
		})
	}
}

func TestCoordinator_Submit_DateBecamePast(t *testing.T) {
	t.Parallel()
	now := today
	c, _ := newCoordinator(t, coordinator.WithClock(func() time.Time { return now }))
	readyDraft(t, c, model.FacilityCubicle, ana, luis, marta)

	now = time.Date(2025, 6, 13, 8, 0, 0, 0, time.UTC)
	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, errs.ErrUnavailableDate)
	require.Equal(t, model.StatusDraft, c.Status())
}

func TestCoordinator_Submit_OK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	notifier := mock_coordinator.NewMockNotifier(ctrl)
	c, client := newCoordinator(t, coordinator.WithNotifier(notifier))
	readyDraft(t, c, model.FacilityCubicle, ana, luis, marta)
	require.NoError(t, c.SelectFacility(4))

	var sent model.ReservationPayload
	client.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.ReservationPayload) (model.Reservation, error) {
			sent = p
			return model.Reservation{ID: 77, Code: p.Code, Status: model.StatusSubmitted}, nil
		}).Times(1)
	for _, m := range []model.Person{ana, luis, marta} {
		client.EXPECT().CreateReservationDetail(gomock.Any(), model.FacilityCubicle, model.ReservationDetail{
			ReservationID: 77,
			FacilityID:    &[]int{4}[0],
			PersonID:      m.ID,
			StudentID:     m.StudentID,
		}).Return(nil).Times(1)
	}
	notifier.EXPECT().ReservationSubmitted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.ReservationRequest) error {
			require.Equal(t, model.StatusSubmitted, r.Status)
			require.Equal(t, 77, r.ReservationID)
			return nil
		}).Times(1)

	code, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, code, 100000)
	require.LessOrEqual(t, code, 999999)
	require.Equal(t, code, sent.Code)
	require.Equal(t, model.StatusSubmitted, sent.Status)
	require.Equal(t, "2", sent.Hours)
	require.Len(t, sent.Members, 3)

	st := c.State()
	require.Equal(t, model.StatusSubmitted, st.Request.Status)
	require.Equal(t, code, st.Request.ReservationCode)
	require.Equal(t, 77, st.Request.ReservationID)

	// submitted exactly once
	_, err = c.Submit(context.Background())
	require.ErrorIs(t, err, errs.ErrNotDraft)
	_, err = c.AddMember(model.Person{ID: 9, StudentID: "2025-0009"})
	require.ErrorIs(t, err, errs.ErrNotDraft)
	require.ErrorIs(t, c.SetHours("3"), errs.ErrNotDraft)
	require.Equal(t, code, c.State().Request.ReservationCode)
}

func TestCoordinator_Submit_RemoteFailure(t *testing.T) {
	t.Parallel()
	c, client := newCoordinator(t)
	readyDraft(t, c, model.FacilityLaboratory, ana, luis, marta)

	client.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		Return(model.Reservation{}, errs.NewRemoteError(http.StatusConflict, "El laboratorio ya está reservado")).Times(1)

	before := c.State()
	code, err := c.Submit(context.Background())
	require.Zero(t, code)

	var se *errs.SubmissionError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "El laboratorio ya está reservado", se.Message)
	require.False(t, errs.IsValidation(err))

	after := c.State()
	require.Equal(t, model.StatusDraft, after.Request.Status)
	require.Equal(t, before.Request, after.Request)
	require.Equal(t, "El laboratorio ya está reservado", after.LastError)

	// user may retry by hand
	client.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: 5}, nil)
	client.EXPECT().CreateReservationDetail(gomock.Any(), model.FacilityLaboratory, gomock.Any()).Return(nil).Times(3)
	code, err = c.Submit(context.Background())
	require.NoError(t, err)
	require.NotZero(t, code)
	require.Empty(t, c.State().LastError)
}

func TestCoordinator_Submit_DetailFailureRollsBack(t *testing.T) {
	t.Parallel()
	c, client := newCoordinator(t)
	readyDraft(t, c, model.FacilityCubicle, ana, luis, marta)

	client.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: 31}, nil)
	client.EXPECT().CreateReservationDetail(gomock.Any(), model.FacilityCubicle, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.FacilityType, d model.ReservationDetail) error {
			if d.PersonID == luis.ID {
				return errs.NewRemoteError(http.StatusBadRequest, "alumno inactivo")
			}
			return nil
		}).MinTimes(1).MaxTimes(3)
	client.EXPECT().DeleteReservation(gomock.Any(), 31).Return(nil).Times(1)

	_, err := c.Submit(context.Background())
	var se *errs.SubmissionError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "alumno inactivo", se.Message)
	require.Equal(t, model.StatusDraft, c.Status())
	require.Zero(t, c.State().Request.ReservationID)
}

func TestCoordinator_Submit_NotifierFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	notifier := mock_coordinator.NewMockNotifier(ctrl)
	c, client := newCoordinator(t, coordinator.WithNotifier(notifier))
	readyDraft(t, c, model.FacilityRestaurant, ana)

	client.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: 8}, nil)
	client.EXPECT().CreateReservationDetail(gomock.Any(), model.FacilityRestaurant, gomock.Any()).Return(nil)
	notifier.EXPECT().ReservationSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	code, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.NotZero(t, code)
	require.Equal(t, model.StatusSubmitted, c.Status())
}

func TestCoordinator_Refresh(t *testing.T) {
	t.Parallel()
	c, client := newCoordinator(t)

	_, err := c.Refresh(context.Background())
	require.ErrorIs(t, err, errs.ErrNotSubmitted)

	readyDraft(t, c, model.FacilityProjector, ana)
	_, err = c.Refresh(context.Background())
	require.ErrorIs(t, err, errs.ErrNotSubmitted)

	client.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: 12}, nil)
	client.EXPECT().CreateReservationDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	_, err = c.Submit(context.Background())
	require.NoError(t, err)

	gomock.InOrder(
		client.EXPECT().GetReservation(gomock.Any(), 12).Return(model.Reservation{ID: 12, Status: model.StatusSubmitted}, nil),
		client.EXPECT().GetReservation(gomock.Any(), 12).Return(model.Reservation{ID: 12, Status: model.StatusConfirmed}, nil),
		client.EXPECT().GetReservation(gomock.Any(), 12).Return(model.Reservation{ID: 12, Status: model.StatusDraft}, nil),
		client.EXPECT().GetReservation(gomock.Any(), 12).Return(model.Reservation{ID: 12, Status: model.StatusFinished}, nil),
	)

	st, err := c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.StatusSubmitted, st)

	st, err = c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.StatusConfirmed, st)

	st, err = c.Refresh(context.Background())
	var re *errs.RemoteError
	require.True(t, errors.As(err, &re))
	require.Equal(t, model.StatusConfirmed, st)

	st, err = c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.StatusFinished, st)

	// terminal: no remote call
	st, err = c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.StatusFinished, st)
}

func TestCoordinator_Conflicts(t *testing.T) {
	t.Parallel()
	c, client := newCoordinator(t)
	require.NoError(t, c.Initialize(model.FacilityMeetingRoom, ana))

	_, err := c.Conflicts(context.Background())
	require.ErrorIs(t, err, errs.ErrMissingFacility)

	require.NoError(t, c.SelectFacility(6))
	_, err = c.Conflicts(context.Background())
	require.ErrorIs(t, err, errs.ErrMissingSchedule)

	date := model.NewDate(2025, 6, 12)
	require.NoError(t, c.SetDateRange(date, model.NewClock(9, 0), model.NewClock(10, 0)))
	six := 6
	client.EXPECT().ListReservations(gomock.Any(), model.ReservationFilter{
		FacilityType: model.FacilityMeetingRoom,
		FacilityID:   &six,
		Date:         date,
	}).Return([]model.Reservation{
		{ID: 1, Date: date, StartTime: model.NewClock(8, 30), EndTime: model.NewClock(9, 30), Status: model.StatusConfirmed},
		{ID: 2, Date: date, StartTime: model.NewClock(10, 0), EndTime: model.NewClock(11, 0), Status: model.StatusConfirmed},
	}, nil)

	got, err := c.Conflicts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].ID)

	require.ErrorIs(t, c.SelectFacility(0), errs.ErrInvalidFacilityID)
}

func TestCodes_Next(t *testing.T) {
	t.Parallel()
	codes := coordinator.NewCodes(7)
	seen := make(map[int]struct{}, 5000)
	for i := 0; i < 5000; i++ {
		code := codes.Next()
		require.GreaterOrEqual(t, code, 100000)
		require.LessOrEqual(t, code, 999999)
		_, dup := seen[code]
		require.False(t, dup)
		seen[code] = struct{}{}
	}
}
