package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/ureserve/gateway/internal/coordinator"
	mock_coordinator "github.com/Astemirdum/ureserve/gateway/internal/coordinator/mocks"
	"github.com/Astemirdum/ureserve/gateway/internal/errs"
	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/Astemirdum/ureserve/gateway/internal/session"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var initiator = model.Person{ID: 1, FirstName: "Ana", LastName: "López", StudentID: "2025-0001"}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore(t *testing.T, ttl time.Duration, clk *clock) *session.Store {
	t.Helper()
	client := mock_coordinator.NewMockFacilityClient(gomock.NewController(t))
	log := zap.NewExample().Named("test")
	factory := func() *coordinator.Coordinator {
		return coordinator.New(client, log, coordinator.WithClock(clk.Now))
	}
	return session.NewStore(factory, ttl, log, session.WithClock(clk.Now))
}

func TestStore_OpenAndDo(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)}
	s := newStore(t, time.Minute, clk)

	st, err := s.Open(model.FacilityLaboratory, initiator)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 3, st.RequiredMembers)
	require.Equal(t, 2, st.RemainingSlots)
	id, err := uuid.Parse(st.SessionID)
	require.NoError(t, err)

	err = s.Do(context.Background(), id, func(_ context.Context, c *coordinator.Coordinator) error {
		_, err := c.AddMember(model.Person{ID: 2, StudentID: "2025-0002"})
		return err
	})
	require.NoError(t, err)

	got, err := s.State(id)
	require.NoError(t, err)
	require.Equal(t, st.SessionID, got.SessionID)
	require.Len(t, got.Request.Members, 2)

	_, err = s.Open(model.FacilityType("Gym"), initiator)
	require.ErrorIs(t, err, errs.ErrUnknownFacility)
	require.Equal(t, 1, s.Len())
}

func TestStore_Do_InFlight(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Now()}
	s := newStore(t, time.Minute, clk)
	st, err := s.Open(model.FacilityCubicle, initiator)
	require.NoError(t, err)
	id := uuid.MustParse(st.SessionID)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.Do(context.Background(), id, func(context.Context, *coordinator.Coordinator) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	err = s.Do(context.Background(), id, func(context.Context, *coordinator.Coordinator) error {
		t.Error("must not run while another operation is in flight")
		return nil
	})
	require.ErrorIs(t, err, errs.ErrOperationInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestStore_State_WhileOperationInFlight(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)}
	s := newStore(t, time.Minute, clk)
	st, err := s.Open(model.FacilityCubicle, initiator)
	require.NoError(t, err)
	id := uuid.MustParse(st.SessionID)

	require.NoError(t, s.Do(context.Background(), id, func(_ context.Context, c *coordinator.Coordinator) error {
		return c.SetHours("2")
	}))

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.Do(context.Background(), id, func(_ context.Context, c *coordinator.Coordinator) error {
			close(entered)
			<-release
			return c.SetHours("4")
		})
	}()
	<-entered

	got, err := s.State(id)
	require.NoError(t, err)
	require.Equal(t, st.SessionID, got.SessionID)
	require.Equal(t, "2", got.Request.Hours)

	close(release)
	require.NoError(t, <-done)
	got, err = s.State(id)
	require.NoError(t, err)
	require.Equal(t, "4", got.Request.Hours)
}

func TestStore_Close_CancelsOperation(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Now()}
	s := newStore(t, time.Minute, clk)
	st, err := s.Open(model.FacilityCubicle, initiator)
	require.NoError(t, err)
	id := uuid.MustParse(st.SessionID)

	entered := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.Do(context.Background(), id, func(ctx context.Context, _ *coordinator.Coordinator) error {
			close(entered)
			<-ctx.Done()
			return ctx.Err()
		})
	}()
	<-entered

	require.NoError(t, s.Close(id))
	require.ErrorIs(t, <-done, context.Canceled)

	require.ErrorIs(t, s.Close(id), errs.ErrSessionNotFound)
	err = s.Do(context.Background(), id, func(context.Context, *coordinator.Coordinator) error { return nil })
	require.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestStore_Sweep(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)}
	s := newStore(t, 10*time.Minute, clk)

	old, err := s.Open(model.FacilityCubicle, initiator)
	require.NoError(t, err)
	clk.Advance(6 * time.Minute)
	fresh, err := s.Open(model.FacilityProjector, initiator)
	require.NoError(t, err)

	clk.Advance(5 * time.Minute)
	require.Equal(t, 1, s.Sweep())
	require.Equal(t, 1, s.Len())

	_, err = s.State(uuid.MustParse(old.SessionID))
	require.ErrorIs(t, err, errs.ErrSessionNotFound)
	_, err = s.State(uuid.MustParse(fresh.SessionID))
	require.NoError(t, err)
}

func TestStore_Run_ClosesAllOnShutdown(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Now()}
	s := newStore(t, time.Hour, clk)
	for i := 0; i < 3; i++ {
		_, err := s.Open(model.FacilityRestaurant, initiator)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped
	require.Zero(t, s.Len())
}
