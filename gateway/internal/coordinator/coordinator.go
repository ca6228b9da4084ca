// Package coordinator drives one reservation flow: it owns the Draft, applies the user's edits
// and submits the result to the remote API.
package coordinator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/ureserve/gateway/internal/availability"
	"github.com/Astemirdum/ureserve/gateway/internal/errs"
	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Coordinator is single-writer: callers must not invoke it from several goroutines at once.
type Coordinator struct {
	log      *zap.Logger
	client   FacilityClient
	codes    CodeGenerator
	notifier Notifier
	now      func() time.Time

	initialized bool
	scheduleSet bool
	draft       model.ReservationRequest
	lastErr     error
}

type Option func(*Coordinator)

func WithCodes(codes CodeGenerator) Option {
	return func(c *Coordinator) {
		c.codes = codes
	}
}

func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) {
		c.notifier = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func New(client FacilityClient, log *zap.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		log:    log.Named("coordinator"),
		client: client,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.codes == nil {
		c.codes = NewCodes(0)
	}
	return c
}

// Initialize starts a Draft for ft with user as its first member.
// Repeating it for the same facility keeps the current Draft and never duplicates user.
func (c *Coordinator) Initialize(ft model.FacilityType, user model.Person) error {
	ft, err := model.ParseFacilityType(string(ft))
	if err != nil {
		return err
	}
	if !c.initialized || c.draft.FacilityType != ft || c.draft.Status != model.StatusDraft {
		c.draft = model.ReservationRequest{FacilityType: ft, Status: model.StatusDraft}
		c.scheduleSet = false
		c.lastErr = nil
		c.initialized = true
	}
	c.appendMember(user)
	return nil
}

func (c *Coordinator) AddMember(p model.Person) (bool, error) {
	if err := c.mutable(); err != nil {
		return false, err
	}
	return c.appendMember(p), nil
}

func (c *Coordinator) appendMember(p model.Person) bool {
	for _, m := range c.draft.Members {
		if m.SameAs(p) {
			return false
		}
	}
	c.draft.Members = append(c.draft.Members, p)
	return true
}

// RemoveMember drops the first member with a matching studentId. Absent ids are a no-op.
func (c *Coordinator) RemoveMember(studentID string) (bool, error) {
	if err := c.mutable(); err != nil {
		return false, err
	}
	target := model.NormalizeStudentID(studentID)
	for i, m := range c.draft.Members {
		if model.NormalizeStudentID(m.StudentID) == target {
			c.draft.Members = append(c.draft.Members[:i], c.draft.Members[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (c *Coordinator) SetHours(text string) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if !model.IsDigits(text) {
		return c.fail(errs.NewValidationError("hours", errs.ErrInvalidHours))
	}
	c.draft.Hours = text
	c.lastErr = nil
	return nil
}

// SetDateRange checks the time range before the date, so a reversed range is reported
// whatever the date is.
func (c *Coordinator) SetDateRange(date model.Date, start, end model.Clock) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if !availability.IsRangeValid(start, end) {
		return c.fail(errs.NewValidationError("schedule", errs.ErrInvalidRange))
	}
	if !availability.IsDateSelectable(date.Time, c.now()) {
		return c.fail(errs.NewValidationError("date", errs.ErrUnavailableDate))
	}
	c.draft.Date = date
	c.draft.StartTime = start
	c.draft.EndTime = end
	c.scheduleSet = true
	c.lastErr = nil
	return nil
}

func (c *Coordinator) SelectFacility(id int) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if id <= 0 {
		return c.fail(errs.NewValidationError("facilityId", errs.ErrInvalidFacilityID))
	}
	c.draft.FacilityID = &id
	c.lastErr = nil
	return nil
}

// Submit validates the Draft locally, then persists it remotely and returns the reservation code.
// On any failure the Draft is left as it was.
func (c *Coordinator) Submit(ctx context.Context) (int, error) {
	if err := c.validateForSubmit(); err != nil {
		return 0, c.fail(err)
	}

	code := c.codes.Next()
	payload := model.ReservationPayload{
		Code:         code,
		FacilityType: c.draft.FacilityType,
		FacilityID:   c.draft.FacilityID,
		Date:         c.draft.Date,
		StartTime:    c.draft.StartTime,
		EndTime:      c.draft.EndTime,
		Hours:        c.draft.Hours,
		Status:       model.StatusSubmitted,
		Members:      append([]model.Person(nil), c.draft.Members...),
	}

	rsv, err := c.client.CreateReservation(ctx, payload)
	if err != nil {
		return 0, c.fail(submissionError(err))
	}
	if err := c.createDetails(ctx, rsv.ID); err != nil {
		if rbErr := c.client.DeleteReservation(context.WithoutCancel(ctx), rsv.ID); rbErr != nil {
			c.log.Warn("rollback reservation", zap.Int("reservationId", rsv.ID), zap.Error(rbErr))
		}
		return 0, c.fail(submissionError(err))
	}

	c.draft.ReservationCode = code
	c.draft.ReservationID = rsv.ID
	c.draft.Status = model.StatusSubmitted
	c.lastErr = nil
	c.log.Info("reservation submitted",
		zap.String("facility", string(c.draft.FacilityType)),
		zap.Int("reservationId", rsv.ID),
		zap.Int("code", code))

	if c.notifier != nil {
		if err := c.notifier.ReservationSubmitted(ctx, c.draft.Clone()); err != nil {
			c.log.Warn("publish reservation event", zap.Int("code", code), zap.Error(err))
		}
	}
	return code, nil
}

func (c *Coordinator) validateForSubmit() error {
	if !c.initialized || c.draft.Status != model.StatusDraft {
		return errs.ErrNotDraft
	}
	if len(c.draft.Members) < availability.RequiredMembers(c.draft.FacilityType) {
		return errs.NewValidationError("members", errs.ErrInsufficientMembers)
	}
	if strings.TrimSpace(c.draft.Hours) == "" {
		return errs.NewValidationError("hours", errs.ErrBlankHours)
	}
	if !c.scheduleSet {
		return errs.NewValidationError("schedule", errs.ErrMissingSchedule)
	}
	if !availability.IsRangeValid(c.draft.StartTime, c.draft.EndTime) {
		return errs.NewValidationError("schedule", errs.ErrInvalidRange)
	}
	// the day may have passed since the schedule was picked
	if !availability.IsDateSelectable(c.draft.Date.Time, c.now()) {
		return errs.NewValidationError("date", errs.ErrUnavailableDate)
	}
	return nil
}

// createDetails writes one junction record per member.
func (c *Coordinator) createDetails(ctx context.Context, reservationID int) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, m := range c.draft.Members {
		m := m
		g.Go(func() error {
			return c.client.CreateReservationDetail(gctx, c.draft.FacilityType, model.ReservationDetail{
				ReservationID: reservationID,
				FacilityID:    c.draft.FacilityID,
				PersonID:      m.ID,
				StudentID:     m.StudentID,
			})
		})
	}
	return g.Wait()
}

func submissionError(err error) error {
	msg := err.Error()
	var re *errs.RemoteError
	if errors.As(err, &re) {
		msg = re.Message
	}
	return &errs.SubmissionError{Message: msg, Err: err}
}

// Refresh pulls the remote status of a submitted reservation.
func (c *Coordinator) Refresh(ctx context.Context) (model.Status, error) {
	if !c.initialized || c.draft.Status == model.StatusDraft {
		return c.draft.Status, errs.ErrNotSubmitted
	}
	if c.draft.Status.IsTerminal() {
		return c.draft.Status, nil
	}
	rsv, err := c.client.GetReservation(ctx, c.draft.ReservationID)
	if err != nil {
		return c.draft.Status, err
	}
	if !c.draft.Status.CanReach(rsv.Status) {
		return c.draft.Status, errs.NewRemoteError(http.StatusBadGateway,
			fmt.Sprintf("remote reported status %q for a %q reservation", rsv.Status, c.draft.Status))
	}
	if rsv.Status != c.draft.Status {
		c.log.Info("reservation status changed",
			zap.Int("reservationId", rsv.ID),
			zap.String("from", string(c.draft.Status)),
			zap.String("to", string(rsv.Status)))
	}
	c.draft.Status = rsv.Status
	return rsv.Status, nil
}

// Conflicts lists the live reservations of the selected unit that overlap the chosen slot.
func (c *Coordinator) Conflicts(ctx context.Context) ([]model.Reservation, error) {
	if !c.initialized {
		return nil, errs.ErrNotDraft
	}
	if c.draft.FacilityID == nil {
		return nil, errs.NewValidationError("facilityId", errs.ErrMissingFacility)
	}
	if !c.scheduleSet {
		return nil, errs.NewValidationError("schedule", errs.ErrMissingSchedule)
	}
	existing, err := c.client.ListReservations(ctx, model.ReservationFilter{
		FacilityType: c.draft.FacilityType,
		FacilityID:   c.draft.FacilityID,
		Date:         c.draft.Date,
	})
	if err != nil {
		return nil, err
	}
	conflicts := availability.Conflicts(c.draft.Date, c.draft.StartTime, c.draft.EndTime, existing)
	out := conflicts[:0]
	for _, r := range conflicts {
		if c.draft.ReservationID != 0 && r.ID == c.draft.ReservationID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (c *Coordinator) State() model.DraftState {
	required := availability.RequiredMembers(c.draft.FacilityType)
	st := model.DraftState{
		Request:         c.draft.Clone(),
		RequiredMembers: required,
		RemainingSlots:  availability.RemainingSlots(required, c.draft.Members),
		ScheduleSet:     c.scheduleSet,
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}

func (c *Coordinator) Status() model.Status {
	return c.draft.Status
}

func (c *Coordinator) mutable() error {
	if !c.initialized || c.draft.Status != model.StatusDraft {
		return errs.ErrNotDraft
	}
	return nil
}

func (c *Coordinator) fail(err error) error {
	c.lastErr = err
	return err
}
