package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Astemirdum/ureserve/gateway/internal/errs"
)

type FacilityType string

const (
	FacilityCubicle     FacilityType = "Cubicle"
	FacilityLaboratory  FacilityType = "Laboratory"
	FacilityProjector   FacilityType = "Projector"
	FacilityRestaurant  FacilityType = "Restaurant"
	FacilityVipRoom     FacilityType = "VipRoom"
	FacilityMeetingRoom FacilityType = "MeetingRoom"
)

var facilityTypes = []FacilityType{
	FacilityCubicle, FacilityLaboratory, FacilityProjector,
	FacilityRestaurant, FacilityVipRoom, FacilityMeetingRoom,
}

func FacilityTypes() []FacilityType {
	return append([]FacilityType(nil), facilityTypes...)
}

func ParseFacilityType(s string) (FacilityType, error) {
	for _, ft := range facilityTypes {
		if strings.EqualFold(string(ft), s) {
			return ft, nil
		}
	}
	return "", errs.ErrUnknownFacility
}

// IsGroup reports whether the facility is booked by a group of students.
func (f FacilityType) IsGroup() bool {
	return f == FacilityCubicle || f == FacilityLaboratory
}

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusFinished  Status = "Finished"
)

var transitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusFinished},
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanReach reports whether to is s itself or is reachable from s through the state machine.
func (s Status) CanReach(to Status) bool {
	if s == to {
		return true
	}
	for _, next := range transitions[s] {
		if next.CanReach(to) {
			return true
		}
	}
	return false
}

type Person struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	StudentID string `json:"studentId"`
}

// NormalizeStudentID strips dashes and surrounding spaces and lower-cases the matricula.
func NormalizeStudentID(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", ""))
}

func (p Person) SameAs(o Person) bool {
	if p.ID != 0 && p.ID == o.ID {
		return true
	}
	n := NormalizeStudentID(p.StudentID)
	return n != "" && n == NormalizeStudentID(o.StudentID)
}

func IsDigits(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type Date struct {
	time.Time `json:",inline"`
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	date, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	v, err := ParseClock(strings.Trim(string(b), "\""))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ReservationRequest is the client-side reservation: a Draft until submitted.
type ReservationRequest struct {
	FacilityType    FacilityType `json:"facilityType"`
	FacilityID      *int         `json:"facilityId"`
	Date            Date         `json:"date"`
	StartTime       Clock        `json:"startTime"`
	EndTime         Clock        `json:"endTime"`
	Hours           string       `json:"hours"`
	Members         []Person     `json:"members"`
	ReservationCode int          `json:"reservationCode,omitempty"`
	Status          Status       `json:"status"`
	ReservationID   int          `json:"reservationId,omitempty"`
}

// Clone copies the request so callers cannot mutate the coordinator's members.
func (r ReservationRequest) Clone() ReservationRequest {
	r.Members = append([]Person(nil), r.Members...)
	if r.FacilityID != nil {
		id := *r.FacilityID
		r.FacilityID = &id
	}
	return r
}

type DraftState struct {
	SessionID       string             `json:"sessionId,omitempty"`
	Request         ReservationRequest `json:"reservation"`
	RequiredMembers int                `json:"requiredMembers"`
	RemainingSlots  int                `json:"remainingSlots"`
	ScheduleSet     bool               `json:"scheduleSet"`
	LastError       string             `json:"lastError,omitempty"`
}

// Remote UReserve API DTOs.

type Facility struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity" validate:"gte=0"`
	Available bool   `json:"available"`
}

type Reservation struct {
	ID           int          `json:"id"`
	Code         int          `json:"code"`
	FacilityType FacilityType `json:"facilityType"`
	FacilityID   *int         `json:"facilityId,omitempty"`
	Date         Date         `json:"date"`
	StartTime    Clock        `json:"startTime"`
	EndTime      Clock        `json:"endTime"`
	Hours        string       `json:"hours"`
	Status       Status       `json:"status"`
	Members      []Person     `json:"members"`
}

type ReservationPayload struct {
	Code         int          `json:"code"`
	FacilityType FacilityType `json:"facilityType"`
	FacilityID   *int         `json:"facilityId,omitempty"`
	Date         Date         `json:"date"`
	StartTime    Clock        `json:"startTime"`
	EndTime      Clock        `json:"endTime"`
	Hours        string       `json:"hours"`
	Status       Status       `json:"status"`
	Members      []Person     `json:"members"`
}

type ReservationDetail struct {
	ReservationID int    `json:"reservationId"`
	FacilityID    *int   `json:"facilityId,omitempty"`
	PersonID      int    `json:"personId"`
	StudentID     string `json:"studentId"`
}

type ReservationFilter struct {
	StudentID    string
	FacilityType FacilityType
	FacilityID   *int
	Date         Date
}

// Gateway API requests.

type OpenSessionRequest struct {
	FacilityType string `json:"facilityType" validate:"required,facility"`
	StudentID    string `json:"studentId" validate:"required,matricula"`
}

type AddMemberRequest struct {
	StudentID string `json:"studentId" validate:"required,matricula"`
}

type SetHoursRequest struct {
	Hours string `json:"hours"`
}

type SetScheduleRequest struct {
	Date      Date  `json:"date" validate:"required"`
	StartTime Clock `json:"startTime"`
	EndTime   Clock `json:"endTime"`
}

type SelectFacilityRequest struct {
	FacilityID int `json:"facilityId" validate:"required,gt=0"`
}

type SubmitResponse struct {
	ReservationCode int                `json:"reservationCode"`
	Reservation     ReservationRequest `json:"reservation"`
}

type ConflictsResponse struct {
	Available bool          `json:"available"`
	Conflicts []Reservation `json:"conflicts"`
}
