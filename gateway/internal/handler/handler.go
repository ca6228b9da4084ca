package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/ureserve/gateway/internal/coordinator"
	"github.com/Astemirdum/ureserve/gateway/internal/errs"
	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/Astemirdum/ureserve/gateway/internal/session"
	mw "github.com/Astemirdum/ureserve/pkg/middleware"
	"github.com/Astemirdum/ureserve/pkg/validate"
	_ "github.com/Astemirdum/ureserve/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc      FacilityService
	sessions *session.Store
	log      *zap.Logger
}

func New(svc FacilityService, sessions *session.Store, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, mw.XStudentIDHeader},
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.GET("/facilities/:type", h.ListFacilities)
	api.GET("/facilities/:type/:id", h.GetFacility)
	api.POST("/facilities/:type", h.CreateFacility)
	api.PUT("/facilities/:type/:id", h.UpdateFacility)
	api.DELETE("/facilities/:type/:id", h.DeleteFacility)

	api.GET("/students/:studentId", h.GetStudent)

	rsv := api.Group("/reservations")
	rsv.GET("", h.ListReservations, mw.StudentContext)
	rsv.GET("/:id", h.GetReservation)
	rsv.POST("/:id/cancel", h.CancelReservation)

	ss := api.Group("/sessions")
	ss.POST("", h.OpenSession)
	ss.GET("/:sessionId", h.GetSession)
	ss.DELETE("/:sessionId", h.CloseSession)
	ss.POST("/:sessionId/members", h.AddMember)
	ss.DELETE("/:sessionId/members/:studentId", h.RemoveMember)
	ss.PUT("/:sessionId/hours", h.SetHours)
	ss.PUT("/:sessionId/schedule", h.SetSchedule)
	ss.PUT("/:sessionId/facility", h.SelectFacility)
	ss.GET("/:sessionId/conflicts", h.Conflicts)
	ss.POST("/:sessionId/submit", h.Submit)
	ss.POST("/:sessionId/refresh", h.Refresh)

	return e
}

// @Summary Health check
// @Tags Manage
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// @Summary List the units of a facility type
// @Tags Facility
// @Produce json
// @Param type path string true "Facility type" Enums(Cubicle, Laboratory, Projector, Restaurant, VipRoom, MeetingRoom)
// @Success 200 {array} model.Facility
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/facilities/{type} [get]
func (h *Handler) ListFacilities(c echo.Context) error {
	ft, err := model.ParseFacilityType(c.Param("type"))
	if err != nil {
		return h.httpError(err)
	}
	list, err := h.svc.ListFacilities(c.Request().Context(), ft)
	if err != nil {
		return h.httpError(err)
	}
	if list == nil {
		list = []model.Facility{}
	}
	return c.JSON(http.StatusOK, list)
}

// @Summary Get a facility unit
// @Tags Facility
// @Produce json
// @Param type path string true "Facility type" Enums(Cubicle, Laboratory, Projector, Restaurant, VipRoom, MeetingRoom)
// @Param id path int true "Unit id"
// @Success 200 {object} model.Facility
// @Failure 404 {object} map[string]string
// @Router /api/v1/facilities/{type}/{id} [get]
func (h *Handler) GetFacility(c echo.Context) error {
	ft, id, err := facilityParams(c)
	if err != nil {
		return h.httpError(err)
	}
	f, err := h.svc.GetFacility(c.Request().Context(), ft, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, f)
}

// @Summary Create a facility unit
// @Tags Facility
// @Accept json
// @Produce json
// @Param type path string true "Facility type" Enums(Cubicle, Laboratory, Projector, Restaurant, VipRoom, MeetingRoom)
// @Param facility body model.Facility true "Unit"
// @Success 201 {object} model.Facility
// @Failure 422 {object} map[string]string
// @Router /api/v1/facilities/{type} [post]
func (h *Handler) CreateFacility(c echo.Context) error {
	ft, err := model.ParseFacilityType(c.Param("type"))
	if err != nil {
		return h.httpError(err)
	}
	var f model.Facility
	if err := h.bind(c, &f); err != nil {
		return err
	}
	created, err := h.svc.CreateFacility(c.Request().Context(), ft, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary Update a facility unit
// @Tags Facility
// @Accept json
// @Produce json
// @Param type path string true "Facility type" Enums(Cubicle, Laboratory, Projector, Restaurant, VipRoom, MeetingRoom)
// @Param id path int true "Unit id"
// @Param facility body model.Facility true "Unit"
// @Success 200 {object} model.Facility
// @Router /api/v1/facilities/{type}/{id} [put]
func (h *Handler) UpdateFacility(c echo.Context) error {
	ft, id, err := facilityParams(c)
	if err != nil {
		return h.httpError(err)
	}
	var f model.Facility
	if err := h.bind(c, &f); err != nil {
		return err
	}
	f.ID = id
	updated, err := h.svc.UpdateFacility(c.Request().Context(), ft, id, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary Delete a facility unit
// @Tags Facility
// @Param type path string true "Facility type" Enums(Cubicle, Laboratory, Projector, Restaurant, VipRoom, MeetingRoom)
// @Param id path int true "Unit id"
// @Success 204
// @Router /api/v1/facilities/{type}/{id} [delete]
func (h *Handler) DeleteFacility(c echo.Context) error {
	ft, id, err := facilityParams(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.svc.DeleteFacility(c.Request().Context(), ft, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary Look a student up by matricula
// @Tags Student
// @Produce json
// @Param studentId path string true "Matricula"
// @Success 200 {object} model.Person
// @Failure 404 {object} map[string]string
// @Router /api/v1/students/{studentId} [get]
func (h *Handler) GetStudent(c echo.Context) error {
	p, err := h.findStudent(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// @Summary Reservation history of the caller
// @Tags Reservation
// @Produce json
// @Param X-Student-Id header string true "Matricula"
// @Success 200 {array} model.Reservation
// @Failure 401 {object} map[string]string
// @Router /api/v1/reservations [get]
func (h *Handler) ListReservations(c echo.Context) error {
	ctx := c.Request().Context()
	studentID, _ := mw.StudentID(ctx)
	list, err := h.svc.ListReservations(ctx, model.ReservationFilter{StudentID: studentID})
	if err != nil {
		return h.httpError(err)
	}
	if list == nil {
		list = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, list)
}

// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation id"
// @Success 200 {object} model.Reservation
// @Router /api/v1/reservations/{id} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.httpError(err)
	}
	r, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// @Summary Cancel a submitted reservation
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation id"
// @Success 200 {object} model.Reservation
// @Failure 409 {object} map[string]string
// @Router /api/v1/reservations/{id}/cancel [post]
func (h *Handler) CancelReservation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.httpError(err)
	}
	ctx := c.Request().Context()
	r, err := h.svc.GetReservation(ctx, id)
	if err != nil {
		return h.httpError(err)
	}
	if r.Status == model.StatusCancelled {
		return c.JSON(http.StatusOK, r)
	}
	if r.Status == model.StatusDraft || !r.Status.CanReach(model.StatusCancelled) {
		return h.httpError(errs.ErrNotCancellable)
	}
	r.Status = model.StatusCancelled
	updated, err := h.svc.UpdateReservation(ctx, id, r)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary Open a reservation flow
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.OpenSessionRequest true "Facility type and initiator"
// @Success 201 {object} model.DraftState
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/sessions [post]
func (h *Handler) OpenSession(c echo.Context) error {
	var req model.OpenSessionRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	ft, err := model.ParseFacilityType(req.FacilityType)
	if err != nil {
		return h.httpError(err)
	}
	user, err := h.findStudent(c.Request().Context(), req.StudentID)
	if err != nil {
		return h.httpError(err)
	}
	st, err := h.sessions.Open(ft, user)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, st)
}

// @Summary Current state of a reservation flow
// @Description Served from the state after the last finished operation, so polling never waits on an in-flight submit.
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} model.DraftState
// @Failure 404 {object} map[string]string
// @Router /api/v1/sessions/{sessionId} [get]
func (h *Handler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return h.httpError(err)
	}
	st, err := h.sessions.State(id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// @Summary Abandon a reservation flow
// @Tags Session
// @Param sessionId path string true "Session id"
// @Success 204
// @Router /api/v1/sessions/{sessionId} [delete]
func (h *Handler) CloseSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.sessions.Close(id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary Add a member
// @Description 201 when the student joined, 200 when already a member.
// @Tags Session
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body model.AddMemberRequest true "Member"
// @Success 201 {object} model.DraftState
// @Success 200 {object} model.DraftState
// @Router /api/v1/sessions/{sessionId}/members [post]
func (h *Handler) AddMember(c echo.Context) error {
	var req model.AddMemberRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	code := http.StatusOK
	return h.update(c, func(ctx context.Context, coord *coordinator.Coordinator) error {
		p, err := h.findStudent(ctx, req.StudentID)
		if err != nil {
			return err
		}
		added, err := coord.AddMember(p)
		if added {
			code = http.StatusCreated
		}
		return err
	}, &code)
}

// @Summary Remove a member
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Param studentId path string true "Matricula"
// @Success 200 {object} model.DraftState
// @Router /api/v1/sessions/{sessionId}/members/{studentId} [delete]
func (h *Handler) RemoveMember(c echo.Context) error {
	studentID := c.Param("studentId")
	return h.update(c, func(_ context.Context, coord *coordinator.Coordinator) error {
		_, err := coord.RemoveMember(studentID)
		return err
	}, nil)
}

// @Summary Set the number of hours
// @Tags Session
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body model.SetHoursRequest true "Hours"
// @Success 200 {object} model.DraftState
// @Failure 422 {object} map[string]string
// @Router /api/v1/sessions/{sessionId}/hours [put]
func (h *Handler) SetHours(c echo.Context) error {
	var req model.SetHoursRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.update(c, func(_ context.Context, coord *coordinator.Coordinator) error {
		return coord.SetHours(req.Hours)
	}, nil)
}

// @Summary Set date and time range
// @Tags Session
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body model.SetScheduleRequest true "Schedule"
// @Success 200 {object} model.DraftState
// @Failure 422 {object} map[string]string
// @Router /api/v1/sessions/{sessionId}/schedule [put]
func (h *Handler) SetSchedule(c echo.Context) error {
	var req model.SetScheduleRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.update(c, func(_ context.Context, coord *coordinator.Coordinator) error {
		return coord.SetDateRange(req.Date, req.StartTime, req.EndTime)
	}, nil)
}

// @Summary Pick the facility unit
// @Tags Session
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body model.SelectFacilityRequest true "Unit"
// @Success 200 {object} model.DraftState
// @Router /api/v1/sessions/{sessionId}/facility [put]
func (h *Handler) SelectFacility(c echo.Context) error {
	var req model.SelectFacilityRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.update(c, func(_ context.Context, coord *coordinator.Coordinator) error {
		return coord.SelectFacility(req.FacilityID)
	}, nil)
}

// @Summary Overlapping reservations of the chosen unit and slot
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} model.ConflictsResponse
// @Router /api/v1/sessions/{sessionId}/conflicts [get]
func (h *Handler) Conflicts(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return h.httpError(err)
	}
	var conflicts []model.Reservation
	if err := h.sessions.Do(c.Request().Context(), id, func(ctx context.Context, coord *coordinator.Coordinator) error {
		var err error
		conflicts, err = coord.Conflicts(ctx)
		return err
	}); err != nil {
		return h.httpError(err)
	}
	if conflicts == nil {
		conflicts = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, model.ConflictsResponse{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	})
}

// @Summary Submit the reservation
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 201 {object} model.SubmitResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/sessions/{sessionId}/submit [post]
func (h *Handler) Submit(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return h.httpError(err)
	}
	var resp model.SubmitResponse
	if err := h.sessions.Do(c.Request().Context(), id, func(ctx context.Context, coord *coordinator.Coordinator) error {
		code, err := coord.Submit(ctx)
		if err != nil {
			return err
		}
		resp = model.SubmitResponse{ReservationCode: code, Reservation: coord.State().Request}
		return nil
	}); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// @Summary Pull the remote status of the submitted reservation
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} model.DraftState
// @Failure 409 {object} map[string]string
// @Router /api/v1/sessions/{sessionId}/refresh [post]
func (h *Handler) Refresh(c echo.Context) error {
	return h.update(c, func(ctx context.Context, coord *coordinator.Coordinator) error {
		_, err := coord.Refresh(ctx)
		return err
	}, nil)
}

// update runs fn on the session and answers with the resulting state.
func (h *Handler) update(c echo.Context, fn func(ctx context.Context, coord *coordinator.Coordinator) error, code *int) error {
	id, err := sessionID(c)
	if err != nil {
		return h.httpError(err)
	}
	var st model.DraftState
	if err := h.sessions.Do(c.Request().Context(), id, func(ctx context.Context, coord *coordinator.Coordinator) error {
		if err := fn(ctx, coord); err != nil {
			return err
		}
		st = coord.State()
		return nil
	}); err != nil {
		return h.httpError(err)
	}
	st.SessionID = id.String()
	status := http.StatusOK
	if code != nil {
		status = *code
	}
	return c.JSON(status, st)
}

func (h *Handler) findStudent(ctx context.Context, studentID string) (model.Person, error) {
	if studentID == "" {
		return model.Person{}, errs.ErrStudentID
	}
	p, ok, err := h.svc.FindStudent(ctx, studentID)
	if err != nil {
		return model.Person{}, err
	}
	if !ok {
		return model.Person{}, errors.Wrapf(errs.ErrNotFound, "student %s", studentID)
	}
	return p, nil
}

func (h *Handler) bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

func (h *Handler) httpError(err error) error {
	status := errs.HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		h.log.Error("request failed", zap.Error(err))
	}
	return echo.NewHTTPError(status, err.Error())
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return uuid.Nil, errs.ErrSessionNotFound
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(errs.ErrNotFound, "%s %q", name, c.Param(name))
	}
	return id, nil
}

func facilityParams(c echo.Context) (model.FacilityType, int, error) {
	ft, err := model.ParseFacilityType(c.Param("type"))
	if err != nil {
		return "", 0, err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return "", 0, err
	}
	return ft, id, nil
}
