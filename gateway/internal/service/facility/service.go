package facility

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Astemirdum/ureserve/gateway/config"
	"github.com/Astemirdum/ureserve/gateway/internal/errs"
	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/Astemirdum/ureserve/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	reservationsPath = "/reservaciones"
	studentsPath     = "/alumnos/matricula"
)

var resources = map[model.FacilityType]struct{ path, detail string }{
	model.FacilityCubicle:     {"/cubiculos", "/detalleReservaCubiculo"},
	model.FacilityLaboratory:  {"/laboratorios", "/detalleReservaLaboratorio"},
	model.FacilityProjector:   {"/proyectores", "/detalleReservaProyector"},
	model.FacilityRestaurant:  {"/restaurantes", "/detalleReservaRestaurante"},
	model.FacilityVipRoom:     {"/salasVip", "/detalleReservaSalaVip"},
	model.FacilityMeetingRoom: {"/salasJuntas", "/detalleReservaSalaJuntas"},
}

// Service is the HTTP client of the remote UReserve API.
type Service struct {
	log      *zap.Logger
	client   *http.Client
	cb       circuit_breaker.CircuitBreaker
	endpoint string
}

func NewService(log *zap.Logger, cfg config.RemoteHTTPServer) *Service {
	return &Service{
		log:      log.Named("facility"),
		client:   &http.Client{Timeout: cfg.Timeout},
		cb:       circuit_breaker.New(100, time.Second, 0.2, 2),
		endpoint: strings.TrimSuffix(cfg.BaseURL(), "/"),
	}
}

func (s *Service) ListFacilities(ctx context.Context, ft model.FacilityType) ([]model.Facility, error) {
	res, err := resourceOf(ft)
	if err != nil {
		return nil, err
	}
	var items []model.Facility
	if err := s.do(ctx, http.MethodGet, res.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) GetFacility(ctx context.Context, ft model.FacilityType, id int) (model.Facility, error) {
	res, err := resourceOf(ft)
	if err != nil {
		return model.Facility{}, err
	}
	var f model.Facility
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", res.path, id), nil, &f); err != nil {
		return model.Facility{}, err
	}
	return f, nil
}

func (s *Service) CreateFacility(ctx context.Context, ft model.FacilityType, f model.Facility) (model.Facility, error) {
	res, err := resourceOf(ft)
	if err != nil {
		return model.Facility{}, err
	}
	var created model.Facility
	if err := s.do(ctx, http.MethodPost, res.path, f, &created); err != nil {
		return model.Facility{}, err
	}
	return created, nil
}

func (s *Service) UpdateFacility(ctx context.Context, ft model.FacilityType, id int, f model.Facility) (model.Facility, error) {
	res, err := resourceOf(ft)
	if err != nil {
		return model.Facility{}, err
	}
	f.ID = id
	var updated model.Facility
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", res.path, id), f, &updated); err != nil {
		return model.Facility{}, err
	}
	return updated, nil
}

func (s *Service) DeleteFacility(ctx context.Context, ft model.FacilityType, id int) error {
	res, err := resourceOf(ft)
	if err != nil {
		return err
	}
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", res.path, id), nil, nil)
}

func (s *Service) ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, error) {
	q := url.Values{}
	if filter.StudentID != "" {
		q.Set("matricula", filter.StudentID)
	}
	if filter.FacilityType != "" {
		q.Set("tipo", string(filter.FacilityType))
	}
	if filter.FacilityID != nil {
		q.Set("instalacion", strconv.Itoa(*filter.FacilityID))
	}
	if !filter.Date.IsZero() {
		q.Set("fecha", filter.Date.String())
	}
	path := reservationsPath
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var items []model.Reservation
	if err := s.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	var rsv model.Reservation
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", reservationsPath, id), nil, &rsv); err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (s *Service) CreateReservation(ctx context.Context, payload model.ReservationPayload) (model.Reservation, error) {
	var rsv model.Reservation
	if err := s.do(ctx, http.MethodPost, reservationsPath, payload, &rsv); err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (s *Service) UpdateReservation(ctx context.Context, id int, r model.Reservation) (model.Reservation, error) {
	r.ID = id
	var rsv model.Reservation
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", reservationsPath, id), r, &rsv); err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (s *Service) DeleteReservation(ctx context.Context, id int) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", reservationsPath, id), nil, nil)
}

func (s *Service) CreateReservationDetail(ctx context.Context, ft model.FacilityType, d model.ReservationDetail) error {
	res, err := resourceOf(ft)
	if err != nil {
		return err
	}
	return s.do(ctx, http.MethodPost, res.detail, d, nil)
}

// FindStudent looks a student up by matricula. A missing student is reported as ok=false, not as an error.
func (s *Service) FindStudent(ctx context.Context, studentID string) (model.Person, bool, error) {
	var p model.Person
	err := s.do(ctx, http.MethodGet, studentsPath+"/"+url.PathEscape(strings.TrimSpace(studentID)), nil, &p)
	if err != nil {
		var re *errs.RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return model.Person{}, false, nil
		}
		return model.Person{}, false, err
	}
	return p, true, nil
}

func resourceOf(ft model.FacilityType) (struct{ path, detail string }, error) {
	res, ok := resources[ft]
	if !ok {
		return res, errs.ErrUnknownFacility
	}
	return res, nil
}

func (s *Service) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(in); err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, method, s.endpoint+path, body)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if in != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}

	var result error
	cbErr := s.cb.Call(func() error {
		resp, err := s.client.Do(req)
		if err != nil {
			s.log.Debug("remote call failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
			result = errs.NewRemoteError(0, err.Error())
			if ctx.Err() != nil {
				// the caller gave up, the remote is not at fault
				return nil
			}
			return result
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10)) //nolint:errcheck
			result = errs.NewRemoteError(resp.StatusCode, remoteMessage(data))
			if resp.StatusCode >= http.StatusInternalServerError {
				return result
			}
			// 4xx is an answer, not an outage
			return nil
		}
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			result = errs.NewRemoteError(resp.StatusCode, "decode response: "+err.Error())
		}
		return nil
	})
	if errors.Is(cbErr, circuit_breaker.ErrOpenCB) {
		return errs.NewRemoteError(http.StatusServiceUnavailable, "UReserve service unavailable")
	}
	return result
}

// remoteMessage extracts a human message from an error body: {"message": ...} or the raw text.
func remoteMessage(data []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &m); err == nil {
		if m.Message != "" {
			return m.Message
		}
		if m.Error != "" {
			return m.Error
		}
	}
	return strings.TrimSpace(string(data))
}
