package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/services"
)

// --- mock stop service ---

type mockStopService struct {
	addStopFn      func(tripID uint, name, startDate, endDate string) (*models.Stop, error)
	getTripStopsFn func(tripID uint) ([]models.Stop, error)
	deleteStopFn   func(tripID, stopID uint) error
}

func (m *mockStopService) AddStop(tripID uint, name, startDate, endDate string) (*models.Stop, error) {
	if m.addStopFn != nil {
		return m.addStopFn(tripID, name, startDate, endDate)
	}
	return &models.Stop{}, nil
}

func (m *mockStopService) GetTripStops(tripID uint) ([]models.Stop, error) {
	if m.getTripStopsFn != nil {
		return m.getTripStopsFn(tripID)
	}
	return []models.Stop{}, nil
}

func (m *mockStopService) DeleteStop(tripID, stopID uint) error {
	if m.deleteStopFn != nil {
		return m.deleteStopFn(tripID, stopID)
	}
	return nil
}

// verify interface compliance
var _ services.StopServicer = (*mockStopService)(nil)

func setupStopRouter(handler *StopHandler) *gin.Engine {
	r := gin.New()
	r.POST("/trips/:id/stops", handler.AddStop)
	r.GET("/trips/:id/stops", handler.GetStops)
	r.DELETE("/trips/:id/stops/:stop_id", handler.DeleteStop)
	return r
}

func TestStopHandler_AddStop(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		stopSvc := &mockStopService{
			addStopFn: func(tripID uint, name, startDate, endDate string) (*models.Stop, error) {
				return &models.Stop{
					Base:      models.Base{ID: 1},
					TripID:    tripID,
					Name:      name,
					StartDate: startDate,
					EndDate:   endDate,
				}, nil
			},
		}
		handler := NewStopHandler(stopSvc)
		r := setupStopRouter(handler)

		rec := doRequest(r, "POST", "/trips/1/stops",
			`{"name":"Rome","start_date":"2025-06-01","end_date":"2025-06-03"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		stop := result["stop"].(map[string]interface{})
		if stop["name"] != "Rome" {
			t.Errorf("expected Rome, got %v", stop["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewStopHandler(&mockStopService{})
		r := setupStopRouter(handler)

		rec := doRequest(r, "POST", "/trips/1/stops",
			`{"start_date":"2025-06-01","end_date":"2025-06-03"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when stop outside trip dates", func(t *testing.T) {
		stopSvc := &mockStopService{
			addStopFn: func(_ uint, _, _, _ string) (*models.Stop, error) {
				return nil, apperrors.ErrStopOutOfRange
			},
		}
		handler := NewStopHandler(stopSvc)
		r := setupStopRouter(handler)

		rec := doRequest(r, "POST", "/trips/1/stops",
			`{"name":"Rome","start_date":"2025-07-01","end_date":"2025-07-03"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STOP_OUT_OF_RANGE")
	})
}

func TestStopHandler_GetStops(t *testing.T) {
	t.Run("returns 200 with stops", func(t *testing.T) {
		stopSvc := &mockStopService{
			getTripStopsFn: func(_ uint) ([]models.Stop, error) {
				return []models.Stop{
					{Base: models.Base{ID: 1}, Name: "Rome"},
					{Base: models.Base{ID: 2}, Name: "Florence"},
				}, nil
			},
		}
		handler := NewStopHandler(stopSvc)
		r := setupStopRouter(handler)

		rec := doRequest(r, "GET", "/trips/1/stops", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		stops := result["stops"].([]interface{})
		if len(stops) != 2 {
			t.Errorf("expected 2 stops, got %d", len(stops))
		}
	})
}

func TestStopHandler_DeleteStop(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewStopHandler(&mockStopService{})
		r := setupStopRouter(handler)

		rec := doRequest(r, "DELETE", "/trips/1/stops/2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when stop not found", func(t *testing.T) {
		stopSvc := &mockStopService{
			deleteStopFn: func(_, _ uint) error {
				return apperrors.ErrNotFound
			},
		}
		handler := NewStopHandler(stopSvc)
		r := setupStopRouter(handler)

		rec := doRequest(r, "DELETE", "/trips/1/stops/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
