package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/services"
)

// --- mock csv service ---

type mockCSVService struct {
	importNewTripFn  func(r io.Reader, destination, travelStyle string) (*models.Trip, error)
	importIntoTripFn func(tripID uint, r io.Reader) (int, error)
	exportTripFn     func(tripID uint, w io.Writer) error
}

func (m *mockCSVService) ImportNewTrip(r io.Reader, destination, travelStyle string) (*models.Trip, error) {
	if m.importNewTripFn != nil {
		return m.importNewTripFn(r, destination, travelStyle)
	}
	return &models.Trip{}, nil
}

func (m *mockCSVService) ImportIntoTrip(tripID uint, r io.Reader) (int, error) {
	if m.importIntoTripFn != nil {
		return m.importIntoTripFn(tripID, r)
	}
	return 0, nil
}

func (m *mockCSVService) ExportTrip(tripID uint, w io.Writer) error {
	if m.exportTripFn != nil {
		return m.exportTripFn(tripID, w)
	}
	return nil
}

// verify interface compliance
var _ services.CSVServicer = (*mockCSVService)(nil)

func setupCSVRouter(handler *CSVHandler) *gin.Engine {
	r := gin.New()
	r.POST("/trips/import", handler.ImportNewTrip)
	r.POST("/trips/:id/import", handler.ImportIntoTrip)
	r.GET("/trips/:id/export", handler.ExportTrip)
	return r
}

// doUpload posts a multipart form with a CSV file plus extra fields.
func doUpload(r *gin.Engine, path, csvBody string, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "itinerary.csv")
	part.Write([]byte(csvBody))
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	writer.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCSVHandler_ImportNewTrip(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var capturedDestination string
		csvSvc := &mockCSVService{
			importNewTripFn: func(r io.Reader, destination, travelStyle string) (*models.Trip, error) {
				capturedDestination = destination
				body, _ := io.ReadAll(r)
				if !strings.Contains(string(body), "Colosseum") {
					t.Errorf("expected file contents passed to service, got %q", string(body))
				}
				return &models.Trip{Base: models.Base{ID: 1}, Destination: destination}, nil
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doUpload(r, "/trips/import",
			"date,name\n2025-06-01,Colosseum\n",
			map[string]string{"destination": "Rome", "travel_style": "Foodie"})

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedDestination != "Rome" {
			t.Errorf("expected Rome, got %q", capturedDestination)
		}
	})

	t.Run("returns 400 without file", func(t *testing.T) {
		handler := NewCSVHandler(&mockCSVService{})
		r := setupCSVRouter(handler)

		rec := doRequest(r, "POST", "/trips/import", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when no rows are valid", func(t *testing.T) {
		csvSvc := &mockCSVService{
			importNewTripFn: func(_ io.Reader, _, _ string) (*models.Trip, error) {
				return nil, apperrors.ErrNoValidCSVRows
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doUpload(r, "/trips/import", "date,name\n", nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_VALID_CSV_ROWS")
	})
}

func TestCSVHandler_ImportIntoTrip(t *testing.T) {
	t.Run("returns 200 with items added", func(t *testing.T) {
		csvSvc := &mockCSVService{
			importIntoTripFn: func(tripID uint, _ io.Reader) (int, error) {
				return 4, nil
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doUpload(r, "/trips/1/import", "date,name\n2025-06-01,Colosseum\n", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["items_added"].(float64) != 4 {
			t.Errorf("expected items_added=4, got %v", result["items_added"])
		}
	})

	t.Run("returns 400 when all rows out of range", func(t *testing.T) {
		csvSvc := &mockCSVService{
			importIntoTripFn: func(_ uint, _ io.Reader) (int, error) {
				return 0, apperrors.ErrCSVOutOfRange
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doUpload(r, "/trips/1/import", "date,name\n2030-01-01,Colosseum\n", nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CSV_OUT_OF_RANGE")
	})

	t.Run("returns 404 when trip not found", func(t *testing.T) {
		csvSvc := &mockCSVService{
			importIntoTripFn: func(_ uint, _ io.Reader) (int, error) {
				return 0, apperrors.ErrTripNotFound
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doUpload(r, "/trips/999/import", "date,name\n2025-06-01,Colosseum\n", nil)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCSVHandler_ExportTrip(t *testing.T) {
	t.Run("returns 200 with csv attachment", func(t *testing.T) {
		csvSvc := &mockCSVService{
			exportTripFn: func(_ uint, w io.Writer) error {
				w.Write([]byte("date,time_of_day,category,name,city,meal,selected\n"))
				return nil
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doRequest(r, "GET", "/trips/7/export", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "text/csv" {
			t.Errorf("expected text/csv, got %q", got)
		}
		if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=trip_7_itinerary.csv" {
			t.Errorf("unexpected disposition %q", got)
		}
		if !strings.HasPrefix(rec.Body.String(), "date,") {
			t.Errorf("expected csv body, got %q", rec.Body.String())
		}
	})

	t.Run("returns 404 when trip not found", func(t *testing.T) {
		csvSvc := &mockCSVService{
			exportTripFn: func(_ uint, _ io.Writer) error {
				return apperrors.ErrTripNotFound
			},
		}
		handler := NewCSVHandler(csvSvc)
		r := setupCSVRouter(handler)

		rec := doRequest(r, "GET", "/trips/999/export", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRIP_NOT_FOUND")
	})
}
