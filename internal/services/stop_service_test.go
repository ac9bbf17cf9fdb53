package services

import (
	"testing"

	"tripkit/internal/testutil"
)

func TestAddStop(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		stop, err := svc.AddStop(trip.ID, "Rome", "2025-06-01", "2025-06-04")
		testutil.AssertNoError(t, err)
		if stop.ID == 0 || stop.Name != "Rome" {
			t.Errorf("unexpected stop: %+v", stop)
		}
	})

	t.Run("bounds_inclusive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		_, err := svc.AddStop(trip.ID, "Full Span", "2025-06-01", "2025-06-10")
		testutil.AssertNoError(t, err)
	})

	t.Run("outside_trip_dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		_, err := svc.AddStop(trip.ID, "Early", "2025-05-30", "2025-06-02")
		testutil.AssertAppError(t, err, "STOP_OUT_OF_RANGE")

		_, err = svc.AddStop(trip.ID, "Late", "2025-06-09", "2025-06-12")
		testutil.AssertAppError(t, err, "STOP_OUT_OF_RANGE")
	})

	t.Run("end_before_start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		_, err := svc.AddStop(trip.ID, "Backwards", "2025-06-05", "2025-06-02")
		testutil.AssertAppError(t, err, "END_BEFORE_START")
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		_, err := svc.AddStop(trip.ID, "", "2025-06-01", "2025-06-02")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("trip_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		_, err := svc.AddStop(9999, "Rome", "2025-06-01", "2025-06-02")
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})

	t.Run("overlapping_stops_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		_, err := svc.AddStop(trip.ID, "Rome", "2025-06-01", "2025-06-05")
		testutil.AssertNoError(t, err)
		_, err = svc.AddStop(trip.ID, "Florence", "2025-06-04", "2025-06-08")
		testutil.AssertNoError(t, err)
	})
}

func TestGetTripStops(t *testing.T) {
	t.Run("ordered_by_start_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		testutil.CreateTestStop(t, db, trip.ID, "Florence", "2025-06-05", "2025-06-08")
		testutil.CreateTestStop(t, db, trip.ID, "Rome", "2025-06-01", "2025-06-04")

		stops, err := svc.GetTripStops(trip.ID)
		testutil.AssertNoError(t, err)
		if len(stops) != 2 {
			t.Fatalf("expected 2 stops, got %d", len(stops))
		}
		if stops[0].Name != "Rome" || stops[1].Name != "Florence" {
			t.Errorf("unexpected order: %s, %s", stops[0].Name, stops[1].Name)
		}
	})

	t.Run("trip_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		_, err := svc.GetTripStops(9999)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}

func TestDeleteStop(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		stop := testutil.CreateTestStop(t, db, trip.ID, "Rome", "2025-06-01", "2025-06-04")

		err := svc.DeleteStop(trip.ID, stop.ID)
		testutil.AssertNoError(t, err)

		stops, err := svc.GetTripStops(trip.ID)
		testutil.AssertNoError(t, err)
		if len(stops) != 0 {
			t.Errorf("expected no stops, got %d", len(stops))
		}
	})

	t.Run("wrong_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db)

		trip1 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		trip2 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-10")
		stop := testutil.CreateTestStop(t, db, trip1.ID, "Rome", "2025-06-01", "2025-06-04")

		err := svc.DeleteStop(trip2.ID, stop.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
