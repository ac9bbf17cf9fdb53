package services

import (
	"testing"

	"tripkit/internal/models"
	"tripkit/internal/testutil"
)

func TestGetDay(t *testing.T) {
	t.Run("resolves_location_through_stops", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip := testutil.CreateTestTripTo(t, db, "Italy", "2025-06-01", "2025-06-02")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		testutil.CreateTestStop(t, db, trip.ID, "Rome", "2025-06-01", "2025-06-01")

		view, err := svc.GetDay(trip.ID, day.ID)
		testutil.AssertNoError(t, err)
		if view.Location != "Rome" {
			t.Errorf("expected Rome, got %s", view.Location)
		}
	})

	t.Run("wrong_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip1 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-02")
		trip2 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-02")
		day := testutil.CreateTestDay(t, db, trip1.ID, 1, "2025-06-01")

		_, err := svc.GetDay(trip2.ID, day.ID)
		testutil.AssertAppError(t, err, "DAY_NOT_FOUND")
	})
}

func TestUpdateDays(t *testing.T) {
	t.Run("saves_slot_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-02")
		day1 := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		day2 := testutil.CreateTestDay(t, db, trip.ID, 2, "2025-06-02")

		saved, err := svc.UpdateDays(trip.ID, []DayUpdate{
			{DayID: day1.ID, DayFields: DayFields{MorningTitle: "Forum", MorningDescription: "Walk the forum"}},
			{DayID: day2.ID, DayFields: DayFields{EveningDescription: "Dinner in Trastevere"}},
		})
		testutil.AssertNoError(t, err)
		if len(saved) != 2 {
			t.Fatalf("expected 2 saved days, got %d", len(saved))
		}

		var reloaded models.ItineraryDay
		db.First(&reloaded, day1.ID)
		if reloaded.MorningTitle != "Forum" || reloaded.MorningDescription != "Walk the forum" {
			t.Errorf("day not saved: %+v", reloaded)
		}
	})

	t.Run("overwrites_with_blank", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		if err := db.Model(day).Update("morning_description", "old text").Error; err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		_, err := svc.UpdateDays(trip.ID, []DayUpdate{{DayID: day.ID}})
		testutil.AssertNoError(t, err)

		var reloaded models.ItineraryDay
		db.First(&reloaded, day.ID)
		if reloaded.MorningDescription != "" {
			t.Errorf("expected blank save to clear, got %q", reloaded.MorningDescription)
		}
	})

	t.Run("foreign_day_fails_whole_batch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip1 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		trip2 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		mine := testutil.CreateTestDay(t, db, trip1.ID, 1, "2025-06-01")
		theirs := testutil.CreateTestDay(t, db, trip2.ID, 1, "2025-06-01")

		_, err := svc.UpdateDays(trip1.ID, []DayUpdate{
			{DayID: mine.ID, DayFields: DayFields{MorningTitle: "Should roll back"}},
			{DayID: theirs.ID, DayFields: DayFields{MorningTitle: "Nope"}},
		})
		testutil.AssertAppError(t, err, "DAY_NOT_FOUND")

		var reloaded models.ItineraryDay
		db.First(&reloaded, mine.ID)
		if reloaded.MorningTitle != "" {
			t.Error("expected transaction rollback to undo the first update")
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("fills_empty_slots_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip := testutil.CreateTestTripTo(t, db, "Lisbon", "2025-06-01", "2025-06-02")
		day1 := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		testutil.CreateTestDay(t, db, trip.ID, 2, "2025-06-02")
		if err := db.Model(day1).Update("morning_description", "My own plan").Error; err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		touched, err := svc.Generate(trip.ID)
		testutil.AssertNoError(t, err)
		if touched != 2 {
			t.Errorf("expected 2 days touched, got %d", touched)
		}

		var reloaded models.ItineraryDay
		db.First(&reloaded, day1.ID)
		if reloaded.MorningDescription != "My own plan" {
			t.Errorf("manual edit overwritten: %q", reloaded.MorningDescription)
		}
		if reloaded.AfternoonDescription == "" || reloaded.EveningDescription == "" {
			t.Error("expected empty slots filled")
		}
	})

	t.Run("second_run_touches_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-02")
		testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		testutil.CreateTestDay(t, db, trip.ID, 2, "2025-06-02")

		_, err := svc.Generate(trip.ID)
		testutil.AssertNoError(t, err)

		touched, err := svc.Generate(trip.ID)
		testutil.AssertNoError(t, err)
		if touched != 0 {
			t.Errorf("expected idempotent second run, touched %d", touched)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewItineraryService(db)

		_, err := svc.Generate(9999)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}
