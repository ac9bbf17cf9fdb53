package services

import (
	"testing"

	"tripkit/internal/models"
	"tripkit/internal/testutil"
)

func TestAddItem(t *testing.T) {
	t.Run("valid_place_with_slot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")

		item, err := svc.AddItem(trip.ID, day.ID, models.CategoryPlace, "Colosseum", testutil.SlotPtr("Morning"))
		testutil.AssertNoError(t, err)
		if item.Slot == nil || *item.Slot != "morning" {
			t.Errorf("expected normalized slot, got %v", item.Slot)
		}
		if item.Checked || item.Hidden {
			t.Error("expected new item unchecked and visible")
		}
	})

	t.Run("hotel_slot_dropped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")

		item, err := svc.AddItem(trip.ID, day.ID, models.CategoryHotel, "Hotel Roma", testutil.SlotPtr("morning"))
		testutil.AssertNoError(t, err)
		if item.Slot != nil {
			t.Errorf("expected no slot on hotel, got %v", *item.Slot)
		}
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")

		_, err := svc.AddItem(trip.ID, day.ID, "museum", "The Louvre", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("blank_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")

		_, err := svc.AddItem(trip.ID, day.ID, models.CategoryPlace, "   ", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("wrong_trip_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip1 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		trip2 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip1.ID, 1, "2025-06-01")

		_, err := svc.AddItem(trip2.ID, day.ID, models.CategoryPlace, "Colosseum", nil)
		testutil.AssertAppError(t, err, "DAY_NOT_FOUND")
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("toggle_checked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		item := testutil.CreateTestItem(t, db, day.ID, models.CategoryPlace, "Colosseum", false, nil)

		checked := true
		updated, err := svc.UpdateItem(trip.ID, item.ID, &checked, nil)
		testutil.AssertNoError(t, err)
		if !updated.Checked {
			t.Error("expected item checked")
		}
	})

	t.Run("set_and_clear_slot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		item := testutil.CreateTestItem(t, db, day.ID, models.CategoryRestaurant, "Trattoria", false, nil)

		updated, err := svc.UpdateItem(trip.ID, item.ID, nil, testutil.SlotPtr("dinner"))
		testutil.AssertNoError(t, err)
		if updated.Slot == nil || *updated.Slot != "dinner" {
			t.Fatalf("expected dinner slot, got %v", updated.Slot)
		}

		updated, err = svc.UpdateItem(trip.ID, item.ID, nil, testutil.SlotPtr(""))
		testutil.AssertNoError(t, err)
		if updated.Slot != nil {
			t.Errorf("expected slot cleared, got %v", *updated.Slot)
		}
	})

	t.Run("invalid_slot_for_category_dropped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		item := testutil.CreateTestItem(t, db, day.ID, models.CategoryPlace, "Colosseum", false, nil)

		updated, err := svc.UpdateItem(trip.ID, item.ID, nil, testutil.SlotPtr("dinner"))
		testutil.AssertNoError(t, err)
		if updated.Slot != nil {
			t.Errorf("expected meal slot dropped on a place, got %v", *updated.Slot)
		}
	})

	t.Run("wrong_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip1 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		trip2 := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip1.ID, 1, "2025-06-01")
		item := testutil.CreateTestItem(t, db, day.ID, models.CategoryPlace, "Colosseum", false, nil)

		checked := true
		_, err := svc.UpdateItem(trip2.ID, item.ID, &checked, nil)
		testutil.AssertAppError(t, err, "ITEM_NOT_FOUND")
	})
}

func TestHideItem(t *testing.T) {
	t.Run("hidden_item_leaves_views_but_stays_stored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)
		trips := NewTripService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		day := testutil.CreateTestDay(t, db, trip.ID, 1, "2025-06-01")
		item := testutil.CreateTestItem(t, db, day.ID, models.CategoryPlace, "Colosseum", true, nil)

		err := svc.HideItem(trip.ID, item.ID)
		testutil.AssertNoError(t, err)

		detail, err := trips.GetTripDetail(trip.ID)
		testutil.AssertNoError(t, err)
		if len(detail.Days[0].Items[models.CategoryPlace]) != 0 {
			t.Error("expected hidden item excluded from day view")
		}

		var reloaded models.ChecklistItem
		if err := db.First(&reloaded, item.ID).Error; err != nil {
			t.Fatalf("expected row retained: %v", err)
		}
		if !reloaded.Hidden {
			t.Error("expected hidden flag set")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db)

		trip := testutil.CreateTestTrip(t, db, "2025-06-01", "2025-06-01")
		err := svc.HideItem(trip.ID, 9999)
		testutil.AssertAppError(t, err, "ITEM_NOT_FOUND")
	})
}
