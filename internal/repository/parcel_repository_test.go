package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parcelhub/internal/model"
)

// newTestDB opens an in-memory database and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// keep every query on the single in-memory connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Parcel{},
		&model.Rider{},
		&model.Payment{},
		&model.TrackingEvent{},
	))
	return db
}

func insertParcel(t *testing.T, db *gorm.DB, parcel *model.Parcel) uuid.UUID {
	t.Helper()
	if parcel.ID == uuid.Nil {
		parcel.ID = uuid.New()
	}
	if parcel.TrackingID == "" {
		parcel.TrackingID = model.NewTrackingID(parcel.ID)
	}
	require.NoError(t, db.Create(parcel).Error)
	return parcel.ID
}

func TestParcelRepository_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewParcelRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// inserted out of chronological order
	middle := insertParcel(t, db, &model.Parcel{
		CreatedBy:      "a@example.com",
		DeliveryStatus: model.DeliveryStatusPending,
		CreatedAt:      base.Add(time.Hour),
	})
	newest := insertParcel(t, db, &model.Parcel{
		CreatedBy:      "a@example.com",
		DeliveryStatus: model.DeliveryStatusPending,
		CreatedAt:      base.Add(2 * time.Hour),
	})
	oldest := insertParcel(t, db, &model.Parcel{
		CreatedBy:      "a@example.com",
		DeliveryStatus: model.DeliveryStatusPending,
		CreatedAt:      base,
	})

	parcels, err := repo.List(ctx, ParcelFilter{})
	assert.NoError(t, err)
	require.Len(t, parcels, 3)
	assert.Equal(t, newest, parcels[0].ID)
	assert.Equal(t, middle, parcels[1].ID)
	assert.Equal(t, oldest, parcels[2].ID)
}

func TestParcelRepository_List_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewParcelRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mine := insertParcel(t, db, &model.Parcel{
		CreatedBy:      "a@example.com",
		DeliveryStatus: model.DeliveryStatusPending,
		CreatedAt:      base,
	})
	paid := insertParcel(t, db, &model.Parcel{
		CreatedBy:      "a@example.com",
		DeliveryStatus: model.DeliveryStatusDelivered,
		IsPaid:         true,
		CreatedAt:      base.Add(time.Hour),
	})
	insertParcel(t, db, &model.Parcel{
		CreatedBy:      "b@example.com",
		DeliveryStatus: model.DeliveryStatusPending,
		CreatedAt:      base.Add(2 * time.Hour),
	})

	byEmail, err := repo.List(ctx, ParcelFilter{Email: "a@example.com"})
	assert.NoError(t, err)
	require.Len(t, byEmail, 2)
	assert.Equal(t, paid, byEmail[0].ID)
	assert.Equal(t, mine, byEmail[1].ID)

	byStatus, err := repo.List(ctx, ParcelFilter{DeliveryStatus: model.DeliveryStatusDelivered})
	assert.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, paid, byStatus[0].ID)

	isPaid := true
	byPaid, err := repo.List(ctx, ParcelFilter{Email: "a@example.com", IsPaid: &isPaid})
	assert.NoError(t, err)
	require.Len(t, byPaid, 1)
	assert.Equal(t, paid, byPaid[0].ID)
}

func TestParcelRepository_ListByRider_NewestFirstOpenOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewParcelRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assigned := insertParcel(t, db, &model.Parcel{
		AssignedRiderEmail: "rider@example.com",
		DeliveryStatus:     model.DeliveryStatusRiderAssigned,
		CreatedAt:          base,
	})
	moving := insertParcel(t, db, &model.Parcel{
		AssignedRiderEmail: "rider@example.com",
		DeliveryStatus:     model.DeliveryStatusInTransit,
		CreatedAt:          base.Add(2 * time.Hour),
	})
	// delivered is outside the requested statuses
	insertParcel(t, db, &model.Parcel{
		AssignedRiderEmail: "rider@example.com",
		DeliveryStatus:     model.DeliveryStatusDelivered,
		CreatedAt:          base.Add(time.Hour),
	})
	// other rider's parcel never shows up
	insertParcel(t, db, &model.Parcel{
		AssignedRiderEmail: "other@example.com",
		DeliveryStatus:     model.DeliveryStatusInTransit,
		CreatedAt:          base.Add(3 * time.Hour),
	})

	parcels, err := repo.ListByRider(ctx, "rider@example.com", []model.DeliveryStatus{
		model.DeliveryStatusRiderAssigned,
		model.DeliveryStatusInTransit,
	})
	assert.NoError(t, err)
	require.Len(t, parcels, 2)
	assert.Equal(t, moving, parcels[0].ID)
	assert.Equal(t, assigned, parcels[1].ID)
}

func TestParcelRepository_UpdateFieldsInStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewParcelRepository(db)
	ctx := context.Background()
	assignable := []model.DeliveryStatus{model.DeliveryStatusPending, model.DeliveryStatusRiderAssigned}
	fields := map[string]interface{}{"delivery_status": model.DeliveryStatusRiderAssigned}

	pending := insertParcel(t, db, &model.Parcel{DeliveryStatus: model.DeliveryStatusPending})
	moving := insertParcel(t, db, &model.Parcel{DeliveryStatus: model.DeliveryStatusInTransit})

	modified, err := repo.UpdateFieldsInStatus(ctx, pending, assignable, fields)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	// already past the assignable window counts as zero rows
	modified, err = repo.UpdateFieldsInStatus(ctx, moving, assignable, fields)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	modified, err = repo.UpdateFieldsInStatus(ctx, uuid.New(), assignable, fields)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestParcelRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewParcelRepository(db)
	ctx := context.Background()

	id := insertParcel(t, db, &model.Parcel{DeliveryStatus: model.DeliveryStatusPending})

	modified, err := repo.Delete(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	modified, err = repo.Delete(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}
