package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/pkg/errors"
)

func TestDoctorAdapter_GetByID(t *testing.T) {
	adapter := NewDoctorAdapter()
	ctx := context.Background()

	t.Run("returns the doctor", func(t *testing.T) {
		doctor, err := adapter.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Dr. James Wong", doctor.Name)
		assert.Equal(t, 12, doctor.ExperienceYears)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := adapter.GetByID(ctx, 999)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	})

	t.Run("mutating the result does not touch the store", func(t *testing.T) {
		doctor, err := adapter.GetByID(ctx, 1)
		require.NoError(t, err)

		doctor.AvailableSlots[0] = "mutated"

		again, err := adapter.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "2:30 PM", again.AvailableSlots[0])
	})
}

func TestDoctorAdapter_Search(t *testing.T) {
	adapter := NewDoctorAdapter()
	ctx := context.Background()

	t.Run("empty params return everything in store order", func(t *testing.T) {
		doctors, err := adapter.Search(ctx, repositories.DoctorSearchParams{})

		require.NoError(t, err)
		require.Len(t, doctors, 5)
		assert.Equal(t, 1, doctors[0].ID)
		assert.Equal(t, 5, doctors[4].ID)
	})

	t.Run("department match is case-insensitive", func(t *testing.T) {
		doctors, err := adapter.Search(ctx, repositories.DoctorSearchParams{Department: "cardiology"})

		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Sarah Chen", doctors[0].Name)
	})

	t.Run("filters compose by AND", func(t *testing.T) {
		doctors, err := adapter.Search(ctx, repositories.DoctorSearchParams{
			HospitalID: 1,
			MinRating:  4.7,
		})

		require.NoError(t, err)
		require.Len(t, doctors, 2)
		assert.Equal(t, "Dr. James Wong", doctors[0].Name)
		assert.Equal(t, "Dr. Sarah Chen", doctors[1].Name)
	})

	t.Run("language filter matches by substring", func(t *testing.T) {
		doctors, err := adapter.Search(ctx, repositories.DoctorSearchParams{Language: "malay"})

		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Ahmad Rahman", doctors[0].Name)

		doctors, err = adapter.Search(ctx, repositories.DoctorSearchParams{Language: "mandar"})

		require.NoError(t, err)
		require.Len(t, doctors, 3)
		for _, d := range doctors {
			assert.Contains(t, d.Languages, "Mandarin")
		}
	})

	t.Run("min experience excludes juniors", func(t *testing.T) {
		doctors, err := adapter.Search(ctx, repositories.DoctorSearchParams{MinExperienceYears: 14})

		require.NoError(t, err)
		require.Len(t, doctors, 2)
	})
}

func TestDoctorAdapter_BookSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("booking removes the slot and bumps the queue", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		booked, err := adapter.BookSlot(ctx, 1, "3:00 PM")

		require.NoError(t, err)
		assert.True(t, booked)

		doctor, err := adapter.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"2:30 PM", "4:15 PM"}, doctor.AvailableSlots)
		assert.Equal(t, 4, doctor.PatientsInQueue)
	})

	t.Run("double booking the same slot fails the second time", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		first, err := adapter.BookSlot(ctx, 1, "2:30 PM")
		require.NoError(t, err)
		second, err := adapter.BookSlot(ctx, 1, "2:30 PM")
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)

		doctor, err := adapter.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, doctor.PatientsInQueue)
	})

	t.Run("unknown slot reports false without error", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		booked, err := adapter.BookSlot(ctx, 1, "11:00 PM")

		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("unknown doctor returns not found", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		_, err := adapter.BookSlot(ctx, 999, "2:30 PM")

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	})
}

func TestDoctorAdapter_ReleaseSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("release restores the slot and decrements the queue", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		booked, err := adapter.BookSlot(ctx, 2, "3:30 PM")
		require.NoError(t, err)
		require.True(t, booked)

		err = adapter.ReleaseSlot(ctx, 2, "3:30 PM")
		require.NoError(t, err)

		doctor, err := adapter.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, doctor.HasSlot("3:30 PM"))
		assert.Equal(t, 1, doctor.PatientsInQueue)
	})

	t.Run("queue floors at zero", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		for i := 0; i < 5; i++ {
			err := adapter.ReleaseSlot(ctx, 2, "9:00 PM")
			require.NoError(t, err)
		}

		doctor, err := adapter.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, doctor.PatientsInQueue)
	})

	t.Run("releasing an available slot does not duplicate it", func(t *testing.T) {
		adapter := NewDoctorAdapter()

		err := adapter.ReleaseSlot(ctx, 1, "2:30 PM")
		require.NoError(t, err)

		doctor, err := adapter.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, doctor.AvailableSlots, 3)
	})
}
