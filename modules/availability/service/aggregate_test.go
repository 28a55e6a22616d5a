package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/prasen-shakya/Schedulify/modules/availability/dto"
	"github.com/prasen-shakya/Schedulify/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func row(id uuid.UUID, name, date, start, end string) entity.UserAvailabilityRow {
	return entity.UserAvailabilityRow{
		UserName:  name,
		UserID:    id,
		Date:      day(date),
		StartTime: start,
		EndTime:   end,
	}
}

func TestGroupByUserGroupsByUserThenDate(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "09:00:00", "11:00:00"),
		row(bob, "Bob", "2025-01-02", "10:00:00", "12:00:00"),
		row(alice, "Alice", "2025-01-02", "14:00:00", "15:00:00"),
		row(alice, "Alice", "2025-01-03", "09:00:00", "10:00:00"),
	}

	grouped := GroupByUser(rows)

	assert.Len(t, grouped, 2)
	assert.Equal(t, "Alice", grouped[0].User)
	assert.Equal(t, alice.String(), grouped[0].UserID)
	assert.Equal(t, "Bob", grouped[1].User)

	assert.Len(t, grouped[0].Availability, 2)
	assert.Equal(t, "2025-01-02", grouped[0].Availability[0].Date)
	assert.Equal(t, []dto.TimeRange{
		{StartTime: "09:00:00", EndTime: "11:00:00"},
		{StartTime: "14:00:00", EndTime: "15:00:00"},
	}, grouped[0].Availability[0].Times)
	assert.Equal(t, "2025-01-03", grouped[0].Availability[1].Date)

	assert.Len(t, grouped[1].Availability, 1)
	assert.Equal(t, []dto.TimeRange{
		{StartTime: "10:00:00", EndTime: "12:00:00"},
	}, grouped[1].Availability[0].Times)
}

func TestGroupByUserPreservesFirstEncounterOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(c, "Carol", "2025-01-02", "09:00:00", "10:00:00"),
		row(a, "Alice", "2025-01-02", "09:00:00", "10:00:00"),
		row(b, "Bob", "2025-01-02", "09:00:00", "10:00:00"),
		row(c, "Carol", "2025-01-03", "09:00:00", "10:00:00"),
	}

	grouped := GroupByUser(rows)

	names := []string{grouped[0].User, grouped[1].User, grouped[2].User}
	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, names)
}

func TestGroupByUserDoesNotMergeOverlappingRanges(t *testing.T) {
	alice := uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "09:00:00", "11:00:00"),
		row(alice, "Alice", "2025-01-02", "10:00:00", "12:00:00"),
	}

	grouped := GroupByUser(rows)

	assert.Len(t, grouped[0].Availability[0].Times, 2)
}

func TestGroupByUserSkipsMalformedRows(t *testing.T) {
	alice := uuid.New()
	rows := []entity.UserAvailabilityRow{
		{UserName: "", UserID: alice, Date: day("2025-01-02"), StartTime: "09:00:00", EndTime: "10:00:00"},
		{UserName: "Alice", UserID: alice, StartTime: "09:00:00", EndTime: "10:00:00"},
		row(alice, "Alice", "2025-01-02", "09:00:00", "10:00:00"),
	}

	grouped := GroupByUser(rows)

	assert.Len(t, grouped, 1)
	assert.Len(t, grouped[0].Availability, 1)
	assert.Len(t, grouped[0].Availability[0].Times, 1)
}

func TestGroupByUserIsIdempotent(t *testing.T) {
	alice := uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "09:00:00", "11:00:00"),
		row(alice, "Alice", "2025-01-03", "10:00:00", "12:00:00"),
	}

	first := GroupByUser(rows)
	second := GroupByUser(rows)

	assert.Equal(t, first, second)
}

func grouped1(id uuid.UUID, name, date, start, end string) []dto.UserAvailability {
	return GroupByUser([]entity.UserAvailabilityRow{row(id, name, date, start, end)})
}

func TestBuildHourCoverageMapMarksEndExclusiveHours(t *testing.T) {
	alice := uuid.New()
	grouped := grouped1(alice, "Alice", "2025-01-02", "09:00:00", "12:00:00")

	coverage := BuildHourCoverageMap(grouped, "2025-01-01", "2025-01-07", 0, 23)

	assert.Equal(t, []string{"2025-01-02-9", "2025-01-02-10", "2025-01-02-11"}, coverage.Keys())
	assert.Equal(t, []string{alice.String()}, coverage.Get("2025-01-02-9"))
	assert.Nil(t, coverage.Get("2025-01-02-12"))
	assert.Nil(t, coverage.Get("2025-01-02-8"))
}

func TestBuildHourCoverageMapUnionsUsersInInsertionOrder(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "09:00:00", "11:00:00"),
		row(bob, "Bob", "2025-01-02", "10:00:00", "12:00:00"),
	}

	coverage := BuildHourCoverageMap(GroupByUser(rows), "2025-01-01", "2025-01-07", 0, 23)

	assert.Equal(t, []string{alice.String()}, coverage.Get("2025-01-02-9"))
	assert.Equal(t, []string{alice.String(), bob.String()}, coverage.Get("2025-01-02-10"))
	assert.Equal(t, []string{bob.String()}, coverage.Get("2025-01-02-11"))
}

func TestBuildHourCoverageMapDeduplicatesUserPerHour(t *testing.T) {
	alice := uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "09:00:00", "10:00:00"),
		row(alice, "Alice", "2025-01-02", "09:30:00", "10:30:00"),
	}

	coverage := BuildHourCoverageMap(GroupByUser(rows), "2025-01-01", "2025-01-07", 0, 23)

	assert.Equal(t, []string{alice.String()}, coverage.Get("2025-01-02-9"))
}

func TestBuildHourCoverageMapClampsToBounds(t *testing.T) {
	alice := uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "07:00:00", "20:00:00"),
		row(alice, "Alice", "2025-01-09", "09:00:00", "10:00:00"),
	}

	coverage := BuildHourCoverageMap(GroupByUser(rows), "2025-01-01", "2025-01-07", 9, 17)

	for _, key := range coverage.Keys() {
		assert.NotContains(t, key, "2025-01-09")
	}
	assert.Nil(t, coverage.Get("2025-01-02-7"))
	assert.Nil(t, coverage.Get("2025-01-02-8"))
	assert.NotNil(t, coverage.Get("2025-01-02-9"))
	assert.NotNil(t, coverage.Get("2025-01-02-17"))
	assert.Nil(t, coverage.Get("2025-01-02-18"))
}

func TestBuildHourCoverageMapSkipsMalformedTimes(t *testing.T) {
	alice := uuid.New()
	rows := []entity.UserAvailabilityRow{
		row(alice, "Alice", "2025-01-02", "not-a-time", "10:00:00"),
		row(alice, "Alice", "2025-01-02", "11:00:00", "12:00:00"),
	}

	coverage := BuildHourCoverageMap(GroupByUser(rows), "2025-01-01", "2025-01-07", 0, 23)

	assert.Equal(t, []string{"2025-01-02-11"}, coverage.Keys())
}

func TestCoverageMapMarshalsInInsertionOrder(t *testing.T) {
	m := NewCoverageMap()
	m.Add("2025-01-02-11", "u1")
	m.Add("2025-01-02-9", "u1")
	m.Add("2025-01-02-9", "u2")
	m.Add("2025-01-02-9", "u1")

	data, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, `{"2025-01-02-11":["u1"],"2025-01-02-9":["u1","u2"]}`, string(data))
}

func TestCoverageMapEmptyMarshalsToEmptyObject(t *testing.T) {
	data, err := json.Marshal(NewCoverageMap())
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
