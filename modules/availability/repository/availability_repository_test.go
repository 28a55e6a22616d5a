package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/modules/availability/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// The mock runs in ordered mode, so these tests pin the exact statement
// sequence each branch of the transaction issues; an extra or missing
// statement fails ExpectationsWereMet.

func newMockRepo(t *testing.T) (*AvailabilityRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewAvailabilityRepository(database.NewDatabase(db)), mock
}

func testSlot(eventID, userID uuid.UUID, date, start, end string) entity.AvailabilitySlot {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.AvailabilitySlot{
		ID:        uuid.New(),
		UserID:    userID,
		EventID:   eventID,
		Date:      d,
		StartTime: start,
		EndTime:   end,
	}
}

func expectMembershipCheck(mock sqlmock.Sqlmock, eventID, userID uuid.UUID, isMember bool) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(eventID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(isMember))
}

func expectSlotInsert(mock sqlmock.Sqlmock, slot entity.AvailabilitySlot) {
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO availability")).
		WithArgs(slot.ID, slot.UserID, slot.EventID, slot.Date, slot.StartTime, slot.EndTime).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestReplaceAvailabilityFirstSubmissionInsertsMembership(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()
	slot := testSlot(eventID, userID, "2025-01-02", "09:00:00", "10:00:00")

	mock.ExpectBegin()
	expectMembershipCheck(mock, eventID, userID, false)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_participants")).
		WithArgs(eventID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectSlotInsert(mock, slot)
	mock.ExpectCommit()

	err := repo.ReplaceAvailability(context.Background(), eventID, userID, []entity.AvailabilitySlot{slot})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAvailabilityResubmissionKeepsMembership(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()
	slot := testSlot(eventID, userID, "2025-01-03", "14:00:00", "16:00:00")

	// existing member: prior rows are deleted and no second membership row
	// is ever inserted
	mock.ExpectBegin()
	expectMembershipCheck(mock, eventID, userID, true)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability")).
		WithArgs(eventID, userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	expectSlotInsert(mock, slot)
	mock.ExpectCommit()

	err := repo.ReplaceAvailability(context.Background(), eventID, userID, []entity.AvailabilitySlot{slot})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAvailabilityEmptySetDeletesPriorRowsOnly(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectMembershipCheck(mock, eventID, userID, true)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability")).
		WithArgs(eventID, userID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ReplaceAvailability(context.Background(), eventID, userID, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAvailabilityMidInsertFailureRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()
	first := testSlot(eventID, userID, "2025-01-02", "09:00:00", "10:00:00")
	second := testSlot(eventID, userID, "2025-01-02", "11:00:00", "12:00:00")

	mock.ExpectBegin()
	expectMembershipCheck(mock, eventID, userID, true)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability")).
		WithArgs(eventID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectSlotInsert(mock, first)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO availability")).
		WithArgs(second.ID, second.UserID, second.EventID, second.Date, second.StartTime, second.EndTime).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.ReplaceAvailability(context.Background(), eventID, userID, []entity.AvailabilitySlot{first, second})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAvailabilityMembershipRaceSurfacesAsError(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()
	slot := testSlot(eventID, userID, "2025-01-02", "09:00:00", "10:00:00")

	mock.ExpectBegin()
	expectMembershipCheck(mock, eventID, userID, false)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_participants")).
		WithArgs(eventID, userID).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	err := repo.ReplaceAvailability(context.Background(), eventID, userID, []entity.AvailabilitySlot{slot})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAvailabilityDeletesRowsAndMembership(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability")).
		WithArgs(eventID, userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event_participants")).
		WithArgs(eventID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ClearAvailability(context.Background(), eventID, userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAvailabilityFailureRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	eventID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability")).
		WithArgs(eventID, userID).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.ClearAvailability(context.Background(), eventID, userID)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
