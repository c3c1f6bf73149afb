package sqlite

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/reflow/internal/models"
)

func TestAuditRepoRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO reflow_runs").
		WithArgs("scenario-1", "2026-02-09T08:00:00Z", 2, "first\nsecond", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewAuditRepo(db)
	err = repo.Record(context.Background(), models.RunRecord{
		ScenarioID:  "scenario-1",
		RanAt:       "2026-02-09T08:00:00Z",
		ChangeCount: 2,
		Explanation: []string{"first", "second"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepoHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "scenario_id", "ran_at", "change_count", "explanation", "fixpoint"}).
		AddRow(1, "scenario-1", "2026-02-09T08:00:00Z", 2, "first\nsecond", 0).
		AddRow(2, "scenario-1", "2026-02-10T08:00:00Z", 0, "", 1)

	mock.ExpectQuery("SELECT id, scenario_id, ran_at, change_count, explanation, fixpoint FROM reflow_runs").
		WithArgs("scenario-1").
		WillReturnRows(rows)

	repo := NewAuditRepo(db)
	history, err := repo.History(context.Background(), "scenario-1")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, []string{"first", "second"}, history[0].Explanation)
	assert.False(t, history[0].Fixpoint)
	assert.Nil(t, history[1].Explanation)
	assert.True(t, history[1].Fixpoint)
	assert.NoError(t, mock.ExpectationsWereMet())
}
