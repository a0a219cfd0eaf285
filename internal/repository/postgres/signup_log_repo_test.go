package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
)

func TestSignupLogRepository_Record(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO signup_log \(activity_name, email, created_at\)`).
					WithArgs("Chess Club", "b@x.edu", at).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("42"))
			},
			wantID: "42",
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO signup_log`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSignupLogRepository(db)
			entry := domain.NewSignupLogEntry("Chess Club", "b@x.edu", at)
			err = repo.Record(ctx, entry)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, entry.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSignupLogRepository_ListByActivity(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	tests := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		wantEmail []string
		wantErr   bool
	}{
		{
			name: "returns entries in signup order",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, activity_name, email, created_at FROM signup_log WHERE activity_name = \$1`).
					WithArgs("Chess Club").
					WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name", "email", "created_at"}).
						AddRow("1", "Chess Club", "b@x.edu", t1).
						AddRow("2", "Chess Club", "c@x.edu", t2))
			},
			wantEmail: []string{"b@x.edu", "c@x.edu"},
		},
		{
			name: "empty returns empty slice",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, activity_name, email, created_at FROM signup_log`).
					WithArgs("Chess Club").
					WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name", "email", "created_at"}))
			},
			wantEmail: []string{},
		},
		{
			name: "query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSignupLogRepository(db)
			got, err := repo.ListByActivity(ctx, "Chess Club")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			emails := make([]string, 0, len(got))
			for _, e := range got {
				emails = append(emails, e.Email)
			}
			require.Equal(t, tt.wantEmail, emails)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS signup_log`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
