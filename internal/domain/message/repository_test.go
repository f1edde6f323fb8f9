package message

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var messageCols = []string{"id", "event_id", "guest_name", "message", "hearts", "created_at"}

func TestAddHeartsUsesSingleClampedUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE messages SET hearts = GREATEST(hearts + $2, 0) WHERE id = $1 RETURNING`)).
		WithArgs("m1", -1).
		WillReturnRows(sqlmock.NewRows(messageCols).AddRow("m1", "e1", "Rina", "Selamat!", 0, time.Now()))

	m, err := repo.AddHearts(context.Background(), "m1", -1)
	if err != nil {
		t.Fatalf("AddHearts: %v", err)
	}
	if m == nil || m.Hearts != 0 || m.GuestName != "Rina" {
		t.Fatalf("message = %+v", m)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAddHeartsUnknownMessage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE messages SET hearts = GREATEST(hearts + $2, 0)`)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows(messageCols))

	m, err := repo.AddHearts(context.Background(), "missing", 1)
	if err != nil || m != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", m, err)
	}
}

func TestSetHearts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE messages SET hearts = $2 WHERE id = $1 RETURNING`)).
		WithArgs("m1", 7).
		WillReturnRows(sqlmock.NewRows(messageCols).AddRow("m1", "e1", "Rina", "Selamat!", 7, time.Now()))

	m, err := repo.SetHearts(context.Background(), "m1", 7)
	if err != nil {
		t.Fatalf("SetHearts: %v", err)
	}
	if m == nil || m.Hearts != 7 {
		t.Fatalf("message = %+v", m)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListByEventNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM messages WHERE event_id = $1 ORDER BY created_at DESC`)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow("m2", "e1", "Dewi", "Bahagia selalu", 1, now).
			AddRow("m1", "e1", "Rina", "Selamat!", 0, now.Add(-time.Hour)))

	messages, err := repo.ListByEvent(context.Background(), "e1")
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(messages) != 2 || messages[0].ID != "m2" {
		t.Fatalf("messages = %+v", messages)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListByEventEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM messages WHERE event_id = $1`)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(messageCols))

	messages, err := repo.ListByEvent(context.Background(), "e1")
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if messages == nil || len(messages) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", messages)
	}
}

func TestDeleteMessage(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     error
	}{
		{"deleted", 1, nil},
		{"unknown id", 0, ErrMessageNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM messages WHERE id = $1`)).
				WithArgs("m1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			if err := repo.Delete(context.Background(), "m1"); !errors.Is(err, tt.want) {
				t.Fatalf("Delete: got %v, want %v", err, tt.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}
