package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
)

func TestSessionRepositorySave(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &sessionRepository{storage: storage}

	identity := model.GenericIdentity(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	payload := []byte(`{"id":"user-123","name":"Demo User","email":"demo@tareffa.com","plan":"STANDARD","role":"CLIENT","createdAt":"2024-01-02T03:04:05Z"}`)

	mock.ExpectExec("INSERT INTO sessions").WithArgs("tareffa_user:s1", payload).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := repo.Save(context.Background(), "tareffa_user:s1", identity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("INSERT INTO sessions").WithArgs("tareffa_user:s2", pgxmockv3.AnyArg()).WillReturnError(errors.New("down"))
	if err := repo.Save(context.Background(), "tareffa_user:s2", identity); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSessionRepositoryLoad(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &sessionRepository{storage: storage}

	payload := []byte(`{"id":"admin-123","name":"Admin User","email":"admin@tareffa.com","plan":"NONE","role":"ADMIN","createdAt":"2024-01-02T03:04:05Z"}`)
	mock.ExpectQuery("SELECT identity FROM sessions WHERE key=").WithArgs("tareffa_user:s1").WillReturnRows(
		pgxmockv3.NewRows([]string{"identity"}).AddRow(payload))
	identity, err := repo.Load(context.Background(), "tareffa_user:s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != model.AdminIdentityID || !identity.IsAdmin() || identity.Plan != model.PlanNone {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	mock.ExpectQuery("SELECT identity FROM sessions WHERE key=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Load(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT identity FROM sessions WHERE key=").WithArgs("broken").WillReturnRows(
		pgxmockv3.NewRows([]string{"identity"}).AddRow([]byte(`{`)))
	if _, err := repo.Load(context.Background(), "broken"); err == nil {
		t.Fatal("expected decode error")
	}

	mock.ExpectQuery("SELECT identity FROM sessions WHERE key=").WithArgs("err").WillReturnError(errors.New("fail"))
	if _, err := repo.Load(context.Background(), "err"); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSessionRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &sessionRepository{storage: storage}

	mock.ExpectExec("DELETE FROM sessions WHERE key=").WithArgs("tareffa_user:s1").WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), "tareffa_user:s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM sessions WHERE key=").WithArgs("tareffa_user:s2").WillReturnError(errors.New("fail"))
	if err := repo.Delete(context.Background(), "tareffa_user:s2"); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
