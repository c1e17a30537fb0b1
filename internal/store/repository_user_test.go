// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

var userRowColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	user := models.User{Username: "bob", Email: "bob@x.io", PasswordHash: "hash"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("bob", "bob@x.io", "hash").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "bob", "bob@x.io", "hash", now))
	mock.ExpectCommit()

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "bob", created.Username)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{name: "username taken", constraint: "users_username_key", wantErr: ErrUsernameAlreadyExists},
		{name: "email taken", constraint: "users_email_key", wantErr: ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgError(pgerrcode.UniqueViolation, tt.constraint))
			mock.ExpectRollback()

			_, err := repo.CreateUser(testContext(), models.User{Username: "bob"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(testContext(), models.User{Username: "bob"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateUser_BeginError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.CreateUser(testContext(), models.User{Username: "bob"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCreateUser_CommitError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "bob", "bob@x.io", "hash", time.Now()))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.CreateUser(testContext(), models.User{Username: "bob"})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT user_id, username, email, password_hash, created_at FROM users WHERE \(username = \$1 OR email = \$2\)`).
		WithArgs("bob@x.io", "bob@x.io").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "bob", "bob@x.io", "hash", time.Now()))

	found, err := repo.FindUserByLogin(testContext(), "bob@x.io")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost", "ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByLogin(testContext(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByLogin_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByLogin(testContext(), "bob")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByLogin_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// intentionally wrong shape → scan error
	mock.ExpectQuery("SELECT user_id").WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	_, err := repo.FindUserByLogin(testContext(), "bob")
	assert.Error(t, err)
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE user_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "amy", "amy@x.io", "hash", time.Now()))
	mock.ExpectQuery(`SELECT .* FROM users WHERE user_id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	found, err := repo.FindUserByID(testContext(), 3)
	require.NoError(t, err)
	assert.Equal(t, "amy", found.Username)

	_, err = repo.FindUserByID(testContext(), 4)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
