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

var menuItemRowColumns = []string{
	"menu_item_id", "restaurant_id", "dish_name", "cuisine", "category",
	"price", "rating", "image_keys", "created_at", "updated_at",
}

func newTestMenuRepo(t *testing.T) (MenuItemRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewMenuItemRepository(db, logger.Nop()), mock
}

func menuItemRow(id, restaurantID int64, dish string, price int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(menuItemRowColumns).
		AddRow(id, restaurantID, dish, "Japanese", "Main", price, 4.5, `["ramen.png"]`, now, now)
}

func TestCreateMenuItem_Success(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO menu_items \(restaurant_id,dish_name,cuisine,category,price,rating,image_keys\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING menu_item_id`).
		WithArgs(int64(10), "Ramen", "Japanese", "Main", int64(1200), 4.5, `["ramen.png"]`).
		WillReturnRows(menuItemRow(3, 10, "Ramen", 1200))
	mock.ExpectCommit()

	created, err := repo.CreateMenuItem(testContext(), models.MenuItem{
		RestaurantID: 10,
		DishName:     "Ramen",
		Cuisine:      "Japanese",
		Category:     "Main",
		Price:        1200,
		Rating:       ptr(4.5),
		ImageKeys:    models.ImageKeys{"ramen.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.MenuItemID)
	assert.Equal(t, models.ImageKeys{"ramen.png"}, created.ImageKeys)
	require.NotNil(t, created.Rating)
	assert.InDelta(t, 4.5, *created.Rating, 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMenuItem_NilImageKeysStoredAsEmptyList(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs(int64(10), "Tea", "Chinese", "Drinks", int64(0), nil, "[]").
		WillReturnRows(menuItemRow(4, 10, "Tea", 0))
	mock.ExpectCommit()

	_, err := repo.CreateMenuItem(testContext(), models.MenuItem{
		RestaurantID: 10,
		DishName:     "Tea",
		Cuisine:      "Chinese",
		Category:     "Drinks",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMenuItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "missing restaurant",
			dbErr:   pgError(pgerrcode.ForeignKeyViolation, "menu_items_restaurant_id_fkey"),
			wantErr: ErrRestaurantNotFound,
		},
		{
			name:    "negative price",
			dbErr:   pgError(pgerrcode.CheckViolation, "menu_items_price_check"),
			wantErr: ErrConstraintViolation,
		},
		{
			name:    "connection error",
			dbErr:   errors.New("connection reset"),
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestMenuRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO menu_items").WillReturnError(tt.dbErr)
			mock.ExpectRollback()

			_, err := repo.CreateMenuItem(testContext(), models.MenuItem{RestaurantID: 10, DishName: "Ramen"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListMenuItems(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectQuery(`SELECT restaurant_id FROM restaurants WHERE restaurant_id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id"}).AddRow(10))
	mock.ExpectQuery(`SELECT .* FROM menu_items WHERE restaurant_id = \$1 ORDER BY menu_item_id`).
		WithArgs(int64(10)).
		WillReturnRows(menuItemRow(3, 10, "Ramen", 1200))

	items, err := repo.ListMenuItems(testContext(), 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ramen", items[0].DishName)
	assert.Equal(t, int64(1200), items[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMenuItems_EmptyMenu(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectQuery("SELECT restaurant_id FROM restaurants").
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id"}).AddRow(10))
	mock.ExpectQuery("SELECT .* FROM menu_items").
		WillReturnRows(sqlmock.NewRows(menuItemRowColumns))

	items, err := repo.ListMenuItems(testContext(), 10)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListMenuItems_RestaurantNotFound(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectQuery("SELECT restaurant_id FROM restaurants").
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id"}))

	_, err := repo.ListMenuItems(testContext(), 99)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMenuItem_Success(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM menu_items WHERE menu_item_id = \$1 AND restaurant_id = \$2 FOR UPDATE`).
		WithArgs(int64(3), int64(10)).
		WillReturnRows(menuItemRow(3, 10, "Ramen", 1200))
	mock.ExpectQuery(`UPDATE menu_items SET category = \$1, cuisine = \$2, dish_name = \$3, image_keys = \$4, price = \$5, rating = \$6, updated_at = \$7 WHERE menu_item_id = \$8 AND restaurant_id = \$9 RETURNING`).
		WithArgs("Main", "Japanese", "Ramen", `["ramen.png"]`, int64(1500), 4.5, sqlmock.AnyArg(), int64(3), int64(10)).
		WillReturnRows(menuItemRow(3, 10, "Ramen", 1500))
	mock.ExpectCommit()

	updated, err := repo.UpdateMenuItem(testContext(), 10, 3, func(item *models.MenuItem) error {
		item.Price = 1500
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), updated.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM menu_items").WillReturnRows(sqlmock.NewRows(menuItemRowColumns))
	mock.ExpectRollback()

	_, err := repo.UpdateMenuItem(testContext(), 10, 3, func(item *models.MenuItem) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMenuItem_CheckViolation(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM menu_items").WillReturnRows(menuItemRow(3, 10, "Ramen", 1200))
	mock.ExpectQuery("UPDATE menu_items").
		WillReturnError(pgError(pgerrcode.CheckViolation, "menu_items_rating_check"))
	mock.ExpectRollback()

	_, err := repo.UpdateMenuItem(testContext(), 10, 3, func(item *models.MenuItem) error {
		item.Rating = ptr(9.0)
		return nil
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuItem(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
		commit   bool
	}{
		{name: "deleted", affected: 1, commit: true},
		{name: "not found", affected: 0, wantErr: ErrMenuItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestMenuRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM menu_items WHERE menu_item_id = \$1 AND restaurant_id = \$2`).
				WithArgs(int64(3), int64(10)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.commit {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err := repo.DeleteMenuItem(testContext(), 10, 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteMenuItem_CommitFails(t *testing.T) {
	repo, mock := newTestMenuRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM menu_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := repo.DeleteMenuItem(testContext(), 10, 3)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}
