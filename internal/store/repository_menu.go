// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

// menuItemRepository is the SQL implementation of [MenuItemRepository]
// over the "menu_items" table.
type menuItemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMenuItemRepository constructs a [MenuItemRepository].
func NewMenuItemRepository(db *DB, logger *logger.Logger) MenuItemRepository {
	logger.Debug().Msg("creating menu item repository")
	return &menuItemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMenuItem inserts item. The foreign key on restaurant_id turns a
// missing restaurant into [ErrRestaurantNotFound].
func (r *menuItemRepository) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	if item.ImageKeys == nil {
		item.ImageKeys = models.ImageKeys{}
	}

	query, args, err := r.db.buildCreateMenuItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*menuItemRepository.CreateMenuItem").Msg("error building query")
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.MenuItem
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		var scanErr error
		created, scanErr = scanMenuItem(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.MenuItem{}, r.mapWriteError(ctx, "*menuItemRepository.CreateMenuItem", item.RestaurantID, err)
	}

	log.Info().
		Str("func", "*menuItemRepository.CreateMenuItem").
		Int64("restaurant_id", created.RestaurantID).
		Int64("menu_item_id", created.MenuItemID).
		Msg("menu item created")
	return created, nil
}

// ListMenuItems returns the restaurant's menu ordered by id. An existing
// restaurant without items yields an empty slice, a missing one
// [ErrRestaurantNotFound].
func (r *menuItemRepository) ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	existsQuery, existsArgs, err := r.db.buildRestaurantExistsQuery(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := r.db.buildListMenuItemsQuery(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*menuItemRepository.ListMenuItems").
			Int64("restaurant_id", restaurantID).
			Msg("error checking restaurant")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*menuItemRepository.ListMenuItems").
			Int64("restaurant_id", restaurantID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		item, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*menuItemRepository.ListMenuItems").Msg("failed to scan menu item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*menuItemRepository.ListMenuItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateMenuItem loads the item, lets mutate edit it and persists the result
// in one transaction. An item that does not belong to the restaurant yields
// [ErrMenuItemNotFound].
func (r *menuItemRepository) UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, mutate MenuItemMutation) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	lockQuery, lockArgs, err := r.db.buildLockMenuItemQuery(restaurantID, menuItemID)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.MenuItem
	var mutateErr error
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		current, scanErr := scanMenuItem(tx.QueryRowContext(ctx, lockQuery, lockArgs...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrMenuItemNotFound
		}
		if scanErr != nil {
			return scanErr
		}

		if mutateErr = mutate(&current); mutateErr != nil {
			return mutateErr
		}
		current.RestaurantID, current.MenuItemID = restaurantID, menuItemID
		if current.ImageKeys == nil {
			current.ImageKeys = models.ImageKeys{}
		}

		updateQuery, updateArgs, buildErr := r.db.buildUpdateMenuItemQuery(current)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		updated, scanErr = scanMenuItem(tx.QueryRowContext(ctx, updateQuery, updateArgs...))
		return scanErr
	})
	switch {
	case err == nil:
	case mutateErr != nil, errors.Is(err, ErrMenuItemNotFound), errors.Is(err, ErrBuildingSQLQuery):
		return models.MenuItem{}, err
	default:
		return models.MenuItem{}, r.mapWriteError(ctx, "*menuItemRepository.UpdateMenuItem", restaurantID, err)
	}

	log.Info().
		Str("func", "*menuItemRepository.UpdateMenuItem").
		Int64("restaurant_id", restaurantID).
		Int64("menu_item_id", menuItemID).
		Msg("menu item updated")
	return updated, nil
}

// DeleteMenuItem removes the item from the restaurant's menu.
func (r *menuItemRepository) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteMenuItemQuery(restaurantID, menuItemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr := result.RowsAffected()
		if execErr != nil {
			return execErr
		}
		if affected == 0 {
			return ErrMenuItemNotFound
		}
		return nil
	})
	if errors.Is(err, ErrMenuItemNotFound) {
		return err
	}
	if err != nil {
		log.Err(err).
			Str("func", "*menuItemRepository.DeleteMenuItem").
			Int64("restaurant_id", restaurantID).
			Int64("menu_item_id", menuItemID).
			Msg("error deleting menu item")
		return wrapQueryError(err)
	}

	return nil
}

func (r *menuItemRepository) mapWriteError(ctx context.Context, funcName string, restaurantID int64, err error) error {
	log := logger.FromContext(ctx)

	switch r.db.errorClassificator.Classify(err) {
	case ForeignKeyViolation:
		log.Warn().Str("func", funcName).Int64("restaurant_id", restaurantID).Msg("restaurant does not exist")
		return ErrRestaurantNotFound
	case CheckViolation, NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	log.Err(err).Str("func", funcName).Int64("restaurant_id", restaurantID).Msg("error writing menu item")
	return wrapQueryError(err)
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(
		&item.MenuItemID,
		&item.RestaurantID,
		&item.DishName,
		&item.Cuisine,
		&item.Category,
		&item.Price,
		&item.Rating,
		&item.ImageKeys,
		scanTime(&item.CreatedAt),
		scanTime(&item.UpdatedAt),
	)
	return item, err
}
