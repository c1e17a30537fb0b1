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

// restaurantRepository is the SQL implementation of [RestaurantRepository]
// over the "restaurants" table.
type restaurantRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRestaurantRepository constructs a [RestaurantRepository].
func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating restaurant repository")
	return &restaurantRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRestaurant inserts the restaurant. A taken name yields
// [ErrRestaurantAlreadyExists] and the transaction is rolled back.
func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateRestaurantQuery(restaurant)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.CreateRestaurant").Msg("error building query")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Restaurant
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		var scanErr error
		created, scanErr = scanRestaurant(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.Restaurant{}, r.mapWriteError(ctx, "*restaurantRepository.CreateRestaurant", restaurant.Name, err)
	}

	log.Info().
		Str("func", "*restaurantRepository.CreateRestaurant").
		Int64("restaurant_id", created.RestaurantID).
		Msg("restaurant created")
	return created, nil
}

// GetRestaurant returns the restaurant or [ErrRestaurantNotFound].
func (r *restaurantRepository) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetRestaurantQuery(restaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	restaurant, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.GetRestaurant").
			Int64("restaurant_id", restaurantID).
			Msg("error getting restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return restaurant, nil
}

// ListRestaurants returns every restaurant ordered by id.
func (r *restaurantRepository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	query, args, err := r.db.buildListRestaurantsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRestaurants(ctx, "*restaurantRepository.ListRestaurants", query, args)
}

// SearchRestaurants returns the restaurants matching search ordered by id.
func (r *restaurantRepository) SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error) {
	query, args, err := r.db.buildSearchRestaurantsQuery(search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRestaurants(ctx, "*restaurantRepository.SearchRestaurants", query, args)
}

// UpdateRestaurant loads the restaurant, lets mutate edit it and persists the
// result in one transaction. Errors returned by mutate are passed through.
func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurantID int64, mutate RestaurantMutation) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	lockQuery, lockArgs, err := r.db.buildLockRestaurantQuery(restaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Restaurant
	var mutateErr error
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		current, scanErr := scanRestaurant(tx.QueryRowContext(ctx, lockQuery, lockArgs...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrRestaurantNotFound
		}
		if scanErr != nil {
			return scanErr
		}

		if mutateErr = mutate(&current); mutateErr != nil {
			return mutateErr
		}
		current.RestaurantID = restaurantID

		updateQuery, updateArgs, buildErr := r.db.buildUpdateRestaurantQuery(current)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		updated, scanErr = scanRestaurant(tx.QueryRowContext(ctx, updateQuery, updateArgs...))
		return scanErr
	})
	switch {
	case err == nil:
	case mutateErr != nil, errors.Is(err, ErrRestaurantNotFound), errors.Is(err, ErrBuildingSQLQuery):
		return models.Restaurant{}, err
	default:
		return models.Restaurant{}, r.mapWriteError(ctx, "*restaurantRepository.UpdateRestaurant", "", err)
	}

	log.Info().
		Str("func", "*restaurantRepository.UpdateRestaurant").
		Int64("restaurant_id", restaurantID).
		Msg("restaurant updated")
	return updated, nil
}

// DeleteRestaurant removes the restaurant's menu items and then the
// restaurant itself in one transaction.
func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	log := logger.FromContext(ctx)

	menuQuery, menuArgs, err := r.db.buildDeleteRestaurantMenuQuery(restaurantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	restaurantQuery, restaurantArgs, err := r.db.buildDeleteRestaurantQuery(restaurantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deletedItems int64
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		result, execErr := tx.ExecContext(ctx, menuQuery, menuArgs...)
		if execErr != nil {
			return execErr
		}
		if deletedItems, execErr = result.RowsAffected(); execErr != nil {
			return execErr
		}

		result, execErr = tx.ExecContext(ctx, restaurantQuery, restaurantArgs...)
		if execErr != nil {
			return execErr
		}
		affected, execErr := result.RowsAffected()
		if execErr != nil {
			return execErr
		}
		if affected == 0 {
			return ErrRestaurantNotFound
		}
		return nil
	})
	if errors.Is(err, ErrRestaurantNotFound) {
		return err
	}
	if err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.DeleteRestaurant").
			Int64("restaurant_id", restaurantID).
			Msg("error deleting restaurant")
		return wrapQueryError(err)
	}

	log.Info().
		Str("func", "*restaurantRepository.DeleteRestaurant").
		Int64("restaurant_id", restaurantID).
		Int64("deleted_menu_items", deletedItems).
		Msg("restaurant deleted")
	return nil
}

func (r *restaurantRepository) queryRestaurants(ctx context.Context, funcName, query string, args []any) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		restaurant, scanErr := scanRestaurant(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan restaurant row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return restaurants, nil
}

// mapWriteError turns constraint violations of a restaurant write into
// store sentinels.
func (r *restaurantRepository) mapWriteError(ctx context.Context, funcName, name string, err error) error {
	log := logger.FromContext(ctx)

	switch r.db.errorClassificator.Classify(err) {
	case UniqueViolation:
		log.Warn().Str("func", funcName).Str("restaurant_name", name).Msg("restaurant already exists")
		return ErrRestaurantAlreadyExists
	case CheckViolation, NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	log.Err(err).Str("func", funcName).Msg("error writing restaurant")
	return wrapQueryError(err)
}

func scanRestaurant(row rowScanner) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := row.Scan(
		&restaurant.RestaurantID,
		&restaurant.Name,
		&restaurant.ImageKey,
		&restaurant.Description,
		&restaurant.CreatedBy,
		scanTime(&restaurant.CreatedAt),
		scanTime(&restaurant.UpdatedAt),
	)
	return restaurant, err
}
