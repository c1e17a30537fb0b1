// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-restaurant-directory/models"
)

const (
	usersTable         = "users"
	revokedTokensTable = "revoked_tokens"
	restaurantsTable   = "restaurants"
	menuItemsTable     = "menu_items"
)

var (
	userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

	restaurantColumns = []string{"restaurant_id", "name", "image_key", "description", "created_by", "created_at", "updated_at"}

	menuItemColumns = []string{
		"menu_item_id", "restaurant_id", "dish_name", "cuisine", "category",
		"price", "rating", "image_keys", "created_at", "updated_at",
	}
)

// returning renders a RETURNING clause for the given columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// qualify prefixes every column with a table alias.
func qualify(alias string, columns []string) []string {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = alias + "." + c
	}
	return qualified
}

// ── users ────────────────────────────────────────────────────────────────────

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

// buildFindUserByLoginQuery matches login against both the username and the
// email column.
func (db *DB) buildFindUserByLoginQuery(login string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Or{sq.Eq{"username": login}, sq.Eq{"email": login}}).
		OrderBy("user_id").
		Limit(1).
		ToSql()
}

func (db *DB) buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── revoked tokens ───────────────────────────────────────────────────────────

func (db *DB) buildRevokeTokenQuery(token models.RevokedToken) (string, []any, error) {
	return db.builder.
		Insert(revokedTokensTable).
		Columns("jti", "token_type", "user_id", "revoked_at", "expires_at").
		Values(token.JTI, string(token.Type), token.UserID, token.RevokedAt.UTC(), token.ExpiresAt.UTC()).
		Suffix("ON CONFLICT (jti) DO NOTHING").
		ToSql()
}

func (db *DB) buildIsTokenRevokedQuery(jti string) (string, []any, error) {
	return db.builder.
		Select("jti").
		From(revokedTokensTable).
		Where(sq.Eq{"jti": jti}).
		Limit(1).
		ToSql()
}

func (db *DB) buildPurgeRevokedTokensQuery(now time.Time) (string, []any, error) {
	return db.builder.
		Delete(revokedTokensTable).
		Where(sq.Lt{"expires_at": now.UTC()}).
		ToSql()
}

// ── restaurants ──────────────────────────────────────────────────────────────

func (db *DB) buildCreateRestaurantQuery(restaurant models.Restaurant) (string, []any, error) {
	return db.builder.
		Insert(restaurantsTable).
		Columns("name", "image_key", "description", "created_by").
		Values(restaurant.Name, restaurant.ImageKey, restaurant.Description, restaurant.CreatedBy).
		Suffix(returning(restaurantColumns)).
		ToSql()
}

func (db *DB) buildGetRestaurantQuery(restaurantID int64) (string, []any, error) {
	return db.builder.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		ToSql()
}

// buildLockRestaurantQuery selects a restaurant for update. SQLite locks the
// whole database for the duration of a write transaction, so the row lock is
// only added for PostgreSQL.
func (db *DB) buildLockRestaurantQuery(restaurantID int64) (string, []any, error) {
	query := db.builder.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(sq.Eq{"restaurant_id": restaurantID})
	if db.lockRows() {
		query = query.Suffix("FOR UPDATE")
	}
	return query.ToSql()
}

func (db *DB) buildListRestaurantsQuery() (string, []any, error) {
	return db.builder.
		Select(restaurantColumns...).
		From(restaurantsTable).
		OrderBy("restaurant_id").
		ToSql()
}

func (db *DB) buildRestaurantExistsQuery(restaurantID int64) (string, []any, error) {
	return db.builder.
		Select("restaurant_id").
		From(restaurantsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		ToSql()
}

func (db *DB) buildUpdateRestaurantQuery(restaurant models.Restaurant) (string, []any, error) {
	return db.builder.
		Update(restaurantsTable).
		SetMap(map[string]any{
			"name":        restaurant.Name,
			"image_key":   restaurant.ImageKey,
			"description": restaurant.Description,
			"updated_at":  time.Now().UTC(),
		}).
		Where(sq.Eq{"restaurant_id": restaurant.RestaurantID}).
		Suffix(returning(restaurantColumns)).
		ToSql()
}

func (db *DB) buildDeleteRestaurantMenuQuery(restaurantID int64) (string, []any, error) {
	return db.builder.
		Delete(menuItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		ToSql()
}

func (db *DB) buildDeleteRestaurantQuery(restaurantID int64) (string, []any, error) {
	return db.builder.
		Delete(restaurantsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		ToSql()
}

// buildSearchRestaurantsQuery matches the query text case-insensitively as a
// substring of the restaurant name or of any of its menu items' dish name,
// cuisine or category. Cuisine and category narrow the result to restaurants
// having one menu item matching both.
func (db *DB) buildSearchRestaurantsQuery(search models.RestaurantSearch) (string, []any, error) {
	query := db.builder.
		Select(qualify("r", restaurantColumns)...).
		From(restaurantsTable + " r").
		OrderBy("r.restaurant_id")

	if search.Query != "" {
		pattern := likePattern(search.Query)
		query = query.Where(sq.Or{
			sq.Expr(`LOWER(r.name) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`EXISTS (SELECT 1 FROM menu_items m WHERE m.restaurant_id = r.restaurant_id AND (`+
				`LOWER(m.dish_name) LIKE ? ESCAPE '\' OR `+
				`LOWER(m.cuisine) LIKE ? ESCAPE '\' OR `+
				`LOWER(m.category) LIKE ? ESCAPE '\'))`, pattern, pattern, pattern),
		})
	}

	if search.Cuisine != "" || search.Category != "" {
		filters := sq.And{sq.Expr("f.restaurant_id = r.restaurant_id")}
		if search.Cuisine != "" {
			filters = append(filters, sq.Expr(`LOWER(f.cuisine) LIKE ? ESCAPE '\'`, likePattern(search.Cuisine)))
		}
		if search.Category != "" {
			filters = append(filters, sq.Expr(`LOWER(f.category) LIKE ? ESCAPE '\'`, likePattern(search.Category)))
		}

		sub, args, err := sq.Select("1").From(menuItemsTable + " f").Where(filters).ToSql()
		if err != nil {
			return "", nil, err
		}
		query = query.Where(sq.Expr("EXISTS ("+sub+")", args...))
	}

	return query.ToSql()
}

// likePattern lower-cases s, escapes LIKE wildcards and wraps it in %.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))
	return "%" + escaped + "%"
}

// ── menu items ───────────────────────────────────────────────────────────────

func (db *DB) buildCreateMenuItemQuery(item models.MenuItem) (string, []any, error) {
	return db.builder.
		Insert(menuItemsTable).
		Columns("restaurant_id", "dish_name", "cuisine", "category", "price", "rating", "image_keys").
		Values(item.RestaurantID, item.DishName, item.Cuisine, item.Category, item.Price, item.Rating, item.ImageKeys).
		Suffix(returning(menuItemColumns)).
		ToSql()
}

func (db *DB) buildListMenuItemsQuery(restaurantID int64) (string, []any, error) {
	return db.builder.
		Select(menuItemColumns...).
		From(menuItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("menu_item_id").
		ToSql()
}

func (db *DB) buildLockMenuItemQuery(restaurantID, menuItemID int64) (string, []any, error) {
	query := db.builder.
		Select(menuItemColumns...).
		From(menuItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID, "menu_item_id": menuItemID})
	if db.lockRows() {
		query = query.Suffix("FOR UPDATE")
	}
	return query.ToSql()
}

func (db *DB) buildUpdateMenuItemQuery(item models.MenuItem) (string, []any, error) {
	return db.builder.
		Update(menuItemsTable).
		SetMap(map[string]any{
			"dish_name":  item.DishName,
			"cuisine":    item.Cuisine,
			"category":   item.Category,
			"price":      item.Price,
			"rating":     item.Rating,
			"image_keys": item.ImageKeys,
			"updated_at": time.Now().UTC(),
		}).
		Where(sq.Eq{"restaurant_id": item.RestaurantID, "menu_item_id": item.MenuItemID}).
		Suffix(returning(menuItemColumns)).
		ToSql()
}

func (db *DB) buildDeleteMenuItemQuery(restaurantID, menuItemID int64) (string, []any, error) {
	return db.builder.
		Delete(menuItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID, "menu_item_id": menuItemID}).
		ToSql()
}
