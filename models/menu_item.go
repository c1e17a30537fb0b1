// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MenuItem is a dish offered by a restaurant.
type MenuItem struct {
	MenuItemID   int64 `json:"id"`
	RestaurantID int64 `json:"restaurant_id"`

	DishName string `json:"dish_name"`
	Cuisine  string `json:"cuisine"`
	Category string `json:"menu_category"`

	// Price is expressed in the smallest currency unit and is never negative.
	Price int64 `json:"price"`

	// Rating is optional and lies within [MinRating, MaxRating].
	Rating *float64 `json:"rating,omitempty"`

	ImageKeys ImageKeys `json:"image_keys"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rating bounds of a menu item.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// MenuItemDraft carries the caller-supplied fields of a new menu item.
// Price is kept in its raw textual form so the service can reject values
// that are not non-negative integers.
type MenuItemDraft struct {
	DishName  string
	Cuisine   string
	Category  string
	Price     PriceValue
	Rating    *float64
	ImageKeys []string
}

// MenuItemUpdate describes a partial update of a menu item.
// Only non-nil fields are applied.
type MenuItemUpdate struct {
	MenuItemID   int64
	RestaurantID int64

	DishName  *string
	Cuisine   *string
	Category  *string
	Price     *PriceValue
	Rating    *float64
	ImageKeys *[]string
}

// PriceValue is a price as received from a client. It accepts both a JSON
// number (10) and a JSON string ("10"); parsing into an integer is deferred
// to [PriceValue.Int64].
type PriceValue string

// UnmarshalJSON implements [json.Unmarshaler].
func (p *PriceValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceValue(s)
		return nil
	}

	*p = PriceValue(b)
	return nil
}

// Int64 parses the price as a base-10 integer.
func (p PriceValue) Int64() (int64, error) {
	v, err := strconv.ParseInt(string(bytes.TrimSpace([]byte(p))), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not an integer: %w", string(p), err)
	}
	return v, nil
}

// ImageKeys is a list of object-storage keys persisted as a JSON array.
type ImageKeys []string

// Value implements [driver.Valuer].
func (k ImageKeys) Value() (driver.Value, error) {
	if k == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(k))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (k *ImageKeys) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*k = ImageKeys{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported image keys type %T", src)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		*k = ImageKeys{}
		return nil
	}

	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("error decoding image keys: %w", err)
	}
	*k = keys
	return nil
}

// MarshalJSON implements [json.Marshaler]. A nil list is encoded as [].
func (k ImageKeys) MarshalJSON() ([]byte, error) {
	if k == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(k))
}
