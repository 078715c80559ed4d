// model/favorite.go
package model

import "time"

// Favorite is a (user, property) join row. The pair is unique; removal
// deletes exactly one row even if historical duplicates exist.
type Favorite struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type FavoritePage struct {
	Documents []Favorite `json:"documents"`
	Total     int        `json:"total"`
}
