// model/review.go
package model

import "time"

type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	StudentID  string    `json:"student_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewPage struct {
	Documents []Review `json:"documents"`
	Total     int      `json:"total"`
}
