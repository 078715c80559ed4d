// model/property.go
package model

import "time"

type RoomType string

const (
	RoomSingle    RoomType = "single"
	RoomShared    RoomType = "shared"
	RoomApartment RoomType = "apartment"
	RoomHostel    RoomType = "hostel"
)

func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomSingle, RoomShared, RoomApartment, RoomHostel:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NearbyPlace struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type Property struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Location    string       `json:"location"`
	Address     string       `json:"address"`
	RoomType    RoomType     `json:"room_type"`
	Amenities   []string     `json:"amenities"`
	Images      []string     `json:"images"`
	LandlordID  string       `json:"landlord_id"`
	Available   bool         `json:"available"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Nearby      []NearbyPlace `json:"nearby_places"`
	Rules       []string     `json:"rules"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// PlaceholderImage is substituted by callers when a property has no images.
// The model itself does not require at least one image.
const PlaceholderImage = "/placeholder-room.jpg"

// PropertyUpdate carries partial updates; nil fields stay untouched.
type PropertyUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Address     *string   `json:"address,omitempty"`
	RoomType    *RoomType `json:"room_type,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Available   *bool     `json:"available,omitempty"`
	Rules       *[]string `json:"rules,omitempty"`
}

// PropertyPage is the listing result shape shared by both data sources.
type PropertyPage struct {
	Documents []Property `json:"documents"`
	Total     int        `json:"total"`
}
