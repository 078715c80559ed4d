package property

import "github.com/primeitclub/the-newbies/model"

type CreatePropertyReq struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Price       float64             `json:"price" validate:"gte=0"`
	Location    string              `json:"location" validate:"required"`
	Address     string              `json:"address"`
	RoomType    string              `json:"room_type" validate:"required,oneof=single shared apartment hostel"`
	Amenities   []string            `json:"amenities"`
	Images      []string            `json:"images"`
	Available   *bool               `json:"available"`
	Coordinates *model.Coordinates  `json:"coordinates"`
	Nearby      []model.NearbyPlace `json:"nearby_places"`
	Rules       []string            `json:"rules"`
}

type UpdatePropertyReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Location    *string   `json:"location"`
	Address     *string   `json:"address"`
	RoomType    *string   `json:"room_type"`
	Amenities   *[]string `json:"amenities"`
	Images      *[]string `json:"images"`
	Available   *bool     `json:"available"`
	Rules       *[]string `json:"rules"`
}
