// Package demo holds the seed data the service runs on when no database
// is configured. Repositories copy it at construction; nothing here is
// mutated at package level.
package demo

import (
	"time"

	"github.com/primeitclub/the-newbies/model"
)

const (
	StudentEmail  = "student@demo.com"
	LandlordEmail = "landlord@demo.com"
	Password      = "demo123"
)

func Users() []model.User {
	return []model.User{
		{
			ID:       "demo-student-1",
			Name:     "Demo Tenant",
			Email:    StudentEmail,
			UserType: model.UserStudent,
			Verified: true,
			College:  "Tribhuvan University",
		},
		{
			ID:       "demo-landlord-1",
			Name:     "Demo Landlord",
			Email:    LandlordEmail,
			UserType: model.UserLandlord,
			Verified: true,
		},
	}
}

// Properties returns the seed catalog, newest first.
func Properties() []model.Property {
	base := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	at := func(daysAgo int) time.Time { return base.AddDate(0, 0, -daysAgo) }

	return []model.Property{
		{
			ID:          "demo-property-1",
			Title:       "Sunny Single Room near Kirtipur Campus",
			Description: "Furnished single room with attached bathroom, five minutes walk from the main gate.",
			Price:       8500,
			Location:    "Kirtipur",
			Address:     "Naya Bazar, Kirtipur",
			RoomType:    model.RoomSingle,
			Amenities:   []string{"wifi", "attached bathroom", "water supply"},
			Images:      []string{"/images/demo/kirtipur-single.jpg"},
			LandlordID:  "demo-landlord-1",
			Available:   true,
			Coordinates: &model.Coordinates{Lat: 27.6789, Lng: 85.2774},
			Nearby: []model.NearbyPlace{
				{Name: "Tribhuvan University", Distance: "400 m"},
				{Name: "Naya Bazar market", Distance: "150 m"},
			},
			Rules:     []string{"No smoking", "Gate closes at 10 pm"},
			CreatedAt: at(0),
			UpdatedAt: at(0),
		},
		{
			ID:          "demo-property-2",
			Title:       "Shared Room for Two in Kalanki",
			Description: "Spacious shared room, two beds, shared kitchen on the same floor.",
			Price:       5500,
			Location:    "Kalanki",
			Address:     "Kalanki Chowk, Ring Road",
			RoomType:    model.RoomShared,
			Amenities:   []string{"wifi", "shared kitchen"},
			Images:      []string{"/images/demo/kalanki-shared.jpg"},
			LandlordID:  "demo-landlord-1",
			Available:   true,
			Nearby: []model.NearbyPlace{
				{Name: "Kalanki bus stop", Distance: "100 m"},
			},
			Rules:     []string{"No pets"},
			CreatedAt: at(3),
			UpdatedAt: at(3),
		},
		{
			ID:          "demo-property-3",
			Title:       "Two Bedroom Apartment in Baneshwor",
			Description: "Independent apartment with living room and balcony, suitable for sharing.",
			Price:       22000,
			Location:    "Baneshwor",
			Address:     "Shankhamul Marg, New Baneshwor",
			RoomType:    model.RoomApartment,
			Amenities:   []string{"wifi", "parking", "balcony", "water supply"},
			Images:      []string{"/images/demo/baneshwor-apartment.jpg", "/images/demo/baneshwor-living.jpg"},
			LandlordID:  "demo-landlord-1",
			Available:   true,
			Coordinates: &model.Coordinates{Lat: 27.6915, Lng: 85.3420},
			Nearby: []model.NearbyPlace{
				{Name: "Everest Bank", Distance: "200 m"},
			},
			Rules:     []string{"Minimum six month stay"},
			CreatedAt: at(7),
			UpdatedAt: at(7),
		},
		{
			ID:          "demo-property-4",
			Title:       "Hostel Bed with Meals, Putalisadak",
			Description: "Boys hostel bed including two meals a day and laundry once a week.",
			Price:       12000,
			Location:    "Putalisadak",
			Address:     "Putalisadak, Kathmandu",
			RoomType:    model.RoomHostel,
			Amenities:   []string{"wifi", "meals", "laundry"},
			Images:      []string{"/images/demo/putalisadak-hostel.jpg"},
			LandlordID:  "demo-landlord-1",
			Available:   true,
			Rules:       []string{"No visitors after 8 pm", "No alcohol"},
			CreatedAt:   at(12),
			UpdatedAt:   at(12),
		},
		{
			ID:          "demo-property-5",
			Title:       "Quiet Single Room in Koteshwor",
			Description: "Top floor single room with a separate entrance, ideal for exam preparation.",
			Price:       7000,
			Location:    "Koteshwor",
			Address:     "Koteshwor-32, Kathmandu",
			RoomType:    model.RoomSingle,
			Amenities:   []string{"water supply"},
			Images:      nil,
			LandlordID:  "demo-landlord-1",
			Available:   false,
			Rules:       []string{"No smoking"},
			CreatedAt:   at(20),
			UpdatedAt:   at(18),
		},
		{
			ID:          "demo-property-6",
			Title:       "Shared Flat Room near Patan Campus",
			Description: "One room in a three room flat shared with two students.",
			Price:       6500,
			Location:    "Patan",
			Address:     "Pulchowk, Lalitpur",
			RoomType:    model.RoomShared,
			Amenities:   []string{"wifi", "shared kitchen", "parking"},
			Images:      []string{"/images/demo/patan-shared.jpg"},
			LandlordID:  "demo-landlord-1",
			Available:   true,
			Coordinates: &model.Coordinates{Lat: 27.6782, Lng: 85.3171},
			Nearby: []model.NearbyPlace{
				{Name: "Pulchowk Engineering Campus", Distance: "300 m"},
			},
			CreatedAt: at(30),
			UpdatedAt: at(30),
		},
	}
}

// Reviews returns the canned reviews shown for any property in demo mode.
func Reviews(propertyID string) []model.Review {
	now := time.Now().UTC()
	return []model.Review{
		{
			ID:         "demo-review-1",
			PropertyID: propertyID,
			StudentID:  "student1",
			Rating:     5,
			Comment:    "Excellent room with all amenities. The landlord is very helpful and the location is perfect for students.",
			CreatedAt:  now.Add(-14 * 24 * time.Hour),
		},
		{
			ID:         "demo-review-2",
			PropertyID: propertyID,
			StudentID:  "student2",
			Rating:     4,
			Comment:    "Good room, clean and well-maintained. WiFi speed is excellent. Highly recommended.",
			CreatedAt:  now.Add(-30 * 24 * time.Hour),
		},
	}
}
