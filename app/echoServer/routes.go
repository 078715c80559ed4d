package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/primeitclub/the-newbies/app/echoServer/controller/auth"
	"github.com/primeitclub/the-newbies/app/echoServer/controller/booking"
	"github.com/primeitclub/the-newbies/app/echoServer/controller/favorite"
	"github.com/primeitclub/the-newbies/app/echoServer/controller/property"
	"github.com/primeitclub/the-newbies/app/echoServer/controller/review"
	"github.com/primeitclub/the-newbies/app/echoServer/controller/storage"
)

type C struct {
	Auth     *auth.Controller
	Property *property.Controller
	Booking  *booking.Controller
	Review   *review.Controller
	Favorite *favorite.Controller
	Storage  *storage.Controller

	JWTSecret   string
	StorageRoot string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	pub.GET("/properties", c.Property.List)
	pub.GET("/properties/:id", c.Property.Detail)
	pub.GET("/properties/:id/reviews", c.Review.ListByProperty)

	// uploaded buckets served as-is
	e.Static("/files", c.StorageRoot)

	// Auth
	authGrp := e.Group("/v1")
	authGrp.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	authGrp.POST("/users/logout", c.Auth.Logout)
	authGrp.GET("/users/me", c.Auth.Me)

	// Landlord endpoints
	authGrp.POST("/properties", c.Property.Create)
	authGrp.PATCH("/properties/:id", c.Property.Update)

	authGrp.POST("/properties/:id/reviews", c.Review.Create)

	authGrp.POST("/bookings", c.Booking.Create)
	authGrp.GET("/bookings/my", c.Booking.My)
	authGrp.PATCH("/bookings/:id/status", c.Booking.SetStatus)
	authGrp.PATCH("/bookings/:id/payment", c.Booking.SetPaymentStatus)

	authGrp.POST("/favorites", c.Favorite.Add)
	authGrp.GET("/favorites", c.Favorite.List)
	authGrp.DELETE("/favorites/:propertyId", c.Favorite.Remove)

	authGrp.POST("/storage/:bucket", c.Storage.Upload)
	authGrp.DELETE("/storage/:bucket/:fileId", c.Storage.Delete)
}
