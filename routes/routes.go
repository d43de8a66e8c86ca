package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-dd-backend/controllers"
	"hotel-dd-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public directory/booking surface and the back-office
// management routes.
func SetupRouter(bc *controllers.BookingController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Accommodation directory
	rooms := r.Group("/rooms")
	{
		rooms.GET("", controllers.GetRooms)
		rooms.POST("", controllers.CreateRoom)
		rooms.PATCH("/:id", controllers.UpdateRoom)
		rooms.PUT("/:id", controllers.UpdateRoom)
		rooms.DELETE("/:id", controllers.DeleteRoom)
	}

	apartments := r.Group("/apartments")
	{
		apartments.GET("", controllers.GetApartments)
		apartments.GET("/:id", controllers.GetApartmentByID)
		apartments.POST("", controllers.CreateApartment)
		apartments.PATCH("/:id", controllers.UpdateApartment)
		apartments.PUT("/:id", controllers.UpdateApartment)
		apartments.DELETE("/:id", controllers.DeleteApartment)
	}

	// Reservations
	bookings := r.Group("/bookings")
	{
		bookings.GET("", bc.GetBookings)
		bookings.POST("", bc.CreateBooking)
		bookings.GET("/:id", bc.GetBooking)
		bookings.PATCH("/:id", bc.UpdateBookingStatus)
		bookings.DELETE("/:id", bc.DeleteBooking)
	}

	// Site content
	services := r.Group("/services")
	{
		services.GET("", controllers.GetServices)
		services.POST("", controllers.CreateService)
		services.PUT("/:id", controllers.UpdateService)
		services.DELETE("/:id", controllers.DeleteService)
	}

	testimonials := r.Group("/testimonials")
	{
		testimonials.GET("", controllers.GetTestimonials)
		testimonials.POST("", controllers.CreateTestimonial)
		testimonials.PATCH("/:id/approve", controllers.ApproveTestimonial)
		testimonials.DELETE("/:id", controllers.DeleteTestimonial)
	}

	gallery := r.Group("/gallery")
	{
		gallery.GET("", controllers.GetGallery)
		gallery.POST("", controllers.CreateGalleryImage)
		gallery.PUT("/:id", controllers.UpdateGalleryImage)
		gallery.DELETE("/:id", controllers.DeleteGalleryImage)
	}

	users := r.Group("/users")
	{
		users.GET("", controllers.GetUsers)
		users.POST("", controllers.CreateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	return r
}
