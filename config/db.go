package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-dd-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_dd")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills an empty database with the themed starter inventory and
// one back-office admin. Each block only runs when its table is empty.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{
				Name:         "Cueva del Dragón",
				Description:  "Habitación temática con cama king y paredes de roca volcánica.",
				Price:        45000,
				IsAvailable:  true,
				MaxGuests:    2,
				SquareMeters: 32,
			},
			{
				Name:         "Torre del Mago",
				Description:  "Suite en la torre con vista panorámica y biblioteca arcana.",
				Price:        60000,
				IsAvailable:  true,
				MaxGuests:    3,
				SquareMeters: 40,
			},
			{
				Name:         "Bosque Encantado",
				Description:  "Habitación doble rodeada de jardín interior iluminado.",
				Price:        38000,
				IsAvailable:  true,
				MaxGuests:    2,
				SquareMeters: 28,
			},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var aptCount int64
	DB.Model(&models.Apartment{}).Count(&aptCount)
	if aptCount == 0 {
		apartments := []models.Apartment{
			{
				Name:          "Suite del Alquimista",
				Description:   "Apartamento de dos habitaciones con cocina completa.",
				PricePerNight: 90000,
				IsActive:      true,
				IsFeatured:    true,
				NumBedrooms:   2,
				Capacity:      4,
				SquareMeters:  75,
				Amenities:     datatypes.JSON(`["wifi","kitchen","balcony"]`),
			},
			{
				Name:          "Refugio del Bardo",
				Description:   "Estudio acogedor con terraza privada.",
				PricePerNight: 55000,
				IsActive:      true,
				NumBedrooms:   1,
				Capacity:      2,
				SquareMeters:  45,
				Amenities:     datatypes.JSON(`["wifi","terrace"]`),
			},
		}
		if err := DB.Create(&apartments).Error; err != nil {
			log.Printf("warning: failed to seed apartments: %v", err)
		} else {
			log.Println("Apartments seeded")
		}
	}

	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Admin User",
				Email:    envOrDefault("ADMIN_EMAIL", "admin@hotel-dd.local"),
				Password: string(hash),
				IsAdmin:  true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var svcCount int64
	DB.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		services := []models.Service{
			{Title: "Restaurante La Taberna", Desc: "Cocina local e internacional."},
			{Title: "Piscina del Oasis", Desc: "Piscina exterior climatizada."},
			{Title: "Salón de Eventos", Desc: "Espacio para celebraciones y reuniones."},
		}
		if err := DB.Create(&services).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Services seeded")
		}
	}
}

// ConnectDatabase opens the MySQL connection, runs migrations and seeds the
// starter data. Sets the package-level DB on success.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Apartment{},
		&models.Booking{},
		&models.Service{},
		&models.Testimonial{},
		&models.GalleryImage{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
