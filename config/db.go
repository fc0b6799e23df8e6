package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelops-backend/models"
	"hotelops-backend/utils"
)

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
		q.Set("loc", "Local")
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

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotelops_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, runs migrations and seeds
// the catalog when empty. The returned handle is injected into every
// service; there is no package-level singleton.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
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
		return nil, err
	}

	// Parent -> child order.
	if err := db.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.RoomAccount{},
		&models.LedgerEntry{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
	); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// SeedDatabase fills in default room types, rooms and menu items when
// the tables are empty.
func SeedDatabase(db *gorm.DB) {
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2},
			{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4},
			{TypeName: "Suite", Description: "Suite", MaxGuests: 5},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		var standard models.RoomType
		db.Where("type_name = ?", "Standard").First(&standard)
		typeID := standard.ID
		rooms := []models.Room{
			{RoomNumber: "101", Floor: "1", Price: 1000, Active: true, RoomTypeID: &typeID},
			{RoomNumber: "102", Floor: "1", Price: 1000, Active: true, RoomTypeID: &typeID},
			{RoomNumber: "201", Floor: "2", Price: 1500, Active: true, RoomTypeID: &typeID},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		gst := func(p float64) *float64 { return &p }
		items := []models.MenuItem{
			{Name: "Masala Dosa", Category: "breakfast", Price: 120, CGSTPercent: gst(2.5), SGSTPercent: gst(2.5), Available: true},
			{Name: "Paneer Butter Masala", Category: "main", Price: 260, CGSTPercent: gst(2.5), SGSTPercent: gst(2.5), Available: true},
			{Name: "Butter Naan", Category: "main", Price: 45, CGSTPercent: gst(2.5), SGSTPercent: gst(2.5), Available: true},
			{Name: "Filter Coffee", Category: "beverage", Price: 60, CGSTPercent: gst(9), SGSTPercent: gst(9), Available: true},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed menu items: %v", err)
		} else {
			log.Println("MenuItems seeded")
		}
	}
}
