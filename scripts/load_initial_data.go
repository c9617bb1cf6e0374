package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"maintenance-portal-backend/internal/auth"
	"maintenance-portal-backend/internal/config"
	"maintenance-portal-backend/internal/database"
	"maintenance-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type BuildingData struct {
	Name  string     `yaml:"name"`
	Rooms []RoomData `yaml:"rooms,omitempty"`
}

type RoomData struct {
	Number string `yaml:"number"`
}

type StoreData struct {
	Name string `yaml:"name"`
}

type MaterialData struct {
	Name string `yaml:"name"`
	Unit string `yaml:"unit,omitempty"`
}

type ComplaintTypeData struct {
	Name string `yaml:"name"`
}

type ProfileData struct {
	Email        string `yaml:"email"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Password     string `yaml:"password"`
	BuildingName string `yaml:"building_name,omitempty"`
	RoomNumber   string `yaml:"room_number,omitempty"`
	Phone        string `yaml:"phone,omitempty"`
}

// File structures
type BuildingsFile struct {
	Buildings []BuildingData `yaml:"buildings"`
}

type StoresFile struct {
	Stores []StoreData `yaml:"stores"`
}

type MaterialsFile struct {
	Materials []MaterialData `yaml:"materials"`
}

type ComplaintTypesFile struct {
	ComplaintTypes []ComplaintTypeData `yaml:"complaint_types"`
}

type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var buildingsFile BuildingsFile
	if err := readYAML(filepath.Join(dataDir, "buildings.yaml"), &buildingsFile); err != nil {
		return fmt.Errorf("failed to load buildings: %w", err)
	}

	var storesFile StoresFile
	if err := readYAML(filepath.Join(dataDir, "stores.yaml"), &storesFile); err != nil {
		return fmt.Errorf("failed to load stores: %w", err)
	}

	var materialsFile MaterialsFile
	if err := readYAML(filepath.Join(dataDir, "materials.yaml"), &materialsFile); err != nil {
		return fmt.Errorf("failed to load materials: %w", err)
	}

	var typesFile ComplaintTypesFile
	if err := readYAML(filepath.Join(dataDir, "complaint_types.yaml"), &typesFile); err != nil {
		return fmt.Errorf("failed to load complaint types: %w", err)
	}

	var profilesFile ProfilesFile
	if err := readYAML(filepath.Join(dataDir, "profiles.yaml"), &profilesFile); err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	created := 0
	for _, buildingData := range buildingsFile.Buildings {
		n, err := createBuilding(db, buildingData)
		if err != nil {
			return fmt.Errorf("failed to create building %s: %w", buildingData.Name, err)
		}
		created += n
	}
	log.Printf("📋 Buildings and rooms: %d created", created)

	created = 0
	for _, storeData := range storesFile.Stores {
		var store models.Store
		err := db.Where("name = ?", storeData.Name).First(&store).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&models.Store{Name: storeData.Name}).Error; err != nil {
				return fmt.Errorf("failed to create store %s: %w", storeData.Name, err)
			}
			created++
		} else if err != nil {
			return err
		}
	}
	log.Printf("📋 Stores: %d created, %d total", created, len(storesFile.Stores))

	created = 0
	for _, materialData := range materialsFile.Materials {
		var material models.Material
		err := db.Where("name = ?", materialData.Name).First(&material).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&models.Material{Name: materialData.Name, Unit: materialData.Unit}).Error; err != nil {
				return fmt.Errorf("failed to create material %s: %w", materialData.Name, err)
			}
			created++
		} else if err != nil {
			return err
		}
	}
	log.Printf("📋 Materials: %d created, %d total", created, len(materialsFile.Materials))

	created = 0
	for _, typeData := range typesFile.ComplaintTypes {
		var complaintType models.ComplaintType
		err := db.Where("name = ?", typeData.Name).First(&complaintType).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&models.ComplaintType{Name: typeData.Name}).Error; err != nil {
				return fmt.Errorf("failed to create complaint type %s: %w", typeData.Name, err)
			}
			created++
		} else if err != nil {
			return err
		}
	}
	log.Printf("📋 Complaint types: %d created, %d total", created, len(typesFile.ComplaintTypes))

	created = 0
	for _, profileData := range profilesFile.Profiles {
		n, err := createProfile(db, profileData)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.Email, err)
		}
		created += n
	}
	log.Printf("📋 Profiles: %d created, %d total", created, len(profilesFile.Profiles))

	return nil
}

func createBuilding(db *gorm.DB, data BuildingData) (int, error) {
	created := 0

	var building models.Building
	err := db.Where("name = ?", data.Name).First(&building).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		building = models.Building{Name: data.Name}
		if err := db.Create(&building).Error; err != nil {
			return created, err
		}
		created++
	} else if err != nil {
		return created, err
	}

	for _, roomData := range data.Rooms {
		var room models.Room
		err := db.Where("building_id = ? AND number = ?", building.ID, roomData.Number).First(&room).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&models.Room{BuildingID: building.ID, Number: roomData.Number}).Error; err != nil {
				return created, err
			}
			created++
		} else if err != nil {
			return created, err
		}
	}

	return created, nil
}

func createProfile(db *gorm.DB, data ProfileData) (int, error) {
	role := models.ProfileRole(data.Role)
	if !role.IsValid() {
		return 0, fmt.Errorf("invalid role %q", data.Role)
	}

	var profile models.Profile
	err := db.Where("email = ?", data.Email).First(&profile).Error
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return 0, err
	}

	profile = models.Profile{
		Email:        data.Email,
		Name:         data.Name,
		Role:         role,
		PasswordHash: hash,
		BuildingName: data.BuildingName,
		RoomNumber:   data.RoomNumber,
		Phone:        data.Phone,
		IsActive:     true,
	}
	if err := db.Create(&profile).Error; err != nil {
		return 0, err
	}
	return 1, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
