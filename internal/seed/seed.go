package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/mearajennifer/helper/internal/models"
)

var defaultCategories = []string{
	"Animals",
	"Arts & Culture",
	"Community",
	"Education",
	"Environment",
	"Food Security",
	"Health",
	"Housing",
}

// Categories ensures the category lookup rows exist.
func Categories(db *gorm.DB) error {
	for _, name := range defaultCategories {
		category := models.Category{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seed OK | categories=%d", len(defaultCategories))
	return nil
}
