package migration

import (
	"Recipe-Hub/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Tag{}); err != nil {
		log.Fatalf("Error migrating tag database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeCategory{}, &entities.RecipeTag{}); err != nil {
		log.Fatalf("Error migrating recipe join tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Comment{}); err != nil {
		log.Fatalf("Error migrating comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Collection{}, &entities.SavedRecipe{}); err != nil {
		log.Fatalf("Error migrating collection database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
