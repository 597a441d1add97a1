package migration

import (
	"Privilege-Backend/entities"
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
	if err := db.AutoMigrate(&entities.PointTransaction{}); err != nil {
		log.Fatalf("Error migrating point transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reward{}); err != nil {
		log.Fatalf("Error migrating reward database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RedemptionHistory{}); err != nil {
		log.Fatalf("Error migrating redemption history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Milestone{}); err != nil {
		log.Fatalf("Error migrating milestone database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
