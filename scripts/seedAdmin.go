package main

import (
	"ecolearner/config"
	"ecolearner/database"
	"ecolearner/models"
	"log"
	"os"
)

// Bootstraps the first admin account. Role changes normally go through
// the admin-guarded PATCH /users/:email, which needs an existing admin.
//
// Usage: go run scripts/seedAdmin.go admin@example.com "Site Admin"
func main() {
	cfg := config.LoadConfig()

	store, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/seedAdmin.go <email> [name]")
	}
	email := os.Args[1]
	name := "Admin"
	if len(os.Args) > 2 {
		name = os.Args[2]
	}

	var user models.User
	if err := store.Db.Where("email = ?", email).First(&user).Error; err == nil {
		if err := store.Db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Printf("Promoted existing user %s to admin", email)
		return
	}

	user = models.User{Name: name, Email: email, Role: models.RoleAdmin}
	if err := store.Db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s", email)
}
