package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parcelhub/internal/config"
	"parcelhub/internal/db"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
)

const bcryptCost = 10

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin user")
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	if err := seedAdmin(ctx, userRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Println("Seed completed successfully!")
}

// seedAdmin creates the initial admin account, or promotes the existing
// record if the email is already registered.
func seedAdmin(ctx context.Context, repo repository.UserRepository, email, password string) error {
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	if existing != nil && err == nil {
		if existing.Role == model.RoleAdmin {
			log.Printf("Admin user %s already present", email)
			return nil
		}
		if _, err := repo.UpdateRoleByEmail(ctx, email, model.RoleAdmin); err != nil {
			return err
		}
		log.Printf("Promoted existing user %s to admin", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}
