package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fieldops/internal/database"
	"fieldops/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fieldops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM resources")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@fieldops.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrador",
		Phone:        "+51 999 000 001",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@fieldops.local / admin123")

	techNames := []string{"Carlos Huaman", "Maria Quispe", "Jorge Flores"}
	technicians := []domain.User{}
	for i, name := range techNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("tech123"), bcrypt.DefaultCost)
		tech := domain.User{
			Email:        fmt.Sprintf("tecnico%d@fieldops.local", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleTechnician,
			Name:         name,
			Phone:        fmt.Sprintf("+51 999 000 1%02d", i+10),
		}
		db.Create(&tech)
		technicians = append(technicians, tech)
	}
	log.Printf("Created %d technicians (password tech123)", len(technicians))

	// ================== RESOURCES ==================
	log.Println("Creating installation orders...")

	pending := domain.Resource{
		Name:           "Instalacion - Juan Garcia",
		Description:    "Instalacion de fibra, plan 50 Mbps",
		State:          domain.ResourcePending,
		ClientCode:     "CLI-0451",
		ClientName:     "Juan Garcia",
		ClientPhone:    "+51 988 111 222",
		ServiceRequest: "Internet 50 Mbps",
		NAPBoxRoute:    "NAP-07 / Ruta Norte",
		GPSLocation:    "-12.046374,-77.042793",
		RequestedTime:  "09:00",
	}
	db.Create(&pending)

	assigned := domain.Resource{
		Name:           "Reparacion - Rosa Mendoza",
		Description:    "Sin senal desde ayer, revisar acometida",
		State:          domain.ResourceAssigned,
		ClientCode:     "CLI-0312",
		ClientName:     "Rosa Mendoza",
		ClientPhone:    "+51 988 333 444",
		ServiceRequest: "Reparacion",
		NAPBoxRoute:    "NAP-03 / Ruta Centro",
		GPSLocation:    "-12.056100,-77.033500",
		AssigneeID:     &technicians[0].ID,
		AssigneeName:   technicians[0].Name,
	}
	db.Create(&assigned)

	today := time.Now().Format("2006-01-02")
	db.Create(&domain.Task{
		ResourceID:   assigned.ID,
		AdminID:      admin.ID,
		AssigneeID:   technicians[0].ID,
		TaskType:     "Reparacion",
		Description:  "Revisar acometida y conector mecanico",
		AssignedDate: today,
		State:        domain.TaskPendiente,
	})

	// ================== RESERVATIONS ==================
	log.Println("Creating visit reservations...")

	db.Create(&domain.Reservation{
		ResourceID: pending.ID,
		UserID:     technicians[1].ID,
		Date:       today,
		StartTime:  "10:00",
		EndTime:    "11:00",
	})
	db.Create(&domain.Reservation{
		ResourceID: pending.ID,
		UserID:     technicians[2].ID,
		Date:       today,
		StartTime:  "11:00",
		EndTime:    "12:30",
	})

	log.Println("Seed complete.")
}
