package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/permissions"
)

func Init(dsn string) *gorm.DB {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Asset{},
		&models.AssetMovement{},
		&models.ServiceJob{},
		&models.JobComment{},
		&models.Project{},
		&models.PaymentInstruction{},
		&models.AccountHead{},
		&models.Collection{},
		&models.Deposit{},
		&models.Task{},
		&models.Announcement{},
		&models.ChatThread{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultRoles(db)
	createDefaultAdmin(db)

	return db
}

// The built-in roles. Administrator is the only isDefault role; its
// permission set is not editable through the API.
func seedDefaultRoles(db *gorm.DB) {
	defaults := []models.Role{
		{
			Name:      models.RoleAdministrator,
			IsDefault: true,
			Permissions: []string{
				permissions.PermDashboardView,
				permissions.PermFinanceView, permissions.PermFinanceCreate,
				permissions.PermFinanceApprove, permissions.PermFinanceDelete,
				permissions.PermJobsView, permissions.PermJobsCreate,
				permissions.PermJobsAssign, permissions.PermJobsUpdate,
				permissions.PermMessagesView, permissions.PermMessagesCreate,
				permissions.PermMessagesMembers,
				permissions.PermUsersView, permissions.PermUsersCreate,
				permissions.PermUsersEdit, permissions.PermUsersDisable,
				permissions.PermUsersImpersonate,
				permissions.PermRolesView, permissions.PermRolesManage,
				permissions.PermProjectsManage,
				permissions.PermAccountsManage, permissions.PermAccountsApprove,
				permissions.PermTasksManage, permissions.PermAnnouncementsManage,
				permissions.PermAssetsView, permissions.PermAssetsManage,
				permissions.PermAssetsMove,
			},
		},
		{
			Name: models.RoleManager,
			Permissions: []string{
				permissions.PermDashboardView,
				permissions.PermFinanceView, permissions.PermFinanceCreate,
				permissions.PermJobsView, permissions.PermJobsCreate,
				permissions.PermJobsAssign, permissions.PermJobsUpdate,
				permissions.PermMessagesView, permissions.PermMessagesCreate,
				permissions.PermUsersView,
				permissions.PermProjectsManage,
				permissions.PermTasksManage, permissions.PermAnnouncementsManage,
				permissions.PermAssetsView, permissions.PermAssetsMove,
			},
		},
		{
			Name: models.RoleTechnician,
			Permissions: []string{
				permissions.PermDashboardView,
				permissions.PermJobsView, permissions.PermJobsUpdate,
				permissions.PermMessagesView,
				permissions.PermTasksManage,
				permissions.PermAssetsView,
			},
		},
		{
			Name: models.RoleAccountant,
			Permissions: []string{
				permissions.PermDashboardView,
				permissions.PermFinanceView, permissions.PermFinanceCreate,
				permissions.PermMessagesView,
				permissions.PermAccountsManage,
				permissions.PermTasksManage,
			},
		},
	}

	for _, role := range defaults {
		var count int64
		if err := db.Model(&models.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			log.Printf("failed to check role %s: %v", role.Name, err)
			continue
		}
		if count > 0 {
			continue
		}

		role.ID = uuid.NewString()
		if err := db.Create(&role).Error; err != nil {
			log.Printf("failed to create role %s: %v", role.Name, err)
			continue
		}
		log.Printf("created default role: %s", role.Name)
	}
}

// Admin comes from env/config only, never from the API.
func createDefaultAdmin(db *gorm.DB) {
	email := envOr("ADMIN_EMAIL", "admin@tabdeel.local")
	password := envOr("ADMIN_PASSWORD", "Admin123!")

	var role models.Role
	if err := db.First(&role, "name = ?", models.RoleAdministrator).Error; err != nil {
		log.Printf("failed to load administrator role: %v", err)
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role_id = ?", role.ID).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		Status:       models.UserActive,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", email)
}
