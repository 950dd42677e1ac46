package database

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contahub/models"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	var dialector gorm.Dialector

	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	case dsn != "":
		// DSN sem prefixo: assume postgres mesmo assim
		dialector = postgres.Open(dsn)
	default:
		dbPath := "contahub.db"
		dialector = sqlite.Open(dbPath)
		dsn = dbPath
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Erro conexão DB:", err)
	}

	if err := Migrate(database); err != nil {
		log.Fatal("Erro migração:", err)
	}

	DB = database
	log.Println("📦 DB conectada e migrada em", dsn)
}

// Migrate roda o AutoMigrate de todos os modelos. Exposto para os testes
// subirem um sqlite em memória com o mesmo esquema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Workspace{},
		&models.User{},
		&models.Membership{},
		&models.RuleSet{},
		&models.AuditLog{},
		&models.Client{},
		&models.Task{},
		&models.Document{},
		&models.Link{},
		&models.Subscription{},
		&models.PaymentEvent{},
	)
}
