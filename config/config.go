package config

import (
	"fmt"
	"os"

	"github.com/ChristianMoraLopez/nutriplanbackend/logger"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// JWTSettings holds everything the token layer needs to sign and verify.
type JWTSettings struct {
	Secret   string
	Issuer   string
	Audience string
	Realm    string
}

// Settings is the environment-driven configuration, loaded once at startup.
type Settings struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBRootCert string

	JWT            JWTSettings
	GoogleClientID string

	S3Region      string
	S3Bucket      string
	CloudFrontURL string

	Port string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env when present and builds the settings. A missing .env is not
// an error so containers can rely on real environment variables.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		logger.L().Info("no .env file found, using process environment")
	}

	return &Settings{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "nutriplan"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		DBRootCert: os.Getenv("DB_ROOT_CERT"),

		JWT: JWTSettings{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   getenv("JWT_ISSUER", "nutriplan"),
			Audience: getenv("JWT_AUDIENCE", "nutriplan-users"),
			Realm:    getenv("JWT_REALM", "nutriplan"),
		},
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),

		S3Region:      getenv("S3_REGION", os.Getenv("AWS_REGION")),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),

		Port: getenv("PORT", "8080"),
	}
}

// OpenDB connects to PostgreSQL and migrates the schema. The optional root
// certificate enables verify-full against managed databases.
func OpenDB(cfg *Settings) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
	if cfg.DBRootCert != "" {
		dsn = fmt.Sprintf("%s sslrootcert=%s", dsn, cfg.DBRootCert)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.CategoriaIngrediente{},
		&models.Ingrediente{},
		&models.MetodoPreparacion{},
		&models.TipoComida{},
		&models.Comida{},
		&models.Receta{},
		&models.RecetaIngrediente{},
		&models.RecetaGuardada{},
		&models.Objetivo{},
		&models.Menu{},
		&models.SeleccionIngrediente{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	logger.L().Info("database connection established", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return db, nil
}
