package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppEnv string `yaml:"APP_ENV"`
	AppURL string `yaml:"APP_URL"`
	Port   string `yaml:"PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Google OAuth configuration
	GoogleClientID     string `yaml:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `yaml:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `yaml:"GOOGLE_REDIRECT_URL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_ENV":
		return config.AppEnv
	case "APP_URL":
		return config.AppURL
	case "PORT":
		return config.Port
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GOOGLE_CLIENT_ID":
		return config.GoogleClientID
	case "GOOGLE_CLIENT_SECRET":
		return config.GoogleClientSecret
	case "GOOGLE_REDIRECT_URL":
		return config.GoogleRedirectURL
	default:
		return ""
	}
}

func IsProduction() bool {
	return config.AppEnv == "production"
}

// GetJWTSecret enforces the signing-key policy: a missing secret is
// fatal in production and falls back to a placeholder in development.
func GetJWTSecret() string {
	secret := GetConfig("JWT_SECRET")
	if secret == "" {
		if IsProduction() {
			log.Fatal("Missing JWT_SECRET configuration in production")
		}
		log.Println("Warning: using placeholder JWT secret for development. Sessions will not survive restarts safely.")
		return "placeholder-secret-for-development"
	}
	return secret
}
