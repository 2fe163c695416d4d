package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"feedback-main/internal/app"
	"feedback-main/internal/project"

	_ "github.com/lib/pq"
)

const cfgPath = "config/config.yaml"

// Заводит демо-проект и единственный раз печатает его ключи
func main() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()
	defer func() { _ = zapLogger.Sync() }()

	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("Error parsing config: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("Error connecting to DB: %v", err)
	}
	defer db.Close()

	projectRepository := project.NewProjectDBRepository(db, logger)

	demoProject, secretKey, err := projectRepository.Create(
		context.Background(),
		"Demo Project",
		[]string{"*"},
		map[string]string{"primaryColor": "#4f46e5"},
	)
	if err != nil {
		logger.Fatalf("Error seeding demo project: %v", err)
	}

	logger.Infof("Demo project created: id=%s", demoProject.ID)
	logger.Infof("Public key:  %s", demoProject.PublicKey)
	logger.Infof("Secret key:  %s (shown only once)", secretKey)
}
