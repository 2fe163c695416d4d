package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"feedback-main/internal/app"
	"feedback-main/internal/events"
	"feedback-main/internal/feedback"
	handlersFeedback "feedback-main/internal/handlers/feedback"
	handlersProject "feedback-main/internal/handlers/project"
	"feedback-main/internal/middleware"
	"feedback-main/internal/project"

	_ "github.com/lib/pq"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init db
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Infof("Failed to get response to ping: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.CfgRedis.Addr,
		Password: "",
		DB:       0, // стандартная БД
	})

	// init kafka producer (опционально)
	var producer events.EventProducer
	if c.CfgKafka.Enabled {
		kafkaProducer := events.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
		defer func() {
			if err := kafkaProducer.Close(); err != nil {
				logger.Warnf("error to close kafka producer: %v", err)
			}
		}()
		producer = kafkaProducer
	}

	// init repository
	projectRepository := project.NewProjectDBRepository(db, logger)
	feedbackRepository := feedback.NewFeedbackDBRepository(db, logger)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS)
	r.Use(middleware.MetricsMiddleware)

	// init handlers
	feedbackHandlers := handlersFeedback.NewFeedbackHandler(logger, projectRepository, feedbackRepository, producer)
	projectHandlers := handlersProject.NewProjectHandler(logger, projectRepository)

	// Collector API: только этот маршрут под rate limit
	rateLimiter := middleware.NewRateLimiter(redisClient, logger, c.CfgRateLimit.Limit, c.CfgRateLimit.Window)
	collectorRouter := r.PathPrefix("/v1").Subrouter()
	collectorRouter.Use(rateLimiter.Middleware)
	collectorRouter.HandleFunc("/feedback", feedbackHandlers.Submit).Methods("POST", "OPTIONS")

	// Management API
	r.HandleFunc("/projects", projectHandlers.Create).Methods("POST")
	r.HandleFunc("/projects/{id}", projectHandlers.GetByID).Methods("GET")
	r.HandleFunc("/projects/{id}", projectHandlers.Delete).Methods("DELETE")
	r.HandleFunc("/projects/{projectId}/feedbacks", feedbackHandlers.GetByProjectID).Methods("GET")

	// Служебные маршруты
	r.HandleFunc("/health", feedbackHandlers.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
