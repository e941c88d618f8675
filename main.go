package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cardquest-service/internal/config"
	"cardquest-service/internal/db"
	"cardquest-service/internal/event"
	"cardquest-service/internal/handlers"
	"cardquest-service/internal/repository"
	"cardquest-service/internal/service"
	"cardquest-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.DisconnectMongo()

	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required")
	}
	db.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	defer db.CloseRedis()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURL != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, quest events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)

	// Users and registration
	userRepo := repository.NewUserRepository(database)
	regRepo := repository.NewRegistrationRepository(db.RedisClient)
	userService := service.NewUserService(userRepo, regRepo, cfg.BotURL)
	userHandler := handlers.NewUserHandler(userService)

	// Quiz engine over the question bank
	questionRepo := repository.NewQuestionRepository(database)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	quizService, err := service.NewQuizService(loadCtx, questionRepo)
	loadCancel()
	if err != nil {
		log.Fatalf("Failed to build quiz engine: %v", err)
	}
	quizHandler := handlers.NewQuizHandler(quizService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupUserRoutes(r, userHandler, publisher)
	setupQuizRoutes(r, quizHandler, publisher)

	// Consul registration
	if cfg.ConsulAddress != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Service discovery init failed: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Service registration failed: %v", err)
		}
		defer func() {
			if err := registry.Deregister(); err != nil {
				log.Printf("Error deregistering from Consul: %v", err)
			}
		}()
	} else {
		log.Println("Consul not configured, skipping service registration")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	log.Println("Server exited, goodbye!")
}

func setupUserRoutes(r *gin.Engine, userHandler *handlers.UserHandler, publisher *event.EventPublisher) {
	publicUser := r.Group("/public/quest/user")
	{
		publicUser.GET("/id/:id", func(c *gin.Context) {
			userHandler.GetUserByID(c)
			if publisher != nil {
				publisher.Publish("quest.user.lookup", gin.H{"id": c.Param("id")})
			}
		})
		publicUser.GET("/sha/:sha", func(c *gin.Context) {
			userHandler.GetUserByCardHash(c)
			if publisher != nil {
				publisher.Publish("quest.user.lookup", gin.H{"sha": c.Param("sha")})
			}
		})
	}

	publicRegister := r.Group("/public/quest/register")
	{
		publicRegister.POST("/:sha", func(c *gin.Context) {
			userHandler.BeginRegistration(c)
			if publisher != nil {
				publisher.Publish("quest.user.registration_started", gin.H{
					"sha":       c.Param("sha"),
					"timestamp": time.Now(),
				})
			}
		})
	}
}

func setupQuizRoutes(r *gin.Engine, quizHandler *handlers.QuizHandler, publisher *event.EventPublisher) {
	protectedQuest := r.Group("/protected/quest")

	// Callers arrive through the gateway, which resolves the session
	// to an X-User-ID header.
	protectedQuest.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
				"code":    "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	{
		// Assign an unseen question in a category
		protectedQuest.GET("/question/:user/:category", func(c *gin.Context) {
			quizHandler.GetQuestion(c)
			if publisher != nil {
				publisher.Publish("quest.question.assigned", gin.H{
					"user_id":   c.Param("user"),
					"category":  c.Param("category"),
					"timestamp": time.Now(),
				})
			}
		})

		// Judge a submitted answer against an issued instance
		protectedQuest.POST("/answer/:id/:answer", func(c *gin.Context) {
			quizHandler.AnswerQuestion(c)
			if publisher != nil {
				publisher.Publish("quest.answer.judged", gin.H{
					"instance_id": c.Param("id"),
					"user_id":     c.GetHeader("X-User-ID"),
					"timestamp":   time.Now(),
				})
			}
		})
	}
}
