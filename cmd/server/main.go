package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dentalcare/internal/config"
	"dentalcare/internal/controllers"
	"dentalcare/internal/db"
	"dentalcare/internal/middleware"
	"dentalcare/internal/redis"
	"dentalcare/internal/utils"
)

func main() {
	cfg := config.Load()

	dbConn := db.Init(cfg.DatabaseDSN)
	rdb := redis.Init(cfg.RedisAddr, cfg.RedisPassword)

	var mailer utils.Mailer = utils.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = utils.NewSMTPClient(cfg.SMTPHost, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)
	}

	auth := controllers.NewAuthController(dbConn, mailer, []byte(cfg.SecretKey), cfg.BaseURL)
	appointments := controllers.NewAppointmentController(dbConn, mailer)
	catalog := controllers.NewCatalogController(dbConn)
	reviews := controllers.NewReviewController(dbConn)
	admin := controllers.NewAdminController(dbConn, cfg.UploadDir)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Static("/static/uploads", cfg.UploadDir)

	r.GET("/", catalog.Home)

	api := r.Group("/api")
	{
		limited := api.Group("")
		limited.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			limited.POST("/register", auth.Register)
			limited.POST("/login", auth.Login)
		}
		api.GET("/confirm/:token", auth.ConfirmEmail)
		api.GET("/dentists", catalog.Dentists)
		api.GET("/patients", catalog.Patients)
		api.GET("/search", catalog.Search)
		api.GET("/contacts", catalog.Contacts)
		api.GET("/reviews", reviews.List)
		api.POST("/appointment", middleware.OptionalSession(cfg.SecretKey), appointments.Create)
	}

	authed := r.Group("/api")
	authed.Use(middleware.Session(cfg.SecretKey))
	{
		authed.POST("/logout", auth.Logout)
		authed.GET("/profile", auth.Profile)
		authed.POST("/reviews", reviews.Create)
		authed.PUT("/reviews/:id", reviews.Update)
		authed.DELETE("/reviews/:id", reviews.Delete)
	}

	adm := r.Group("/api/admin")
	adm.Use(middleware.Session(cfg.SecretKey), middleware.RequireAdmin())
	{
		adm.GET("/services", admin.Services)
		adm.POST("/services", admin.CreateService)
		adm.PUT("/services/:id", admin.UpdateService)
		adm.GET("/appointments", admin.Appointments)
		adm.POST("/dentists", admin.CreateDentist)
		adm.DELETE("/dentists/:id", admin.DeleteDentist)
		adm.GET("/patients", admin.Patients)
		adm.POST("/patients", admin.CreatePatient)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
