package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dentalcare/internal/middleware"
	"dentalcare/internal/models"
	"dentalcare/internal/utils"
)

type AppointmentController struct {
	db     *gorm.DB
	mailer utils.Mailer
}

func NewAppointmentController(db *gorm.DB, mailer utils.Mailer) *AppointmentController {
	return &AppointmentController{db: db, mailer: mailer}
}

type appointmentPayload struct {
	Name        string `json:"name" binding:"required,max=100"`
	Age         int    `json:"age" binding:"required,gt=0"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Reason      string `json:"reason" binding:"required"`
	DentistID   uint   `json:"dentist_id" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

// Create records a booking request. Anonymous requests are allowed; a
// session, when present, ties the request to the account. The confirmation
// mail is best-effort.
func (a *AppointmentController) Create(c *gin.Context) {
	var p appointmentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dentist models.Dentist
	if err := a.db.First(&dentist, p.DentistID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dentist not found"})
		return
	}

	appt := models.Appointment{
		Name:        p.Name,
		Age:         p.Age,
		PhoneNumber: p.PhoneNumber,
		Reason:      p.Reason,
		DentistID:   dentist.ID,
	}
	if id, ok := middleware.CurrentIdentity(c); ok {
		appt.UserID = &id.UserID
	}
	if err := a.db.Create(&appt).Error; err != nil {
		logrus.WithError(err).Error("appointment insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create appointment"})
		return
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment request #%d with %s has been received.\nThe clinic will contact you at %s to settle the time.",
		p.Name, appt.ID, dentist.Name, p.PhoneNumber,
	)
	if err := a.mailer.Send(p.Email, "Appointment request received", body); err != nil {
		logrus.WithError(err).WithField("appointment_id", appt.ID).Error("appointment mail failed")
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}
