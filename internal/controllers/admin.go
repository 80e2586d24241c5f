package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dentalcare/internal/models"
	"dentalcare/internal/utils"
)

// AdminController carries the role-gated management routes. The role check
// itself lives in middleware; these handlers assume it already passed.
type AdminController struct {
	db        *gorm.DB
	uploadDir string
}

func NewAdminController(db *gorm.DB, uploadDir string) *AdminController {
	return &AdminController{db: db, uploadDir: uploadDir}
}

func (a *AdminController) Services(c *gin.Context) {
	var services []models.Service
	if err := a.db.Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

type serviceForm struct {
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"required"`
}

func (a *AdminController) CreateService(c *gin.Context) {
	var f serviceForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := utils.SaveImage(c, "image", a.uploadDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	service := models.Service{Name: f.Name, Description: f.Description, Image: image}
	if err := a.db.Create(&service).Error; err != nil {
		logrus.WithError(err).Error("service insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (a *AdminController) UpdateService(c *gin.Context) {
	var service models.Service
	if err := a.db.First(&service, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	var f serviceForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := utils.SaveImage(c, "image", a.uploadDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	service.Name = f.Name
	service.Description = f.Description
	if image != "" {
		service.Image = image
	}
	if err := a.db.Save(&service).Error; err != nil {
		logrus.WithError(err).Error("service update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (a *AdminController) Appointments(c *gin.Context) {
	var appts []models.Appointment
	if err := a.db.Order("created_at desc").Find(&appts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

type dentistForm struct {
	Name        string `form:"name" binding:"required,max=100"`
	Age         int    `form:"age" binding:"required,gte=18,lte=100"`
	Experience  int    `form:"experience" binding:"gte=0,lte=80"`
	PhoneNumber string `form:"phone_number" binding:"required,max=20"`
}

func (a *AdminController) CreateDentist(c *gin.Context) {
	var f dentistForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := utils.SaveImage(c, "image", a.uploadDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dentist := models.Dentist{
		Name:        f.Name,
		Age:         f.Age,
		Experience:  f.Experience,
		PhoneNumber: f.PhoneNumber,
		Image:       image,
	}
	if err := a.db.Create(&dentist).Error; err != nil {
		logrus.WithError(err).Error("dentist insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save dentist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"dentist": dentist})
}

// DeleteDentist removes a dentist and every appointment referencing it. The
// schema carries a cascade constraint as well; deleting in one transaction
// keeps the invariant on drivers that do not enforce it.
func (a *AdminController) DeleteDentist(c *gin.Context) {
	var dentist models.Dentist
	if err := a.db.First(&dentist, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dentist not found"})
		return
	}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dentist_id = ?", dentist.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dentist).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("dentist_id", dentist.ID).Error("dentist delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete dentist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dentist deleted"})
}

func (a *AdminController) Patients(c *gin.Context) {
	var patients []models.Patient
	if err := a.db.Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

type patientForm struct {
	Name        string `form:"name" binding:"required,max=100"`
	Age         int    `form:"age" binding:"required,gte=0,lte=150"`
	PhoneNumber string `form:"phone_number" binding:"required,max=20"`
}

func (a *AdminController) CreatePatient(c *gin.Context) {
	var f patientForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := utils.SaveImage(c, "image", a.uploadDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient := models.Patient{Name: f.Name, Age: f.Age, PhoneNumber: f.PhoneNumber, Image: image}
	if err := a.db.Create(&patient).Error; err != nil {
		logrus.WithError(err).Error("patient insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save patient"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"patient": patient})
}
