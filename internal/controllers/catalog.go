package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dentalcare/internal/models"
)

// CatalogController serves the public read-only pages.
type CatalogController struct {
	db *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{db: db}
}

func (ct *CatalogController) Home(c *gin.Context) {
	var services []models.Service
	if err := ct.db.Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (ct *CatalogController) Dentists(c *gin.Context) {
	var dentists []models.Dentist
	if err := ct.db.Find(&dentists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dentists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dentists": dentists})
}

func (ct *CatalogController) Patients(c *gin.Context) {
	var patients []models.Patient
	if err := ct.db.Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// Search matches dentists and services by name.
func (ct *CatalogController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	dentists := make([]models.Dentist, 0)
	services := make([]models.Service, 0)
	if q != "" {
		like := "%" + q + "%"
		if err := ct.db.Where("name LIKE ?", like).Find(&dentists).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		if err := ct.db.Where("name LIKE ?", like).Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "dentists": dentists, "services": services})
}

func (ct *CatalogController) Contacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"address": "12 Peremohy Ave, Kyiv",
		"phone":   "+380 44 123 4567",
		"email":   "reception@dentalcare.example",
		"hours":   "Mon-Fri 9:00-18:00",
	})
}
