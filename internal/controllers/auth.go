package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dentalcare/internal/middleware"
	"dentalcare/internal/models"
	"dentalcare/internal/utils"
)

const sessionTTL = 24 * time.Hour

type AuthController struct {
	db      *gorm.DB
	mailer  utils.Mailer
	secret  []byte
	baseURL string
}

func NewAuthController(db *gorm.DB, mailer utils.Mailer, secret []byte, baseURL string) *AuthController {
	return &AuthController{db: db, mailer: mailer, secret: secret, baseURL: baseURL}
}

type registerPayload struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates a pending account and mails a confirmation link. The
// account is kept even when mail delivery fails; the user can still confirm
// through another copy of the link.
func (a *AuthController) Register(c *gin.Context) {
	var p registerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(p.Username)
	email := strings.ToLower(strings.TrimSpace(p.Email))

	var count int64
	if err := a.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account, try again"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}
	if err := a.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account, try again"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	user := models.User{Username: username, Email: email, PasswordHash: hash, Role: models.RoleUser}
	if err := a.db.Create(&user).Error; err != nil {
		// lost a duplicate race to a concurrent registration
		logrus.WithError(err).WithField("username", username).Error("user insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account, try again"})
		return
	}

	token, err := utils.MintConfirmToken(a.secret, email, utils.ConfirmTokenTTL)
	if err != nil {
		logrus.WithError(err).Error("could not mint confirmation token")
		c.JSON(http.StatusCreated, gin.H{"message": "account created, confirmation mail unavailable"})
		return
	}
	confirmURL := fmt.Sprintf("%s/api/confirm/%s", a.baseURL, token)
	body := fmt.Sprintf(
		"Hello %s,\n\nFollow this link to confirm your registration:\n%s\n\nIf this wasn't you, ignore this mail.",
		username, confirmURL,
	)
	if err := a.mailer.Send(email, "Confirm your registration", body); err != nil {
		logrus.WithError(err).WithField("email", email).Error("confirmation mail failed")
		c.JSON(http.StatusCreated, gin.H{"message": "account created, confirmation mail could not be sent"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "confirmation mail sent"})
}

// ConfirmEmail flips the confirmed flag for the address bound into the
// token. Confirming twice is a no-op.
func (a *AuthController) ConfirmEmail(c *gin.Context) {
	email, err := utils.VerifyConfirmToken(a.secret, c.Param("token"))
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			c.JSON(http.StatusGone, gin.H{"error": "confirmation link expired, log in to request a new one"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation link invalid, please register again"})
		return
	}

	var user models.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no account for this address"})
		return
	}
	if user.EmailConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": "email already confirmed"})
		return
	}
	if err := a.db.Model(&user).Update("email_confirmed", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not confirm email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email confirmed, you can log in now"})
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and issues a session token, both as a JSON field
// and as an HTTP-only cookie. Confirmation state is tracked but does not
// gate login.
func (a *AuthController) Login(c *gin.Context) {
	var p loginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := a.db.Where("username = ?", strings.TrimSpace(p.Username)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := utils.CheckPasswordHash(user.PasswordHash, p.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := a.createSessionToken(user)
	if err != nil {
		logrus.WithError(err).Error("could not sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (a *AuthController) createSessionToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"typ":  "session",
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Profile returns the authenticated user, including the confirmation flag so
// clients can prompt unconfirmed accounts.
func (a *AuthController) Profile(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var user models.User
	if err := a.db.First(&user, id.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
