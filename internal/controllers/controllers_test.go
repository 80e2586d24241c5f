package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dentalcare/internal/db"
	"dentalcare/internal/models"
	"dentalcare/internal/utils"
)

const testSecret = "controllers-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.ErrorLevel)
}

type recordedMail struct {
	To      string
	Subject string
	Body    string
}

// mailRecorder captures outbound mail; with fail set it simulates a broken
// SMTP server.
type mailRecorder struct {
	sent []recordedMail
	fail bool
}

func (m *mailRecorder) Send(to, subject, body string) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.sent = append(m.sent, recordedMail{To: to, Subject: subject, Body: body})
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return conn
}

func createUser(t *testing.T, conn *gorm.DB, username, email, role string) models.User {
	t.Helper()
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	user := models.User{Username: username, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, conn.Create(&user).Error)
	return user
}

func sessionToken(t *testing.T, user models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"typ":  "session",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type formFile struct {
	Field   string
	Name    string
	Content []byte
}

func doForm(t *testing.T, r http.Handler, method, path string, fields map[string]string, file *formFile, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(file.Field, file.Name)
		require.NoError(t, err)
		_, err = fw.Write(file.Content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}
