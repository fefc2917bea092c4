package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/mentorlink-dev/mentorlink/db"
	"github.com/mentorlink-dev/mentorlink/internal/auth"
	"github.com/mentorlink-dev/mentorlink/internal/models"
	"github.com/mentorlink-dev/mentorlink/internal/router"
	"github.com/mentorlink-dev/mentorlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.InitJWTSecret("test-secret"))

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.PersonalBackground{},
		&models.UserExtension{},
	))

	db.DB = gdb

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func registerUser(t *testing.T, r *gin.Engine, username, email string) (token string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Test User",
		"username":                     username,
		"email":                        email,
		"password":                     "test-password",
		"terms_and_conditions_checked": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Alice",
		"username":                     "alice",
		"email":                        "alice@example.com",
		"password":                     "test-password",
		"terms_and_conditions_checked": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User struct {
			Username string `json:"username"`
			IsAdmin  bool   `json:"is_admin"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.True(t, resp.User.IsAdmin)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Bob",
		"username":                     "bob",
		"email":                        "bob@example.com",
		"password":                     "test-password",
		"terms_and_conditions_checked": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.User.IsAdmin)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := setupAPI(t)

	registerUser(t, r, "alice", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Alice Again",
		"username":                     "alice",
		"email":                        "alice2@example.com",
		"password":                     "test-password",
		"terms_and_conditions_checked": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Other Alice",
		"username":                     "alice2",
		"email":                        "alice@example.com",
		"password":                     "test-password",
		"terms_and_conditions_checked": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRequiresTermsAndValidInput(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Alice",
		"username":                     "alice",
		"email":                        "alice@example.com",
		"password":                     "test-password",
		"terms_and_conditions_checked": false,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Alice",
		"username":                     "alice",
		"email":                        "not-an-email",
		"password":                     "test-password",
		"terms_and_conditions_checked": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":                         "Alice",
		"username":                     "alice",
		"email":                        "alice@example.com",
		"password":                     "short",
		"terms_and_conditions_checked": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r := setupAPI(t)

	registerUser(t, r, "alice", "alice@example.com")

	t.Run("by username", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "alice",
			"password": "test-password",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("by email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "alice@example.com",
			"password": "test-password",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "alice",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "ghost",
			"password": "test-password",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMe(t *testing.T) {
	r := setupAPI(t)

	token := registerUser(t, r, "alice", "alice@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		User struct {
			Username        string `json:"username"`
			Email           string `json:"email"`
			IsEmailVerified bool   `json:"is_email_verified"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.False(t, resp.User.IsEmailVerified)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConfirmEmail(t *testing.T) {
	r := setupAPI(t)

	registerUser(t, r, "alice", "alice@example.com")

	users := store.NewUserStore(db.DB)
	user, err := users.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, user.EmailVerificationToken)

	w := doJSON(t, r, http.MethodGet, "/api/auth/confirm?token=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/auth/confirm?token=%s", user.EmailVerificationToken), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	verified, err := users.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.True(t, verified.IsEmailVerified)
	require.NotNil(t, verified.EmailVerificationDate)
}
