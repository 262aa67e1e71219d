package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"masalacafe/entity"
	"masalacafe/repository"
	"masalacafe/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupControllerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Identity{},
		&entity.Admin{}, &entity.UserProfile{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newAuthTestRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *services.AuthService) {
	gin.SetMode(gin.TestMode)

	identities := repository.NewIdentityRepository(db)
	admins := repository.NewAdminRepository(db)
	profiles := repository.NewProfileRepository(db)

	auth := services.NewAuthService(identities, "test-secret", time.Hour)
	resolver := services.NewSessionResolver(auth, services.NewReconcileService(admins, profiles))
	t.Cleanup(resolver.Close)

	ctl := NewAuthController(auth, resolver, admins, profiles)

	r := gin.New()
	r.POST("/auth/signup", ctl.Signup)
	r.POST("/auth/login", ctl.Login)
	r.POST("/auth/oauth/callback", ctl.OAuthCallback)
	r.GET("/auth/confirm", ctl.Confirm)
	return r, auth
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSignupCreatesProfile(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	w := postJSON(r, "/auth/signup", gin.H{
		"email": "priya@example.com", "password": "secret123",
		"firstName": "Priya", "lastName": "Sharma", "phone": "555-0100",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Signup successful! Please check your email to confirm your account before logging in.", body["message"])
	assert.Equal(t, "/login", body["redirect"])

	var profile entity.UserProfile
	require.NoError(t, db.Where("first_name = ?", "Priya").First(&profile).Error)
	assert.Equal(t, "Sharma", profile.LastName)
}

func TestSignupAsAdminCreatesPendingRecord(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	w := postJSON(r, "/auth/signup", gin.H{
		"email": "admin@example.com", "password": "secret123",
		"firstName": "Ana", "lastName": "Reyes", "phone": "555-0101",
		"asAdmin": true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var admin entity.Admin
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.False(t, admin.IsApproved)
	require.NotNil(t, admin.AccountID)

	// ไม่ได้ customer profile ควบ
	var count int64
	db.Model(&entity.UserProfile{}).Count(&count)
	assert.Zero(t, count)
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	payload := gin.H{
		"email": "priya@example.com", "password": "secret123",
		"firstName": "Priya", "lastName": "Sharma", "phone": "555-0100",
	}
	assert.Equal(t, http.StatusCreated, postJSON(r, "/auth/signup", payload).Code)

	w := postJSON(r, "/auth/signup", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnconfirmedEmail(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	postJSON(r, "/auth/signup", gin.H{
		"email": "priya@example.com", "password": "secret123",
		"firstName": "Priya", "lastName": "Sharma", "phone": "555-0100",
	})

	w := postJSON(r, "/auth/login", gin.H{"email": "priya@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "confirmation link")
	assert.Contains(t, body["error"], "spam folder")
}

func TestLoginCustomerSuccess(t *testing.T) {
	db := setupControllerTestDB(t)
	r, auth := newAuthTestRouter(t, db)

	ident, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)
	_, err = auth.ConfirmEmail(ident.ConfirmationToken)
	require.NoError(t, err)

	w := postJSON(r, "/auth/login", gin.H{"email": "priya@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Login successful!", body["message"])
	assert.Equal(t, "/", body["redirect"])

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "customer", user["role"])
}

func TestLoginApprovedAdmin(t *testing.T) {
	db := setupControllerTestDB(t)
	r, auth := newAuthTestRouter(t, db)

	ident, err := auth.SignUp("admin@example.com", "secret123", "/login")
	require.NoError(t, err)
	_, err = auth.ConfirmEmail(ident.ConfirmationToken)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{
		AccountID: &ident.ID, Email: ident.Email, IsApproved: true,
	}).Error)

	w := postJSON(r, "/auth/login", gin.H{"email": "admin@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Admin login successful!", body["message"])
	assert.Equal(t, "/admin-dashboard", body["redirect"])
}

func TestLoginPendingAdminForcedOut(t *testing.T) {
	db := setupControllerTestDB(t)
	r, auth := newAuthTestRouter(t, db)

	ident, err := auth.SignUp("admin@example.com", "secret123", "/login")
	require.NoError(t, err)
	_, err = auth.ConfirmEmail(ident.ConfirmationToken)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{
		AccountID: &ident.ID, Email: ident.Email, IsApproved: false,
	}).Error)

	w := postJSON(r, "/auth/login", gin.H{"email": "admin@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Your admin account is pending approval. Please contact the super admin.", body["error"])
	assert.Equal(t, "/login", body["redirect"])
}

func TestOAuthCallbackLinksPlaceholderAdmin(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	// super admin เคยใส่ email ไว้ล่วงหน้า
	require.NoError(t, db.Create(&entity.Admin{
		Email: "admin@example.com", IsApproved: true,
	}).Error)

	w := postJSON(r, "/auth/oauth/callback", gin.H{
		"provider": "google", "email": "admin@example.com", "fullName": "Ana Reyes",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "/admin-dashboard", body["redirect"])

	var admin entity.Admin
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.NotNil(t, admin.AccountID)
}

func TestOAuthCallbackAdminIntentUnapprovedEmailMatchIsPending(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	// สมัครด้วย email ไว้ก่อนแล้วแต่ super admin ยังไม่อนุมัติ
	require.NoError(t, db.Create(&entity.Admin{
		Email: "admin@example.com", IsApproved: false,
	}).Error)

	w := postJSON(r, "/auth/oauth/callback", gin.H{
		"provider": "google", "email": "admin@example.com",
		"fullName": "Ana Reyes", "asAdmin": true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Your admin account is pending approval. Please contact the super admin.", body["error"])
	assert.Equal(t, "/login", body["redirect"])

	// record เดิมถูก link ระหว่างทาง — ไม่ได้สร้างซ้ำ
	var count int64
	db.Model(&entity.Admin{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var admin entity.Admin
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.NotNil(t, admin.AccountID)
	assert.False(t, admin.IsApproved)

	// ต้องไม่ได้ customer token กลับไป
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestOAuthCallbackAdminIntentCreatesPendingRecord(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	w := postJSON(r, "/auth/oauth/callback", gin.H{
		"provider": "google", "email": "newadmin@example.com",
		"fullName": "Ana Reyes", "asAdmin": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Admin account created! Waiting for approval.", body["message"])
	assert.Equal(t, "/login", body["redirect"])

	var admin entity.Admin
	require.NoError(t, db.Where("email = ?", "newadmin@example.com").First(&admin).Error)
	assert.False(t, admin.IsApproved)
	assert.Equal(t, "Ana", admin.FirstName)
	assert.Equal(t, "Reyes", admin.LastName)
}

func TestOAuthCallbackRegularCustomer(t *testing.T) {
	db := setupControllerTestDB(t)
	r, _ := newAuthTestRouter(t, db)

	w := postJSON(r, "/auth/oauth/callback", gin.H{
		"provider": "google", "email": "priya@example.com", "fullName": "Priya Sharma",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "/", body["redirect"])

	// reconcile ระหว่างทางสร้าง profile ให้แล้ว
	var profile entity.UserProfile
	require.NoError(t, db.Where("first_name = ?", "Priya").First(&profile).Error)
	assert.Equal(t, "Sharma", profile.LastName)
}

func TestConfirmEndpoint(t *testing.T) {
	db := setupControllerTestDB(t)
	r, auth := newAuthTestRouter(t, db)

	ident, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/confirm?token="+ident.ConfirmationToken, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "/login", body["redirect"])

	req = httptest.NewRequest(http.MethodGet, "/auth/confirm?token=bogus", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
