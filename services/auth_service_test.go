package services

import (
	"testing"
	"time"

	"masalacafe/entity"
	"masalacafe/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access test database pool: %v", err)
	}
	// A second pool connection to sqlite ":memory:" opens a fresh empty
	// database, so concurrent queries must share the single schema-bearing
	// connection.
	sqlDB.SetMaxOpenConns(1)
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

func newTestAuthService(t *testing.T, db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewIdentityRepository(db), "test-secret", time.Hour)
}

func TestSignUpAndConfirmFlow(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	ident, err := auth.SignUp("Priya@Example.com", "secret123", "/login")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", ident.Email)
	assert.NotEmpty(t, ident.ConfirmationToken)
	assert.False(t, ident.Confirmed())

	// login before confirming is rejected with the exact sentinel
	_, err = auth.SignInWithPassword("priya@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailNotConfirmed)

	confirmed, err := auth.ConfirmEmail(ident.ConfirmationToken)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed())
	assert.Empty(t, confirmed.ConfirmationToken)

	got, err := auth.SignInWithPassword("priya@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, ident.ID, got.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	_, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)

	_, err = auth.SignUp("PRIYA@example.com", "other456", "/login")
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestSignInWrongPassword(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	ident, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)
	_, err = auth.ConfirmEmail(ident.ConfirmationToken)
	require.NoError(t, err)

	_, err = auth.SignInWithPassword("priya@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.SignInWithPassword("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestConfirmEmailBadToken(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	_, err := auth.ConfirmEmail("")
	assert.ErrorIs(t, err, ErrInvalidConfirmKey)

	_, err = auth.ConfirmEmail("no-such-token")
	assert.ErrorIs(t, err, ErrInvalidConfirmKey)
}

func TestResendConfirmationRotatesToken(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	ident, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)
	oldToken := ident.ConfirmationToken

	require.NoError(t, auth.ResendConfirmationEmail("priya@example.com", "/login"))

	fresh, err := auth.Identities.FindByEmail("priya@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, fresh.ConfirmationToken)

	// old link is dead, new one works
	_, err = auth.ConfirmEmail(oldToken)
	assert.ErrorIs(t, err, ErrInvalidConfirmKey)
	_, err = auth.ConfirmEmail(fresh.ConfirmationToken)
	assert.NoError(t, err)

	err = auth.ResendConfirmationEmail("priya@example.com", "/login")
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestSignInWithOAuthCreatesConfirmedAccount(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	ident, err := auth.SignInWithOAuth("google", "Priya@Example.com", "Priya Sharma")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", ident.Email)
	assert.Equal(t, "google", ident.Provider)
	assert.Equal(t, "Priya Sharma", ident.FullName)
	assert.True(t, ident.Confirmed())
	assert.True(t, ident.IsOAuth())
}

func TestSignInWithOAuthBackfillsExistingAccount(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	created, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)

	ident, err := auth.SignInWithOAuth("google", "priya@example.com", "Priya Sharma")
	require.NoError(t, err)
	assert.Equal(t, created.ID, ident.ID)
	assert.Equal(t, "google", ident.Provider)
	assert.Equal(t, "Priya Sharma", ident.FullName)
	// provider already vouched for the email
	assert.True(t, ident.Confirmed())
}

func TestSignInWithOAuthUnknownProvider(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	_, err := auth.SignInWithOAuth("github", "priya@example.com", "")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestAuthEventsDeliveredSynchronously(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	ident, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)
	_, err = auth.ConfirmEmail(ident.ConfirmationToken)
	require.NoError(t, err)

	var events []AuthEventType
	unsubscribe := auth.OnAuthStateChange(func(ev AuthEvent) {
		events = append(events, ev.Type)
	})

	_, err = auth.SignInWithPassword("priya@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, auth.SignOut(nil))

	// handlers ran inline, no sleep needed
	assert.Equal(t, []AuthEventType{EventSignedIn, EventSignedOut}, events)

	unsubscribe()
	_, err = auth.SignInWithPassword("priya@example.com", "secret123")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestGetCurrentSession(t *testing.T) {
	db := setupServiceTestDB(t)
	auth := newTestAuthService(t, db)

	ident, err := auth.SignUp("priya@example.com", "secret123", "/login")
	require.NoError(t, err)

	token, err := auth.IssueToken(ident.ID, "customer")
	require.NoError(t, err)

	got, err := auth.GetCurrentSession(token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ident.ID, got.ID)

	// ไม่มี session ≠ error
	got, err = auth.GetCurrentSession("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = auth.GetCurrentSession("garbage-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}
