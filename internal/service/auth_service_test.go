package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/solemart/storefront/internal/config"
	"github.com/solemart/storefront/internal/models"
	"github.com/solemart/storefront/internal/repository"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-auth-service-tests"
	cfg.JWT.ExpireHours = 24
	return NewAuthService(cfg, repository.NewAdminRepository(db)), db
}

func createTestAdmin(t *testing.T, db *gorm.DB, username, password string) models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := models.Admin{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestLoginIssuesParseableToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "owner", "hunter2-strong")

	token, expiresAt, loggedIn, err := svc.Login("owner", "hunter2-strong")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != admin.ID || loggedIn.LastLoginAt == nil {
		t.Fatalf("expected last login recorded, got %+v", loggedIn)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Username != "owner" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createTestAdmin(t, db, "owner", "hunter2-strong")

	if _, _, _, err := svc.Login("owner", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, _, err := svc.Login("ghost", "hunter2-strong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestParseJWTRejectsForeignToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "owner", "hunter2-strong")

	other := &AuthService{cfg: &config.Config{}, adminRepo: svc.adminRepo}
	other.cfg.JWT.SecretKey = "a-completely-different-secret-key"
	other.cfg.JWT.ExpireHours = 1
	foreign, _, err := other.GenerateJWT(&admin)
	if err != nil {
		t.Fatalf("generate foreign token failed: %v", err)
	}

	if _, err := svc.ParseJWT(foreign); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}
