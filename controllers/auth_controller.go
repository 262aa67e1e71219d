package controllers

import (
	"errors"
	"strings"

	"masalacafe/entity"
	"masalacafe/pkg/resp"
	"masalacafe/repository"
	"masalacafe/services"
	"masalacafe/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	AsAdmin   bool   `json:"asAdmin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OAuthCallbackRequest struct {
	Provider string `json:"provider" binding:"required,oneof=google facebook"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
	AsAdmin  bool   `json:"asAdmin"`
}

type ResendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthController struct {
	Auth     *services.AuthService
	Sessions *services.SessionResolver
	Admins   *repository.AdminRepository
	Profiles *repository.ProfileRepository
}

func NewAuthController(auth *services.AuthService, sessions *services.SessionResolver,
	admins *repository.AdminRepository, profiles *repository.ProfileRepository) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions, Admins: admins, Profiles: profiles}
}

// POST /auth/signup
func (ctl *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ident, err := ctl.Auth.SignUp(req.Email, req.Password, "/login")
	if err != nil {
		if errors.Is(err, services.ErrEmailRegistered) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	if req.AsAdmin {
		// สมัครสาย admin — ลง admins รออนุมัติ
		admin := entity.Admin{
			AccountID: &ident.ID,
			Email:     ident.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		}
		if err := ctl.Admins.Create(&admin); err != nil {
			resp.CreatedRedirect(c, "Admin account created but role assignment failed", "/login", gin.H{"id": ident.ID})
			return
		}
		resp.CreatedRedirect(c,
			"Admin signup successful! Please check your email to confirm your account before logging in.",
			"/login", gin.H{"id": ident.ID})
		return
	}

	profile := entity.UserProfile{
		ID:        ident.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := ctl.Profiles.Create(&profile); err != nil {
		resp.CreatedRedirect(c, "Account created but profile setup failed", "/login", gin.H{"id": ident.ID})
		return
	}
	resp.CreatedRedirect(c,
		"Signup successful! Please check your email to confirm your account before logging in.",
		"/login", gin.H{"id": ident.ID})
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ident, err := ctl.Auth.SignInWithPassword(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotConfirmed) {
			resp.Unauthorized(c, "Please check your email and click the confirmation link before logging in. If you didn't receive the email, check your spam folder.")
			return
		}
		resp.Unauthorized(c, err.Error())
		return
	}

	// SignIn emit event แบบ synchronous — ผล reconcile อยู่ที่ resolver แล้ว
	res, _ := ctl.Sessions.Outcome(ident.ID)

	if res.Pending {
		// resolver บังคับ sign out ไปแล้ว
		resp.ForbiddenRedirect(c, services.PendingApprovalMessage, "/login")
		return
	}

	role := "customer"
	msg := "Login successful!"
	target := "/"
	if res.IsAdmin {
		role = "admin"
		msg = "Admin login successful!"
		target = "/admin-dashboard"
	}

	token, err := ctl.Auth.IssueToken(ident.ID, role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OKRedirect(c, msg, target, gin.H{
		"token": token,
		"user":  gin.H{"id": ident.ID, "email": ident.Email, "role": role},
	})
}

// POST /auth/oauth/callback — ฝั่ง provider ยืนยันตัวตนเสร็จแล้วค่อยเรียกมานี่
func (ctl *AuthController) OAuthCallback(c *gin.Context) {
	var req OAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ident, err := ctl.Auth.SignInWithOAuth(req.Provider, req.Email, req.FullName)
	if err != nil {
		resp.UnauthorizedRedirect(c, "Login failed. Please try again.", "/login")
		return
	}

	res, _ := ctl.Sessions.Outcome(ident.ID)

	if res.Pending {
		resp.ForbiddenRedirect(c, services.PendingApprovalMessage, "/login")
		return
	}

	if res.IsAdmin {
		token, err := ctl.Auth.IssueToken(ident.ID, "admin")
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OKRedirect(c, "Admin login successful!", "/admin-dashboard", gin.H{
			"token": token,
			"user":  gin.H{"id": ident.ID, "email": ident.Email, "role": "admin"},
		})
		return
	}

	if req.AsAdmin {
		existing, err := ctl.Admins.FindByEmail(ident.Email)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// ไม่มี record ทั้ง id และ email — สร้างใหม่รออนุมัติ
			first, last := utils.SplitFullName(ident.FullName)
			admin := entity.Admin{
				AccountID: &ident.ID,
				Email:     ident.Email,
				FirstName: first,
				LastName:  last,
			}
			if err := ctl.Admins.Create(&admin); err != nil {
				resp.ForbiddenRedirect(c, "Failed to create admin account. Please try again.", "/login")
				return
			}
			_ = ctl.Auth.SignOut(ident)
			resp.OKRedirect(c, "Admin account created! Waiting for approval.", "/login", nil)
			return
		case err != nil:
			resp.ServerError(c, err)
			return
		case !existing.IsApproved:
			// record มีอยู่ (เพิ่ง link จาก email ก็นับ) แต่ยังไม่อนุมัติ
			_ = ctl.Auth.SignOut(ident)
			resp.ForbiddenRedirect(c, services.PendingApprovalMessage, "/login")
			return
		}
	}

	token, err := ctl.Auth.IssueToken(ident.ID, "customer")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKRedirect(c, "Login successful!", "/", gin.H{
		"token": token,
		"user":  gin.H{"id": ident.ID, "email": ident.Email, "role": "customer"},
	})
}

// GET /auth/confirm?token=...&redirect_to=...
func (ctl *AuthController) Confirm(c *gin.Context) {
	target := c.Query("redirect_to")
	if target == "" {
		target = "/login"
	}
	if _, err := ctl.Auth.ConfirmEmail(c.Query("token")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OKRedirect(c, "Email confirmed! You can now log in.", target, nil)
}

// POST /auth/resend
func (ctl *AuthController) ResendConfirmation(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Auth.ResendConfirmationEmail(req.Email, "/login"); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "no account found for this email")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OKMessage(c, "Confirmation email sent! Please check your inbox and spam folder.", nil)
}

// GET /auth/session — restore session จาก token (ถ้ามี)
func (ctl *AuthController) Session(c *gin.Context) {
	token := ""
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		token = strings.TrimPrefix(h, "Bearer ")
	}

	sess := ctl.Sessions.Restore(token)
	if sess.State != services.SessionAuthenticated {
		resp.OK(c, gin.H{"user": nil, "isAdmin": false})
		return
	}
	resp.OK(c, gin.H{
		"user": gin.H{
			"id":       sess.Identity.ID,
			"email":    sess.Identity.Email,
			"fullName": sess.Identity.FullName,
			"provider": sess.Identity.Provider,
		},
		"isAdmin": sess.IsAdmin,
	})
}

// POST /auth/signout (ต้อง login)
func (ctl *AuthController) SignOut(c *gin.Context) {
	_ = ctl.Auth.SignOut(nil)
	resp.OKRedirect(c, "Signed out", "/", nil)
}
