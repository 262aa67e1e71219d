package services

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"masalacafe/entity"
	"masalacafe/repository"
	"masalacafe/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthEvent คือเหตุการณ์จาก auth provider ที่ SessionResolver subscribe
type AuthEventType string

const (
	EventSignedIn  AuthEventType = "SIGNED_IN"
	EventSignedOut AuthEventType = "SIGNED_OUT"
)

type AuthEvent struct {
	Type     AuthEventType
	Identity *entity.Identity // nil เมื่อ sign out
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ข้อความนี้เทียบตรง ๆ ฝั่ง controller เพื่อแสดงคำแนะนำเรื่องอีเมลยืนยัน
	ErrEmailNotConfirmed = errors.New("Email not confirmed")

	ErrEmailRegistered   = errors.New("email already registered")
	ErrAlreadyConfirmed  = errors.New("email already confirmed")
	ErrUnknownProvider   = errors.New("unsupported oauth provider")
	ErrInvalidConfirmKey = errors.New("invalid confirmation token")
)

// AuthService คือ identity provider ของระบบ: สมัคร/ยืนยันอีเมล/ล็อกอิน
// รวมถึง event stream ของการเปลี่ยนสถานะ auth
type AuthService struct {
	Identities *repository.IdentityRepository
	jwtSecret  string
	jwtTTL     time.Duration

	subMu   sync.Mutex
	subs    map[int]func(AuthEvent)
	nextSub int
}

func NewAuthService(repo *repository.IdentityRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		Identities: repo,
		jwtSecret:  secret,
		jwtTTL:     ttl,
		subs:       make(map[int]func(AuthEvent)),
	}
}

// OnAuthStateChange ลงทะเบียน handler; คืน unsubscribe
// ส่ง event แบบ synchronous ตามลำดับการลงทะเบียน
func (s *AuthService) OnAuthStateChange(handler func(AuthEvent)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = handler
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *AuthService) emit(ev AuthEvent) {
	s.subMu.Lock()
	handlers := make([]func(AuthEvent), 0, len(s.subs))
	for _, h := range s.subs {
		handlers = append(handlers, h)
	}
	s.subMu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
}

// SignUp สร้างบัญชีใหม่ ยังใช้ไม่ได้จนกว่าจะยืนยันอีเมล
func (s *AuthService) SignUp(email, password, redirectTarget string) (*entity.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.Identities.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	ident := &entity.Identity{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      string(hashed),
		ConfirmationToken: uuid.NewString(),
	}
	if err := s.Identities.Create(ident); err != nil {
		return nil, err
	}

	s.sendConfirmationMail(ident, redirectTarget)
	return ident, nil
}

// ไม่มี mailer จริง — log ลิงก์ยืนยันแทน
func (s *AuthService) sendConfirmationMail(ident *entity.Identity, redirectTarget string) {
	log.Printf("📧 confirmation mail for %s: /auth/confirm?token=%s&redirect_to=%s",
		ident.Email, ident.ConfirmationToken, redirectTarget)
}

// ConfirmEmail ยืนยันบัญชีจาก token ในลิงก์
func (s *AuthService) ConfirmEmail(token string) (*entity.Identity, error) {
	if token == "" {
		return nil, ErrInvalidConfirmKey
	}
	ident, err := s.Identities.FindByConfirmationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidConfirmKey
		}
		return nil, err
	}
	now := time.Now()
	ident.EmailConfirmedAt = &now
	ident.ConfirmationToken = ""
	if err := s.Identities.Save(ident); err != nil {
		return nil, err
	}
	return ident, nil
}

// ResendConfirmationEmail ออก token ใหม่ให้บัญชีที่ยังไม่ยืนยัน
func (s *AuthService) ResendConfirmationEmail(email, redirectTarget string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	ident, err := s.Identities.FindByEmail(email)
	if err != nil {
		return err
	}
	if ident.Confirmed() {
		return ErrAlreadyConfirmed
	}
	ident.ConfirmationToken = uuid.NewString()
	if err := s.Identities.Save(ident); err != nil {
		return err
	}
	s.sendConfirmationMail(ident, redirectTarget)
	return nil
}

// SignInWithPassword ตรวจรหัสผ่านและ emit SIGNED_IN
func (s *AuthService) SignInWithPassword(email, password string) (*entity.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ident, err := s.Identities.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !ident.Confirmed() {
		return nil, ErrEmailNotConfirmed
	}

	s.emit(AuthEvent{Type: EventSignedIn, Identity: ident})
	return ident, nil
}

// SignInWithOAuth รับ identity ที่ federated provider ยืนยันมาแล้ว
// หา account ด้วย email ไม่เจอก็สร้างใหม่ (ยืนยันอีเมลให้เลย)
func (s *AuthService) SignInWithOAuth(provider, email, fullName string) (*entity.Identity, error) {
	if provider != "google" && provider != "facebook" {
		return nil, ErrUnknownProvider
	}
	email = strings.ToLower(strings.TrimSpace(email))

	ident, err := s.Identities.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		ident = &entity.Identity{
			ID:               uuid.NewString(),
			Email:            email,
			Provider:         provider,
			FullName:         fullName,
			EmailConfirmedAt: &now,
		}
		if err := s.Identities.Create(ident); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		// บัญชีเดิม login ผ่าน OAuth — ผูก provider/ชื่อ ถ้ายังว่าง
		changed := false
		if ident.Provider == "" {
			ident.Provider = provider
			changed = true
		}
		if ident.FullName == "" && fullName != "" {
			ident.FullName = fullName
			changed = true
		}
		if !ident.Confirmed() {
			now := time.Now()
			ident.EmailConfirmedAt = &now
			changed = true
		}
		if changed {
			if err := s.Identities.Save(ident); err != nil {
				return nil, err
			}
		}
	}

	s.emit(AuthEvent{Type: EventSignedIn, Identity: ident})
	return ident, nil
}

func (s *AuthService) SignOut(ident *entity.Identity) error {
	s.emit(AuthEvent{Type: EventSignedOut, Identity: nil})
	_ = ident
	return nil
}

// IssueToken ออก session token หลังรู้ role แล้ว
func (s *AuthService) IssueToken(identityID, role string) (string, error) {
	return utils.GenerateToken(identityID, role, s.jwtSecret, s.jwtTTL)
}

// GetCurrentSession คืน identity ของ session ที่ persist ไว้
// ไม่มี session (token ว่าง/หมดอายุ) คืน nil โดยไม่ error
func (s *AuthService) GetCurrentSession(token string) (*entity.Identity, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, nil
	}
	ident, err := s.Identities.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ident, nil
}
