package services

import (
	"sync"

	"masalacafe/entity"
)

// PendingApprovalMessage แสดงตอนบังคับ sign out บัญชี admin ที่ยังรออนุมัติ
const PendingApprovalMessage = "Your admin account is pending approval. Please contact the super admin."

type SessionState int

const (
	SessionUnknown SessionState = iota // ยัง restore ไม่เสร็จ
	SessionAnonymous
	SessionAuthenticated
)

// Session คือ snapshot ของ {identity, isAdmin} ณ ปัจจุบัน
type Session struct {
	State    SessionState
	Identity *entity.Identity
	IsAdmin  bool
}

// SessionResolver เป็นเจ้าของ state เดียวของระบบเรื่อง session
// ตัวอื่นอ่านผ่าน Current()/Outcome เท่านั้น ห้ามแก้เอง
type SessionResolver struct {
	auth       *AuthService
	reconciler *ReconcileService

	mu       sync.Mutex
	cur      Session
	outcomes map[string]Resolution // ผลของ transition ล่าสุดต่อ identity

	unsubscribe func()
}

func NewSessionResolver(auth *AuthService, reconciler *ReconcileService) *SessionResolver {
	s := &SessionResolver{
		auth:       auth,
		reconciler: reconciler,
		cur:        Session{State: SessionUnknown},
		outcomes:   make(map[string]Resolution),
	}
	s.unsubscribe = auth.OnAuthStateChange(s.handleEvent)
	return s
}

// Restore ใช้ตอน process start: เช็ค session ที่ persist ไว้
// คืน session ที่คำนวณให้ call นี้โดยตรง — ห้ามอ่าน cur ซ้ำ เพราะ
// transition ของ identity อื่นอาจเขียนทับระหว่างทาง
func (s *SessionResolver) Restore(token string) Session {
	ident, err := s.auth.GetCurrentSession(token)
	if err != nil || ident == nil {
		return s.setAnonymous()
	}
	return s.establish(ident)
}

func (s *SessionResolver) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Outcome คืนผล reconcile ของ transition ล่าสุดของ identity นั้น
// event ถูกส่งแบบ synchronous ดังนั้นหลัง SignIn ผลจะอยู่ตรงนี้แล้ว
func (s *SessionResolver) Outcome(identityID string) (Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.outcomes[identityID]
	return res, ok
}

func (s *SessionResolver) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// handleEvent คือ transition function เดียวของ state machine
func (s *SessionResolver) handleEvent(ev AuthEvent) {
	switch ev.Type {
	case EventSignedIn:
		if ev.Identity != nil {
			s.establish(ev.Identity)
		}
	case EventSignedOut:
		s.setAnonymous()
	}
}

// establish reconcile หนึ่งครั้งต่อ transition แล้วอัปเดต snapshot
// pending admin → บังคับ sign out ทิ้ง
// คืน session ของ transition นี้ให้ caller ใช้ตรง ๆ
func (s *SessionResolver) establish(ident *entity.Identity) Session {
	res := s.reconciler.Resolve(ident)

	sess := Session{State: SessionAuthenticated, Identity: ident, IsAdmin: res.IsAdmin}
	if res.Pending {
		sess = Session{State: SessionAnonymous}
	}

	s.mu.Lock()
	s.outcomes[ident.ID] = res
	s.cur = sess
	s.mu.Unlock()

	if res.Pending {
		// ปล่อย lock ก่อนค่อย sign out — SignOut จะ emit event กลับเข้ามา
		_ = s.auth.SignOut(ident)
	}
	return sess
}

func (s *SessionResolver) setAnonymous() Session {
	sess := Session{State: SessionAnonymous}
	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
	return sess
}
