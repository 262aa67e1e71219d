package services

import (
	"errors"
	"log"

	"masalacafe/entity"
	"masalacafe/repository"
	"masalacafe/utils"

	"gorm.io/gorm"
)

// Resolution คือผลของการ reconcile role หลัง login หนึ่งครั้ง
type Resolution struct {
	IsAdmin bool

	// Pending = มี admin record แต่ยังไม่ถูกอนุมัติ — สถานะปลายทาง
	// caller ต้องบังคับ sign out พร้อมข้อความแจ้ง
	Pending bool
}

// ReconcileService ตัดสิน role ของ identity ที่เพิ่ง authenticate
// ลำดับขั้นตอนตายตัว: admin ตาม account id → link ด้วย email (OAuth) → profile
type ReconcileService struct {
	Admins   *repository.AdminRepository
	Profiles *repository.ProfileRepository
}

func NewReconcileService(admins *repository.AdminRepository, profiles *repository.ProfileRepository) *ReconcileService {
	return &ReconcileService{Admins: admins, Profiles: profiles}
}

// Resolve ทำงานตามลำดับ หยุดทันทีเมื่อเจอผล
// ทุก error จากตาราง = ถือว่าไม่ใช่ admin (fail closed) แค่ log ไว้
func (s *ReconcileService) Resolve(ident *entity.Identity) Resolution {
	// 1) admin ที่ link แล้ว
	admin, err := s.Admins.FindByAccountID(ident.ID)
	if err == nil {
		if admin.IsApproved {
			return Resolution{IsAdmin: true}
		}
		// เจอ record แต่ยังไม่อนุมัติ — ไม่ fall through ไปเช็ค email
		return Resolution{Pending: true}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("error checking admin status:", err)
		s.ensureProfile(ident)
		return Resolution{}
	}

	// 2) OAuth account อาจเคยสมัคร admin ด้วยอีเมลไว้ก่อน — link ให้
	if ident.IsOAuth() {
		byEmail, err := s.Admins.FindUnlinkedByEmail(ident.Email)
		if err == nil {
			if linkErr := s.Admins.LinkAccount(ident.Email, ident.ID); linkErr != nil {
				log.Println("error linking admin record:", linkErr)
			} else if byEmail.IsApproved {
				return Resolution{IsAdmin: true}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("error checking admin by email:", err)
		}
	}

	// 3) ผู้ใช้ธรรมดา — ต้องมี profile
	s.ensureProfile(ident)
	return Resolution{}
}

// ensureProfile สร้าง profile ถ้ายังไม่มี ล้มเหลวก็ไม่เป็นไร
// (login ครั้งหน้าจะได้ลองใหม่)
func (s *ReconcileService) ensureProfile(ident *entity.Identity) {
	_, err := s.Profiles.FindByID(ident.ID)
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("error checking user profile:", err)
		return
	}

	first, last := utils.SplitFullName(ident.FullName)
	profile := &entity.UserProfile{
		ID:        ident.ID,
		FirstName: first,
		LastName:  last,
	}
	if err := s.Profiles.Create(profile); err != nil {
		log.Println("error creating user profile:", err)
	}
}
