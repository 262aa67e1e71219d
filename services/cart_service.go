package services

import (
	"encoding/json"

	"masalacafe/entity"
	"masalacafe/pkg/clientstore"
)

const cartKey = "cart"

// CartService จัดการตะกร้าใน client storage ภายใต้ key เดียว
// โหลดใหม่ทุกครั้งก่อนแก้ — ค่า derived คำนวณสด ไม่ cache
type CartService struct {
	store clientstore.Store
	key   string
}

func NewCartService(store clientstore.Store) *CartService {
	return &CartService{store: store, key: cartKey}
}

// NewUserCartService ใช้ฝั่ง HTTP — หนึ่ง key ต่อ user
func NewUserCartService(store clientstore.Store, userID string) *CartService {
	return &CartService{store: store, key: cartKey + ":" + userID}
}

func (s *CartService) load() ([]entity.CartLine, error) {
	raw, ok, err := s.store.Load(s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var lines []entity.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		// ข้อมูลใน storage พัง — เริ่มตะกร้าใหม่ ดีกว่าพังทั้งหน้า
		return nil, nil
	}
	return lines, nil
}

func (s *CartService) save(lines []entity.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Save(s.key, raw)
}

func (s *CartService) Lines() ([]entity.CartLine, error) {
	return s.load()
}

// Add รวม line เดิมตาม id (+1) หรือเพิ่มใหม่ qty 1
func (s *CartService) Add(item entity.CartLine) error {
	lines, err := s.load()
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Quantity++
			return s.save(lines)
		}
	}
	item.Quantity = 1
	lines = append(lines, item)
	return s.save(lines)
}

// SetQuantity qty < 1 = ลบ line ทิ้ง ไม่มี line ที่ qty 0
func (s *CartService) SetQuantity(id uint, qty int) error {
	if qty < 1 {
		return s.Remove(id)
	}
	lines, err := s.load()
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity = qty
			break
		}
	}
	return s.save(lines)
}

func (s *CartService) Remove(id uint) error {
	lines, err := s.load()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.save(kept)
}

// Clear ลบ key ทิ้งทั้งอัน
func (s *CartService) Clear() error {
	return s.store.Remove(s.key)
}

func (s *CartService) TotalItems() (int, error) {
	lines, err := s.load()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total, nil
}

func (s *CartService) Subtotal() (float64, error) {
	lines, err := s.load()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum, nil
}
