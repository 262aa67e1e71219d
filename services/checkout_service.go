package services

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"masalacafe/entity"
	"masalacafe/repository"
)

// ข้อความ validation ตรงกับ toast ฝั่งหน้าเว็บ
var (
	ErrCartEmpty         = errors.New("Your cart is empty")
	ErrAddressRequired   = errors.New("Please enter your delivery address")
	ErrAddressIncomplete = errors.New("Please enter a complete delivery address")
	ErrCheckoutInFlight  = errors.New("Your order is already being processed")
	ErrBadPaymentMethod  = errors.New("invalid payment method")
)

const (
	// ค่าส่ง flat rate — ไม่คิดตามระยะทาง/น้ำหนัก
	flatDeliveryFee = 2.99

	// ความยาว address ขั้นต่ำ (หลัง trim) เป็น business rule ตายตัว
	minAddressLength = 10
)

var paymentMethods = map[string]bool{
	"Cash on Delivery": true,
	"Online Payment":   true,
}

// CheckoutService คือ order placement workflow:
// Validating → Submitting (header แล้วค่อย items) → เคลียร์ตะกร้า
type CheckoutService struct {
	Orders *repository.OrderRepository

	// กันกดซ้ำ: หนึ่ง submission ต่อ user ระหว่างที่ยังไม่จบ
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewCheckoutService(orders *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{
		Orders:   orders,
		inflight: make(map[string]struct{}),
	}
}

type PlaceOrderIn struct {
	Address       string
	PaymentMethod string
}

type PlaceOrderOut struct {
	OrderID     uint    `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	DeliveryFee float64 `json:"deliveryFee"`
}

func (s *CheckoutService) tryBegin(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *CheckoutService) end(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}

// PlaceOrder ตรวจตะกร้า+ที่อยู่ แล้วเขียน order สองขั้น
//
// จงใจไม่ครอบ transaction: header commit ก่อน items เสมอ ตามพฤติกรรม
// เดิมของระบบ — ถ้า items fail จะเหลือ header กำพร้า และตะกร้าไม่ถูกล้าง
// ผู้ใช้กดส่งใหม่ได้ (จะได้ order ใหม่อีกใบ ไม่มี idempotency key)
func (s *CheckoutService) PlaceOrder(userID string, cart *CartService, in PlaceOrderIn) (*PlaceOrderOut, error) {
	if !s.tryBegin(userID) {
		return nil, ErrCheckoutInFlight
	}
	defer s.end(userID)

	// ---- Validating: ยังไม่แตะ DB จนกว่าจะผ่านครบ ----
	lines, err := cart.Lines()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, ErrAddressRequired
	}
	// นับเป็น rune — ที่อยู่ภาษาไทยสั้น ๆ ต้องไม่ผ่านเพราะ byte เยอะ
	if utf8.RuneCountInString(address) < minAddressLength {
		return nil, ErrAddressIncomplete
	}

	method := in.PaymentMethod
	if method == "" {
		method = "Cash on Delivery"
	}
	if !paymentMethods[method] {
		return nil, ErrBadPaymentMethod
	}

	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	deliveryFee := 0.0
	if subtotal > 0 {
		deliveryFee = flatDeliveryFee
	}
	finalTotal := subtotal + deliveryFee

	// ---- Submitting ----
	order := entity.Order{
		UserID:          userID,
		DeliveryAddress: in.Address,
		Status:          entity.OrderStatusPending, // บังคับ pending เสมอ
		TotalAmount:     finalTotal,
		DeliveryFee:     deliveryFee,
		PaymentMethod:   method,
	}
	if err := s.Orders.CreateHeader(&order); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: l.ID,
			Quantity:   l.Quantity,
			Price:      l.Price, // snapshot จากตะกร้า
		})
	}
	if err := s.Orders.CreateItems(items); err != nil {
		// header ค้างอยู่โดยไม่มี items — รู้จุดอ่อนนี้ แต่ไม่ rollback
		return nil, err
	}

	if err := cart.Clear(); err != nil {
		return nil, err
	}

	return &PlaceOrderOut{
		OrderID:     order.ID,
		TotalAmount: finalTotal,
		DeliveryFee: deliveryFee,
	}, nil
}
