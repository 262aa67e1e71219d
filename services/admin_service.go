package services

import (
	"errors"
	"time"

	"masalacafe/entity"
	"masalacafe/repository"
)

var ErrBadOrderStatus = errors.New("invalid order status")

// AdminService งานหลังบ้าน: จัดการออเดอร์ + อนุมัติ admin
type AdminService struct {
	Orders *repository.OrderRepository
	Admins *repository.AdminRepository
}

func NewAdminService(orders *repository.OrderRepository, admins *repository.AdminRepository) *AdminService {
	return &AdminService{Orders: orders, Admins: admins}
}

type AdminOrderSummary struct {
	ID              uint      `json:"id"`
	UserID          string    `json:"userId"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"statusLabel"`
	TotalAmount     float64   `json:"totalAmount"`
	DeliveryFee     float64   `json:"deliveryFee"`
	PaymentMethod   string    `json:"paymentMethod"`
	ItemCount       int64     `json:"itemCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListOrders ทุกออเดอร์ ใหม่สุดก่อน พร้อมจำนวนรายการต่อใบ
func (s *AdminService) ListOrders() ([]AdminOrderSummary, error) {
	orders, err := s.Orders.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]AdminOrderSummary, 0, len(orders))
	for _, o := range orders {
		count, err := s.Orders.CountItems(o.ID)
		if err != nil {
			count = 0
		}
		out = append(out, AdminOrderSummary{
			ID:              o.ID,
			UserID:          o.UserID,
			DeliveryAddress: o.DeliveryAddress,
			Status:          o.Status,
			StatusLabel:     entity.OrderStatusLabel(o.Status),
			TotalAmount:     o.TotalAmount,
			DeliveryFee:     o.DeliveryFee,
			PaymentMethod:   o.PaymentMethod,
			ItemCount:       count,
			CreatedAt:       o.CreatedAt,
		})
	}
	return out, nil
}

func (s *AdminService) UpdateOrderStatus(orderID uint, status string) error {
	if !entity.ValidOrderStatus(status) {
		return ErrBadOrderStatus
	}
	if _, err := s.Orders.FindByID(orderID); err != nil {
		return err
	}
	return s.Orders.UpdateStatus(orderID, status)
}

func (s *AdminService) PendingAdmins() ([]entity.Admin, error) {
	return s.Admins.ListPending()
}

// ApproveAdmin บันทึกว่าใครอนุมัติและเมื่อไหร่
func (s *AdminService) ApproveAdmin(adminID uint, approverID string) error {
	if _, err := s.Admins.FindByID(adminID); err != nil {
		return err
	}
	return s.Admins.Approve(adminID, approverID, time.Now())
}
