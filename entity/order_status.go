package entity

// สถานะออเดอร์ admin เป็นคนเปลี่ยนเท่านั้น
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// ข้อมูลเก่าบางแถวยังเป็น confirmed/delivered อยู่
const (
	OrderStatusLegacyConfirmed = "confirmed"
	OrderStatusLegacyDelivered = "delivered"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted:
		return true
	}
	return false
}

// OrderStatusLabel แปลงสถานะเป็นข้อความ แสดงผลได้รวมถึงค่า legacy
func OrderStatusLabel(s string) string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusProcessing, OrderStatusLegacyConfirmed:
		return "Processing"
	case OrderStatusCompleted, OrderStatusLegacyDelivered:
		return "Completed"
	}
	return s
}
