package entity

// CartLine อยู่ฝั่ง client storage เท่านั้น ไม่ใช่ตารางใน DB
// จะเข้าฐานข้อมูลก็ตอน checkout เป็น OrderItem
type CartLine struct {
	ID       uint    `json:"id"` // = MenuItem.ID
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // snapshot ตอน add
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
