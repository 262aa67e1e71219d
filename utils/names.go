package utils

import "strings"

// SplitFullName แยก display name เป็น first/last แบบ best-effort
// token แรก = first name ที่เหลือรวมเป็น last name, ไม่มีข้อมูลก็คืนค่าว่าง
func SplitFullName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	first = fields[0]
	if len(fields) > 1 {
		last = strings.Join(fields[1:], " ")
	}
	return first, last
}
