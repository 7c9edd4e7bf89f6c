package models

// สถานะการส่งแจ้งเตือน (string ตรง ๆ เพื่อให้ caller อ่านได้เลย)
const (
	DispatchSuccess = "Success"
	DispatchSkipped = "Skipped"
	NoPhoneNumber   = "User has no phone number"
)

// NotificationReport ผลการส่งแจ้งเตือนหลัง order commit แล้ว
// best-effort เสมอ - ส่งไม่ได้ไม่ทำให้ order ล้มเหลว
type NotificationReport struct {
	CustomerSMS string `json:"customerSms"`
	AdminEmail  string `json:"adminEmail"`
}
