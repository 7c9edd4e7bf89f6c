package ports

import "context"

// DispatchResult ผลการส่งหนึ่ง channel - ไม่มี error หลุดข้าม boundary นี้
// ล้มเหลวถูก capture เป็น Status แบบ "Failed-<เหตุผล>" (ตาม format เดิมของระบบ)
type DispatchResult struct {
	OK     bool
	Status string
}

// SMSSenderPort ส่ง SMS หาลูกค้า (Africa's Talking หรือ provider อื่น)
type SMSSenderPort interface {
	SendSMS(ctx context.Context, phoneNumber, message string) DispatchResult
}

// EmailSenderPort ส่ง email หา staff/admin
type EmailSenderPort interface {
	SendEmail(ctx context.Context, subject, body string, recipients []string) DispatchResult
}
