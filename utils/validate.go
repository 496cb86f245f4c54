package utils

import "strings"

// IsValidEmail 宽松校验邮箱格式，真正的有效性由邮件服务反馈
func IsValidEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.IndexByte(domain, '.') <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}

	return !strings.ContainsAny(email, " \t\r\n")
}

// NormalizeEmail 统一小写并去除首尾空白
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
