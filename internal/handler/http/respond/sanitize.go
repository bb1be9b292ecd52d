package respond

import (
	"regexp"
)

var (
	// JWT（header.payload.signature）
	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Authorization ヘッダ値
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[^\s"']+`)

	// bcrypt ハッシュ
	bcryptPattern = regexp.MustCompile(`\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// key=value 形式の DSN
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)[^\s&]+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = jwtPattern.ReplaceAllString(msg, "****.****.****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = bcryptPattern.ReplaceAllString(msg, "$$2*$$****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
