package database

import (
	"strings"
)

// IsRetryableError 判断一个SQLite错误是否值得在短暂延迟后重试。
// SQLite在并发写入时会返回 busy/locked 类错误，这类错误是暂时性的；
// 约束冲突、语法错误等则不是。
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "busy")
}
