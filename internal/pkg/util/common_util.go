package util

import (
	"time"

	"Milestone/internal/pkg/consts"
)

// ParseDate 按业务日期格式解析，返回零点的 UTC 时间
func ParseDate(s string) (time.Time, error) {
	return time.Parse(consts.DateLayout, s)
}

// FormatDate 按业务日期格式输出
func FormatDate(t time.Time) string {
	return t.Format(consts.DateLayout)
}

// PtrString 用于将 string 转换为 *string，空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
