package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// notFoundAs 将记录不存在转换为模块自己的 NotFound 错误，其余错误原样返回
func notFoundAs(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// present 必填字符串：非 nil 且去除空白后非空
func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
