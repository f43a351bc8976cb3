package errors

import "errors"

// 错误类别：Handler 层只按类别映射 HTTP 状态码
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrUpstream   = errors.New("upstream failure")
)

// Error 带类别的业务错误，Error() 即返回给客户端的提示信息
type Error struct {
	kind    error
	message string
}

// New 创建归属于 kind 的业务错误
func New(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string { return e.message }

// Is 使 errors.Is(err, kind) 对类别哨兵成立
func (e *Error) Is(target error) bool { return target == e.kind }

// Kind 返回错误类别
func (e *Error) Kind() error { return e.kind }

// KindOf 返回 err 链上第一个已知类别，未知时返回 nil
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrForbidden, ErrUpstream} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
