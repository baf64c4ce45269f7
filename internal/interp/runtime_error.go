package interp

import (
	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/lexer"
)

// RuntimeError 运行时错误，携带出错的 token
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

// NewRuntimeError 创建运行时错误
func NewRuntimeError(token lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

// Error 返回完整的报告文本，消息后跟出错行号
func (e *RuntimeError) Error() string {
	return i18n.T(i18n.MsgRuntimeReport, e.Message, e.Token.Line)
}
