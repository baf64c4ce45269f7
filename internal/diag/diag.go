// Package diag defines the structured static errors produced by the
// scanner and parser, and their console report format.
package diag

import (
	"github.com/tangzhangming/lumo/internal/i18n"
)

// Error 静态错误（扫描或解析阶段）
// Where 是出错位置的描述，如 " at 'foo'"，扫描错误没有位置描述
type Error struct {
	Line    int
	Where   string
	Message string
}

// New 创建一个不带位置描述的静态错误
func New(line int, message string) Error {
	return Error{Line: line, Message: message}
}

// Error 返回完整的报告文本，如 [line 3] Error at 'foo': Expect expression.
func (e Error) Error() string {
	return i18n.T(i18n.MsgErrorReport, e.Line, e.Where, e.Message)
}
