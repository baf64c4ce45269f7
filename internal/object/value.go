package object

import (
	"strconv"
)

// ValueType 表示运行时值的类型
type ValueType int

const (
	NIL ValueType = iota
	NUMBER
	STRING
	BOOL
)

// Value 表示一个运行时值
// 同时用作 NUMBER/STRING token 携带的字面量和表达式求值的结果
type Value struct {
	Type    ValueType
	Number  float64
	Text    string
	Boolean bool
}

// Nil 空值
var Nil = Value{Type: NIL}

// NewNumber 创建数字值
func NewNumber(n float64) Value {
	return Value{Type: NUMBER, Number: n}
}

// NewString 创建字符串值
func NewString(s string) Value {
	return Value{Type: STRING, Text: s}
}

// NewBool 创建布尔值
func NewBool(b bool) Value {
	return Value{Type: BOOL, Boolean: b}
}

// Truthy 返回值的真假性
// nil 和 false 为假，其余一切值（包括 0 和空字符串）为真
func (v Value) Truthy() bool {
	switch v.Type {
	case NIL:
		return false
	case BOOL:
		return v.Boolean
	default:
		return true
	}
}

// Equals 判断两个值是否相等
// nil 只等于 nil，跨类型比较一律不等，不会产生运行时错误
func (v Value) Equals(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case NIL:
		return true
	case NUMBER:
		return v.Number == other.Number
	case STRING:
		return v.Text == other.Text
	case BOOL:
		return v.Boolean == other.Boolean
	}
	return false
}

// String 返回值的显示形式
// 整数值的浮点数不带小数部分（4.0 显示为 4）
func (v Value) String() string {
	switch v.Type {
	case NIL:
		return "nil"
	case NUMBER:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case STRING:
		return v.Text
	case BOOL:
		return strconv.FormatBool(v.Boolean)
	}
	return "nil"
}

// TypeName 返回类型的名称
func (v Value) TypeName() string {
	switch v.Type {
	case NIL:
		return "nil"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case BOOL:
		return "bool"
	}
	return "unknown"
}
