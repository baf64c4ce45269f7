package interp

import (
	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/object"
)

// Environment 词法作用域链
// 每个代码块持有自己的绑定表和指向外层作用域的引用，
// 由内向外形成单链，最外层是全局作用域
type Environment struct {
	values    map[string]object.Value
	enclosing *Environment
}

// NewEnvironment 创建全局作用域
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]object.Value)}
}

// NewEnclosed 创建嵌套在给定作用域内的子作用域
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), enclosing: enclosing}
}

// Define 在当前作用域定义变量
// 同名变量无条件覆盖，即使外层作用域已有同名绑定（遮蔽总是允许的）
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get 查找变量，由当前作用域逐层向外搜索
func (e *Environment) Get(name lexer.Token) (object.Value, *RuntimeError) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return object.Nil, NewRuntimeError(name, i18n.T(i18n.ErrUndefinedVariable, name.Lexeme))
}

// Assign 对已有绑定赋值，由当前作用域逐层向外搜索
// 变量在任何作用域都未绑定时报错，赋值永远不会隐式创建全局变量
func (e *Environment) Assign(name lexer.Token, value object.Value) *RuntimeError {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return NewRuntimeError(name, i18n.T(i18n.ErrUndefinedVariable, name.Lexeme))
}
