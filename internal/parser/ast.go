package parser

import (
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/object"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// ----------------------------------------------------------------------------
// 表达式节点
// ----------------------------------------------------------------------------

// Literal 字面量表达式
type Literal struct {
	Token lexer.Token // 字面量 token
	Value object.Value
}

func (e *Literal) TokenLiteral() string { return e.Token.Lexeme }
func (e *Literal) expressionNode()      {}

// Variable 变量引用表达式
type Variable struct {
	Name lexer.Token // 标识符 token
}

func (e *Variable) TokenLiteral() string { return e.Name.Lexeme }
func (e *Variable) expressionNode()      {}

// Assign 赋值表达式
type Assign struct {
	Name  lexer.Token // 被赋值的标识符 token
	Value Expression
}

func (e *Assign) TokenLiteral() string { return e.Name.Lexeme }
func (e *Assign) expressionNode()      {}

// Binary 二元运算表达式
type Binary struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (e *Binary) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Binary) expressionNode()      {}

// Logical 逻辑运算表达式（and/or，短路求值）
type Logical struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (e *Logical) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Logical) expressionNode()      {}

// Unary 一元运算表达式
type Unary struct {
	Operator lexer.Token
	Right    Expression
}

func (e *Unary) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Unary) expressionNode()      {}

// Grouping 括号表达式
type Grouping struct {
	Token      lexer.Token // ( token
	Expression Expression
}

func (e *Grouping) TokenLiteral() string { return e.Token.Lexeme }
func (e *Grouping) expressionNode()      {}

// ----------------------------------------------------------------------------
// 语句节点
// ----------------------------------------------------------------------------

// ExpressionStmt 表达式语句
type ExpressionStmt struct {
	Expression Expression
}

func (s *ExpressionStmt) TokenLiteral() string { return s.Expression.TokenLiteral() }
func (s *ExpressionStmt) statementNode()       {}

// PrintStmt print 语句
type PrintStmt struct {
	Token      lexer.Token // print token
	Expression Expression
}

func (s *PrintStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *PrintStmt) statementNode()       {}

// VarStmt 变量声明语句，初始化表达式可以为空
type VarStmt struct {
	Name        lexer.Token // 变量名 token
	Initializer Expression
}

func (s *VarStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *VarStmt) statementNode()       {}

// BlockStmt 代码块语句
type BlockStmt struct {
	Token      lexer.Token // { token
	Statements []Statement
}

func (s *BlockStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *BlockStmt) statementNode()       {}

// IfStmt 条件语句，Else 分支可以为空
type IfStmt struct {
	Token     lexer.Token // if token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (s *IfStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *IfStmt) statementNode()       {}

// WhileStmt 循环语句
type WhileStmt struct {
	Token     lexer.Token // while token
	Condition Expression
	Body      Statement
}

func (s *WhileStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *WhileStmt) statementNode()       {}
