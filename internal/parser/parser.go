package parser

import (
	"github.com/tangzhangming/lumo/internal/diag"
	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/object"
)

// ------------ 语法 ------------
//
// program     -> declaration* EOF
// declaration -> "var" IDENT ("=" expression)? ";"  |  statement
// statement   -> exprStmt | printStmt | ifStmt | whileStmt | forStmt | block
// block       -> "{" declaration* "}"
// exprStmt    -> expression ";"
// printStmt   -> "print" expression ";"
// ifStmt      -> "if" "(" expression ")" statement ("else" statement)?
// whileStmt   -> "while" "(" expression ")" statement
// forStmt     -> "for" "(" (varDecl|exprStmt|";") expression? ";" expression? ")" statement
// expression  -> assignment
// assignment  -> IDENT "=" assignment | logic_or
// logic_or    -> logic_and ("or" logic_and)*
// logic_and   -> equality ("and" equality)*
// equality    -> comparison (("!="|"==") comparison)*
// comparison  -> term ((">"|">="|"<"|"<=") term)*
// term        -> factor (("+"|"-") factor)*
// factor      -> unary (("*"|"/") unary)*
// unary       -> ("!"|"-") unary | primary
// primary     -> NUMBER | STRING | "true" | "false" | "nil" | IDENT | "(" expression ")"

// Parser 语法分析器
type Parser struct {
	tokens []lexer.Token
	pos    int
	errors []diag.Error
}

// parseError 语法错误哨兵，真正的错误内容记录在 p.errors 中
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// New 创建一个新的语法分析器
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors 返回解析过程中的错误
func (p *Parser) Errors() []diag.Error {
	return p.errors
}

// Parse 解析整个程序
// 某条语句解析失败时，其错误被记录，解析器同步到下一条语句边界后继续，
// 因此一条坏语句不会中断整个程序的解析；失败的语句不出现在结果中
func (p *Parser) Parse() ([]Statement, []diag.Error) {
	var statements []Statement
	for !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errors
}

// declaration 解析声明，是错误恢复的边界
func (p *Parser) declaration() Statement {
	var stmt Statement
	var err error
	if p.match(lexer.TOKEN_VAR) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// varDeclaration 解析变量声明，"var" 已被消费
func (p *Parser) varDeclaration() (Statement, error) {
	name, err := p.consume(lexer.TOKEN_IDENT, i18n.ErrExpectVarName)
	if err != nil {
		return nil, err
	}

	var initializer Expression
	if p.match(lexer.TOKEN_ASSIGN) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TOKEN_SEMICOLON, i18n.ErrExpectSemicolonAfterVar); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

// statement 解析语句
func (p *Parser) statement() (Statement, error) {
	switch {
	case p.match(lexer.TOKEN_PRINT):
		return p.printStatement()
	case p.match(lexer.TOKEN_LBRACE):
		return p.blockStatement()
	case p.match(lexer.TOKEN_IF):
		return p.ifStatement()
	case p.match(lexer.TOKEN_WHILE):
		return p.whileStatement()
	case p.match(lexer.TOKEN_FOR):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

// printStatement 解析 print 语句，"print" 已被消费
func (p *Parser) printStatement() (Statement, error) {
	keyword := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, i18n.ErrExpectSemicolonAfterVal); err != nil {
		return nil, err
	}
	return &PrintStmt{Token: keyword, Expression: value}, nil
}

// blockStatement 解析代码块，"{" 已被消费
func (p *Parser) blockStatement() (Statement, error) {
	brace := p.previous()
	var statements []Statement
	for !p.check(lexer.TOKEN_RBRACE) && !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, i18n.ErrExpectRightBrace); err != nil {
		return nil, err
	}
	return &BlockStmt{Token: brace, Statements: statements}, nil
}

// ifStatement 解析条件语句，"if" 已被消费
func (p *Parser) ifStatement() (Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(lexer.TOKEN_LPAREN, i18n.ErrExpectParenAfterIf); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RPAREN, i18n.ErrExpectRightParenAfterCond); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Statement
	if p.match(lexer.TOKEN_ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Token: keyword, Condition: condition, Then: then, Else: elseBranch}, nil
}

// whileStatement 解析循环语句，"while" 已被消费
func (p *Parser) whileStatement() (Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(lexer.TOKEN_LPAREN, i18n.ErrExpectParenAfterWhile); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RPAREN, i18n.ErrExpectRightParenAfterCond); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Token: keyword, Condition: condition, Body: body}, nil
}

// forStatement 解析 for 语句，"for" 已被消费
// for 没有独立的 AST 节点，脱糖为等价的 Block/While 组合：
// 初始化语句在外层 Block，自增表达式拼在循环体 Block 末尾，
// 缺失的条件脱糖为字面量 true
func (p *Parser) forStatement() (Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(lexer.TOKEN_LPAREN, i18n.ErrExpectParenAfterFor); err != nil {
		return nil, err
	}

	var initializer Statement
	var err error
	if p.match(lexer.TOKEN_SEMICOLON) {
		initializer = nil
	} else if p.match(lexer.TOKEN_VAR) {
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	} else {
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition Expression
	if !p.check(lexer.TOKEN_SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, i18n.ErrExpectSemicolonAfterLoop); err != nil {
		return nil, err
	}

	var increment Expression
	if !p.check(lexer.TOKEN_RPAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.TOKEN_RPAREN, i18n.ErrExpectRightParenAfterFor); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{
			Token:      keyword,
			Statements: []Statement{body, &ExpressionStmt{Expression: increment}},
		}
	}
	if condition == nil {
		condition = &Literal{Token: keyword, Value: object.NewBool(true)}
	}
	var loop Statement = &WhileStmt{Token: keyword, Condition: condition, Body: body}
	if initializer != nil {
		loop = &BlockStmt{Token: keyword, Statements: []Statement{initializer, loop}}
	}
	return loop, nil
}

// expressionStatement 解析表达式语句
func (p *Parser) expressionStatement() (Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, i18n.ErrExpectSemicolonAfterExpr); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

// expression 解析表达式
func (p *Parser) expression() (Expression, error) {
	return p.assignment()
}

// assignment 解析赋值，右结合
// 赋值目标必须是变量引用，其它形状报告错误但不中断当前语句
func (p *Parser) assignment() (Expression, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.TOKEN_ASSIGN) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*Variable); ok {
			return &Assign{Name: variable.Name, Value: value}, nil
		}
		p.errorAt(equals, i18n.ErrInvalidAssignTarget)
	}
	return expr, nil
}

// logicOr 解析 or，短路
func (p *Parser) logicOr() (Expression, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_OR) {
		operator := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// logicAnd 解析 and，短路
func (p *Parser) logicAnd() (Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// equality 解析相等比较，左结合
func (p *Parser) equality() (Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_NOT_EQ, lexer.TOKEN_EQ) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// comparison 解析大小比较，左结合
func (p *Parser) comparison() (Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_GT, lexer.TOKEN_GT_EQ, lexer.TOKEN_LT, lexer.TOKEN_LT_EQ) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// term 解析加减，左结合
func (p *Parser) term() (Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_PLUS, lexer.TOKEN_MINUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// factor 解析乘除，左结合
func (p *Parser) factor() (Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_ASTERISK, lexer.TOKEN_SLASH) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// unary 解析一元运算，右结合
func (p *Parser) unary() (Expression, error) {
	if p.match(lexer.TOKEN_NOT, lexer.TOKEN_MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

// primary 解析基本表达式
func (p *Parser) primary() (Expression, error) {
	switch {
	case p.match(lexer.TOKEN_FALSE):
		return &Literal{Token: p.previous(), Value: object.NewBool(false)}, nil
	case p.match(lexer.TOKEN_TRUE):
		return &Literal{Token: p.previous(), Value: object.NewBool(true)}, nil
	case p.match(lexer.TOKEN_NIL):
		return &Literal{Token: p.previous(), Value: object.Nil}, nil
	case p.match(lexer.TOKEN_NUMBER, lexer.TOKEN_STRING):
		tok := p.previous()
		return &Literal{Token: tok, Value: tok.Literal}, nil
	case p.match(lexer.TOKEN_IDENT):
		return &Variable{Name: p.previous()}, nil
	case p.match(lexer.TOKEN_LPAREN):
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_RPAREN, i18n.ErrExpectRightParen); err != nil {
			return nil, err
		}
		return &Grouping{Token: paren, Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), i18n.ErrExpectExpression)
	}
}

// synchronize 错误恢复：丢弃 token 直到语句边界
// 刚消费的 token 是 ';'，或下一个 token 是语句/声明关键字时停下
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == lexer.TOKEN_SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.TOKEN_CLASS, lexer.TOKEN_FUN, lexer.TOKEN_VAR, lexer.TOKEN_FOR,
			lexer.TOKEN_IF, lexer.TOKEN_WHILE, lexer.TOKEN_PRINT, lexer.TOKEN_RETURN:
			return
		}
		p.advance()
	}
}

// ----------------------------------------------------------------------------
// 辅助方法
// ----------------------------------------------------------------------------

// match 当前 token 为给定类型之一时消费并返回 true
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume 消费给定类型的 token，否则记录错误
func (p *Parser) consume(t lexer.TokenType, msgKey string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), msgKey)
}

// errorAt 在给定 token 处记录一条语法错误
func (p *Parser) errorAt(tok lexer.Token, msgKey string) error {
	where := i18n.T(i18n.MsgAtToken, tok.Lexeme)
	if tok.Type == lexer.TOKEN_EOF {
		where = i18n.T(i18n.MsgAtEnd)
	}
	p.errors = append(p.errors, diag.Error{Line: tok.Line, Where: where, Message: i18n.T(msgKey)})
	return parseError{}
}

// check 检查当前 token 类型，不消费
func (p *Parser) check(t lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

// advance 消费当前 token 并返回它
func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

// atEnd 是否到达 token 流末尾
func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.TOKEN_EOF
}

// peek 查看当前 token
func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

// previous 返回最近消费的 token
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}
