package lexer

import (
	"github.com/tangzhangming/lumo/internal/object"
)

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_EOF TokenType = iota

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_NUMBER // 数字
	TOKEN_STRING // 字符串

	// 单字符运算符和分隔符
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_COMMA     // ,
	TOKEN_DOT       // .
	TOKEN_MINUS     // -
	TOKEN_PLUS      // +
	TOKEN_SEMICOLON // ;
	TOKEN_SLASH     // /
	TOKEN_ASTERISK  // *

	// 单字符或双字符运算符
	TOKEN_NOT    // !
	TOKEN_NOT_EQ // !=
	TOKEN_ASSIGN // =
	TOKEN_EQ     // ==
	TOKEN_GT     // >
	TOKEN_GT_EQ  // >=
	TOKEN_LT     // <
	TOKEN_LT_EQ  // <=

	// 关键字
	TOKEN_AND    // and
	TOKEN_CLASS  // class
	TOKEN_ELSE   // else
	TOKEN_FALSE  // false
	TOKEN_FUN    // fun
	TOKEN_FOR    // for
	TOKEN_IF     // if
	TOKEN_NIL    // nil
	TOKEN_OR     // or
	TOKEN_PRINT  // print
	TOKEN_RETURN // return
	TOKEN_SUPER  // super
	TOKEN_THIS   // this
	TOKEN_TRUE   // true
	TOKEN_VAR    // var
	TOKEN_WHILE  // while
)

// Token 表示一个词法单元
// Literal 仅对 NUMBER/STRING 有意义，其余为 object.Nil
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal object.Value
	Line    int
}

var keywords = map[string]TokenType{
	"and":    TOKEN_AND,
	"class":  TOKEN_CLASS,
	"else":   TOKEN_ELSE,
	"false":  TOKEN_FALSE,
	"fun":    TOKEN_FUN,
	"for":    TOKEN_FOR,
	"if":     TOKEN_IF,
	"nil":    TOKEN_NIL,
	"or":     TOKEN_OR,
	"print":  TOKEN_PRINT,
	"return": TOKEN_RETURN,
	"super":  TOKEN_SUPER,
	"this":   TOKEN_THIS,
	"true":   TOKEN_TRUE,
	"var":    TOKEN_VAR,
	"while":  TOKEN_WHILE,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	names := map[TokenType]string{
		TOKEN_EOF:       "EOF",
		TOKEN_IDENT:     "IDENT",
		TOKEN_NUMBER:    "NUMBER",
		TOKEN_STRING:    "STRING",
		TOKEN_LPAREN:    "(",
		TOKEN_RPAREN:    ")",
		TOKEN_LBRACE:    "{",
		TOKEN_RBRACE:    "}",
		TOKEN_COMMA:     ",",
		TOKEN_DOT:       ".",
		TOKEN_MINUS:     "-",
		TOKEN_PLUS:      "+",
		TOKEN_SEMICOLON: ";",
		TOKEN_SLASH:     "/",
		TOKEN_ASTERISK:  "*",
		TOKEN_NOT:       "!",
		TOKEN_NOT_EQ:    "!=",
		TOKEN_ASSIGN:    "=",
		TOKEN_EQ:        "==",
		TOKEN_GT:        ">",
		TOKEN_GT_EQ:     ">=",
		TOKEN_LT:        "<",
		TOKEN_LT_EQ:     "<=",
		TOKEN_AND:       "and",
		TOKEN_CLASS:     "class",
		TOKEN_ELSE:      "else",
		TOKEN_FALSE:     "false",
		TOKEN_FUN:       "fun",
		TOKEN_FOR:       "for",
		TOKEN_IF:        "if",
		TOKEN_NIL:       "nil",
		TOKEN_OR:        "or",
		TOKEN_PRINT:     "print",
		TOKEN_RETURN:    "return",
		TOKEN_SUPER:     "super",
		TOKEN_THIS:      "this",
		TOKEN_TRUE:      "true",
		TOKEN_VAR:       "var",
		TOKEN_WHILE:     "while",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}
