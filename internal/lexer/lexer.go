package lexer

import (
	"strconv"

	"github.com/tangzhangming/lumo/internal/diag"
	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/object"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	errors  []diag.Error
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// Errors 返回扫描过程中收集的错误
func (l *Lexer) Errors() []diag.Error {
	return l.errors
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	if l.ch == '\n' {
		l.line++
	}
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken 获取下一个 token
// 无法识别的字符被报告为错误并跳过，扫描继续进行，
// 因此一次扫描可以收集源码中的多个错误
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		line := l.line

		switch l.ch {
		case '(':
			return l.newToken(TOKEN_LPAREN)
		case ')':
			return l.newToken(TOKEN_RPAREN)
		case '{':
			return l.newToken(TOKEN_LBRACE)
		case '}':
			return l.newToken(TOKEN_RBRACE)
		case ',':
			return l.newToken(TOKEN_COMMA)
		case '.':
			return l.newToken(TOKEN_DOT)
		case '-':
			return l.newToken(TOKEN_MINUS)
		case '+':
			return l.newToken(TOKEN_PLUS)
		case ';':
			return l.newToken(TOKEN_SEMICOLON)
		case '*':
			return l.newToken(TOKEN_ASTERISK)
		case '!':
			if l.peekChar() == '=' {
				return l.newTwoCharToken(TOKEN_NOT_EQ, "!=")
			}
			return l.newToken(TOKEN_NOT)
		case '=':
			if l.peekChar() == '=' {
				return l.newTwoCharToken(TOKEN_EQ, "==")
			}
			return l.newToken(TOKEN_ASSIGN)
		case '<':
			if l.peekChar() == '=' {
				return l.newTwoCharToken(TOKEN_LT_EQ, "<=")
			}
			return l.newToken(TOKEN_LT)
		case '>':
			if l.peekChar() == '=' {
				return l.newTwoCharToken(TOKEN_GT_EQ, ">=")
			}
			return l.newToken(TOKEN_GT)
		case '/':
			if l.peekChar() == '/' {
				l.skipLineComment()
				continue
			}
			return l.newToken(TOKEN_SLASH)
		case '"':
			tok, ok := l.readString()
			if !ok {
				// 字符串未闭合，错误已记录，不产出 token
				continue
			}
			return tok
		case 0:
			return Token{Type: TOKEN_EOF, Lexeme: "", Literal: object.Nil, Line: line}
		default:
			if l.isLetter(l.ch) {
				return l.readIdentifier()
			}
			if l.isDigit(l.ch) {
				return l.readNumber()
			}
			// 无法识别的字符：报告错误并跳过
			l.errors = append(l.errors, diag.New(line, i18n.T(i18n.ErrUnexpectedChar)))
			l.readChar()
		}
	}
}

// newToken 创建单字符 token 并前进
func (l *Lexer) newToken(tokenType TokenType) Token {
	tok := Token{Type: tokenType, Lexeme: string(l.ch), Literal: object.Nil, Line: l.line}
	l.readChar()
	return tok
}

// newTwoCharToken 创建双字符 token 并前进
func (l *Lexer) newTwoCharToken(tokenType TokenType, lexeme string) Token {
	tok := Token{Type: tokenType, Lexeme: lexeme, Literal: object.Nil, Line: l.line}
	l.readChar()
	l.readChar()
	return tok
}

// skipWhitespace 跳过空白字符，换行由 readChar 计入行号
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment 跳过单行注释
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readIdentifier 读取标识符或关键字
func (l *Lexer) readIdentifier() Token {
	pos := l.pos
	line := l.line
	for l.isLetter(l.ch) || l.isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[pos:l.pos]
	return Token{Type: LookupIdent(lexeme), Lexeme: lexeme, Literal: object.Nil, Line: line}
}

// readNumber 读取数字字面量
// 小数点后必须跟数字，否则小数点不属于本数字（如 "4." 产出 NUMBER 和 DOT）
func (l *Lexer) readNumber() Token {
	pos := l.pos
	line := l.line
	for l.isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && l.isDigit(l.peekChar()) {
		l.readChar()
		for l.isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[pos:l.pos]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return Token{Type: TOKEN_NUMBER, Lexeme: lexeme, Literal: object.NewNumber(value), Line: line}
}

// readString 读取双引号字符串，支持内嵌换行
// 返回 false 表示字符串到达输入末尾仍未闭合
func (l *Lexer) readString() (Token, bool) {
	pos := l.pos
	l.readChar() // 跳过开头的 "
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		l.errors = append(l.errors, diag.New(l.line, i18n.T(i18n.ErrUnterminatedString)))
		return Token{}, false
	}
	line := l.line
	l.readChar() // 消费结尾的 "
	lexeme := l.input[pos:l.pos]
	text := lexeme[1 : len(lexeme)-1]
	return Token{Type: TOKEN_STRING, Lexeme: lexeme, Literal: object.NewString(text), Line: line}, true
}

// isLetter 判断是否为字母
func (l *Lexer) isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize 将输入扫描为 token 列表
// 返回的列表总是以恰好一个 EOF token 结尾
func Tokenize(input string) ([]Token, []diag.Error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens, l.errors
}
