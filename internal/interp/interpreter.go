package interp

import (
	"fmt"
	"io"

	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/object"
	"github.com/tangzhangming/lumo/internal/parser"
)

// Interpreter 树遍历求值器
// 持有当前作用域链和输出目标，跨多次 Interpret 调用保持状态，
// 交互式会话中变量因此能跨行存续
type Interpreter struct {
	env  *Environment
	out  io.Writer
	echo bool
}

// New 创建一个新的求值器，print 输出写入 out
func New(out io.Writer) *Interpreter {
	return &Interpreter{env: NewEnvironment(), out: out}
}

// SetEcho 开启后，顶层表达式语句的求值结果会被回显（交互式会话用）
func (i *Interpreter) SetEcho(on bool) {
	i.echo = on
}

// Interpret 顺序执行语句序列
// 运行时错误向上传播并中止本次调用中剩余的语句
func (i *Interpreter) Interpret(statements []parser.Statement) *RuntimeError {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execute 执行单条语句
func (i *Interpreter) execute(stmt parser.Statement) *RuntimeError {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		if i.echo {
			fmt.Fprintln(i.out, echoForm(value))
		}
		return nil

	case *parser.PrintStmt:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value.String())
		return nil

	case *parser.VarStmt:
		value := object.Nil
		if s.Initializer != nil {
			var err *RuntimeError
			value, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *parser.BlockStmt:
		return i.executeBlock(s.Statements, NewEnclosed(i.env))

	case *parser.IfStmt:
		condition, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if condition.Truthy() {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *parser.WhileStmt:
		for {
			condition, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !condition.Truthy() {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		panic(fmt.Sprintf("interp: unknown statement type %T", stmt))
	}
}

// executeBlock 在给定作用域中执行语句序列
// 无论正常结束还是运行时错误提前退出，都恢复先前的作用域
func (i *Interpreter) executeBlock(statements []parser.Statement, env *Environment) *RuntimeError {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// evaluate 求值表达式
func (i *Interpreter) evaluate(expr parser.Expression) (object.Value, *RuntimeError) {
	switch e := expr.(type) {
	case *parser.Literal:
		return e.Value, nil

	case *parser.Grouping:
		return i.evaluate(e.Expression)

	case *parser.Variable:
		return i.env.Get(e.Name)

	case *parser.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return object.Nil, err
		}
		if err := i.env.Assign(e.Name, value); err != nil {
			return object.Nil, err
		}
		return value, nil

	case *parser.Unary:
		return i.evaluateUnary(e)

	case *parser.Logical:
		return i.evaluateLogical(e)

	case *parser.Binary:
		return i.evaluateBinary(e)

	default:
		panic(fmt.Sprintf("interp: unknown expression type %T", expr))
	}
}

// evaluateUnary 求值一元运算
// ! 对任何值应用真假性，永不出错；- 要求操作数为数字
func (i *Interpreter) evaluateUnary(e *parser.Unary) (object.Value, *RuntimeError) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return object.Nil, err
	}

	switch e.Operator.Type {
	case lexer.TOKEN_NOT:
		return object.NewBool(!right.Truthy()), nil
	case lexer.TOKEN_MINUS:
		if right.Type != object.NUMBER {
			return object.Nil, NewRuntimeError(e.Operator, i18n.T(i18n.ErrInvalidNegation))
		}
		return object.NewNumber(-right.Number), nil
	}
	panic(fmt.Sprintf("interp: unknown unary operator %s", e.Operator.Lexeme))
}

// evaluateLogical 求值逻辑运算，短路
// or 的左值为真、and 的左值为假时直接返回左值，右侧表达式不被求值
func (i *Interpreter) evaluateLogical(e *parser.Logical) (object.Value, *RuntimeError) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return object.Nil, err
	}

	if e.Operator.Type == lexer.TOKEN_OR {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

// evaluateBinary 求值二元运算
// 算术和大小比较要求两个数字操作数，+ 额外接受两个字符串做拼接；
// ==/!= 跨类型比较不报错，除零遵循 IEEE 754 产生无穷/NaN
func (i *Interpreter) evaluateBinary(e *parser.Binary) (object.Value, *RuntimeError) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return object.Nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return object.Nil, err
	}

	switch e.Operator.Type {
	case lexer.TOKEN_EQ:
		return object.NewBool(left.Equals(right)), nil
	case lexer.TOKEN_NOT_EQ:
		return object.NewBool(!left.Equals(right)), nil

	case lexer.TOKEN_PLUS:
		if left.Type == object.NUMBER && right.Type == object.NUMBER {
			return object.NewNumber(left.Number + right.Number), nil
		}
		if left.Type == object.STRING && right.Type == object.STRING {
			return object.NewString(left.Text + right.Text), nil
		}
		return object.Nil, NewRuntimeError(e.Operator, i18n.T(i18n.ErrOperandsNumbersOrStrings))
	}

	if left.Type != object.NUMBER || right.Type != object.NUMBER {
		return object.Nil, NewRuntimeError(e.Operator, i18n.T(i18n.ErrOperandsNumbers))
	}

	switch e.Operator.Type {
	case lexer.TOKEN_MINUS:
		return object.NewNumber(left.Number - right.Number), nil
	case lexer.TOKEN_ASTERISK:
		return object.NewNumber(left.Number * right.Number), nil
	case lexer.TOKEN_SLASH:
		return object.NewNumber(left.Number / right.Number), nil
	case lexer.TOKEN_GT:
		return object.NewBool(left.Number > right.Number), nil
	case lexer.TOKEN_GT_EQ:
		return object.NewBool(left.Number >= right.Number), nil
	case lexer.TOKEN_LT:
		return object.NewBool(left.Number < right.Number), nil
	case lexer.TOKEN_LT_EQ:
		return object.NewBool(left.Number <= right.Number), nil
	}
	panic(fmt.Sprintf("interp: unknown binary operator %s", e.Operator.Lexeme))
}

// echoForm 交互式会话的回显形式，字符串带引号以区别于裸文本
func echoForm(v object.Value) string {
	if v.Type == object.STRING {
		return "\"" + v.Text + "\""
	}
	return v.String()
}
