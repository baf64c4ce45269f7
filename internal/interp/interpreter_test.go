package interp_test

import (
	"bytes"
	"testing"

	"github.com/tangzhangming/lumo/internal/interp"
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/parser"
)

// run 对源码执行完整流水线，返回 print 输出和运行时错误
func run(t *testing.T, src string) (string, *interp.RuntimeError) {
	t.Helper()
	var out bytes.Buffer
	rerr := runWith(t, interp.New(&out), &out, src)
	return out.String(), rerr
}

func runWith(t *testing.T, in *interp.Interpreter, out *bytes.Buffer, src string) *interp.RuntimeError {
	t.Helper()
	tokens, scanErrs := lexer.Tokenize(src)
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	statements, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return in.Interpret(statements)
}

func expectOutput(t *testing.T, src, want string) {
	t.Helper()
	got, rerr := run(t, src)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func expectRuntimeError(t *testing.T, src, message string) {
	t.Helper()
	_, rerr := run(t, src)
	if rerr == nil {
		t.Fatalf("expected a runtime error")
	}
	if rerr.Message != message {
		t.Errorf("message = %q, want %q", rerr.Message, message)
	}
}

func TestArithmetic(t *testing.T) {
	expectOutput(t, "print 1 + 2;", "3\n")
	expectOutput(t, "print 7 - 2 - 1;", "4\n")
	expectOutput(t, "print 2 * 3 + 1;", "7\n")
	expectOutput(t, "print 1 + 2 * 3;", "7\n")
	expectOutput(t, "print 10 / 4;", "2.5\n")
	expectOutput(t, "print -(3 + 2);", "-5\n")
}

func TestNumberDisplay(t *testing.T) {
	expectOutput(t, "print 4.0;", "4\n")
	expectOutput(t, "print 4.5;", "4.5\n")
	expectOutput(t, "print 10 / 4 * 2;", "5\n")
}

func TestDivisionByZero(t *testing.T) {
	// IEEE 754 语义，不报错
	expectOutput(t, "print 1 / 0;", "+Inf\n")
	expectOutput(t, "print -1 / 0;", "-Inf\n")
}

func TestStringConcatenation(t *testing.T) {
	expectOutput(t, `print "foo" + "bar";`, "foobar\n")
}

func TestComparison(t *testing.T) {
	expectOutput(t, "print 1 < 2;", "true\n")
	expectOutput(t, "print 2 <= 2;", "true\n")
	expectOutput(t, "print 1 > 2;", "false\n")
	expectOutput(t, "print 2 >= 3;", "false\n")
}

func TestEquality(t *testing.T) {
	expectOutput(t, `print "a" == "a";`, "true\n")
	expectOutput(t, "print nil == false;", "false\n")
	expectOutput(t, "print nil == nil;", "true\n")
	expectOutput(t, `print 1 == "1";`, "false\n")
	expectOutput(t, "print 1 != 2;", "true\n")
}

func TestTruthiness(t *testing.T) {
	expectOutput(t, "print !nil;", "true\n")
	expectOutput(t, "print !false;", "true\n")
	expectOutput(t, "print !0;", "false\n")
	expectOutput(t, `print !"";`, "false\n")
}

func TestOperandTypeErrors(t *testing.T) {
	expectRuntimeError(t, `print 1 + "a";`, "Operands must be either two numbers or two strings.")
	expectRuntimeError(t, `print "a" < "b";`, "Operands must be numbers.")
	expectRuntimeError(t, `print nil * 2;`, "Operands must be numbers.")
	expectRuntimeError(t, `print -"a";`, "Invalid negation operand.")
}

func TestVariables(t *testing.T) {
	expectOutput(t, "var a = 1; print a;", "1\n")
	expectOutput(t, "var a; print a;", "nil\n")
	expectOutput(t, `var a = "foo"; var a = "bar"; print a;`, "bar\n")
	expectOutput(t, "var x = 1; x = 2; print x;", "2\n")
	expectOutput(t, "var x; print x = 3;", "3\n")
}

func TestUndefinedVariable(t *testing.T) {
	expectRuntimeError(t, "print ghost;", "Undefined variable 'ghost'.")
	expectRuntimeError(t, "ghost = 1;", "Undefined variable 'ghost'.")
}

func TestBlockScoping(t *testing.T) {
	expectOutput(t, "var a = 1; { var a = 2; print a; } print a;", "2\n1\n")
	expectOutput(t, "var a = 1; { a = 2; } print a;", "2\n")

	// 块内声明的变量在块结束后不可见
	out, rerr := run(t, `{ var x = "inner"; } print x;`)
	if rerr == nil {
		t.Fatal("expected a runtime error")
	}
	if rerr.Message != "Undefined variable 'x'." {
		t.Errorf("message = %q", rerr.Message)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestIfElse(t *testing.T) {
	expectOutput(t, `if (1 < 2) print "yes"; else print "no";`, "yes\n")
	expectOutput(t, `if (1 > 2) print "yes"; else print "no";`, "no\n")
	expectOutput(t, `if (nil) print "never";`, "")
	expectOutput(t, `if (0) print "zero is truthy";`, "zero is truthy\n")
}

func TestWhileLoop(t *testing.T) {
	expectOutput(t, "var x = 0; while (x < 3) { print x; x = x + 1; }", "0\n1\n2\n")
	expectOutput(t, "while (false) print 1;", "")
}

func TestForLoop(t *testing.T) {
	expectOutput(t, "for (var i = 0; i < 3; i = i + 1) print i;", "0\n1\n2\n")
	expectOutput(t, "var i = 10; for (i = 0; i < 2; i = i + 1) print i; print i;", "0\n1\n2\n")
}

func TestLogicalShortCircuit(t *testing.T) {
	// 短路时右侧不被求值：对 n 的赋值不得发生
	expectOutput(t, "var n = 0; false and (n = n + 1); print n;", "0\n")
	expectOutput(t, "var n = 0; true or (n = n + 1); print n;", "0\n")
	expectOutput(t, "var n = 0; true and (n = n + 1); print n;", "1\n")
	expectOutput(t, "var n = 0; false or (n = n + 1); print n;", "1\n")
}

func TestLogicalReturnsOperandValue(t *testing.T) {
	expectOutput(t, `print "hi" or 2;`, "hi\n")
	expectOutput(t, "print nil or 2;", "2\n")
	expectOutput(t, "print nil and 2;", "nil\n")
	expectOutput(t, `print 1 and "two";`, "two\n")
}

func TestRuntimeErrorAbortsRemainingStatements(t *testing.T) {
	out, rerr := run(t, `print "before"; print ghost; print "after";`)
	if rerr == nil {
		t.Fatal("expected a runtime error")
	}
	if out != "before\n" {
		t.Errorf("output = %q, want %q", out, "before\n")
	}
}

func TestScopeRestoredAfterRuntimeError(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(&out)

	// 块内发生运行时错误，作用域仍须恢复到全局
	if rerr := runWith(t, in, &out, `var a = 1; { var a = 2; print ghost; }`); rerr == nil {
		t.Fatal("expected a runtime error")
	}
	out.Reset()
	if rerr := runWith(t, in, &out, "print a;"); rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
}

func TestStatePersistsAcrossInterpretCalls(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(&out)

	if rerr := runWith(t, in, &out, "var counter = 1;"); rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if rerr := runWith(t, in, &out, "counter = counter + 1; print counter;"); rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if out.String() != "2\n" {
		t.Errorf("output = %q, want %q", out.String(), "2\n")
	}
}

func TestEchoMode(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(&out)
	in.SetEcho(true)

	runWith(t, in, &out, "1 + 2;")
	runWith(t, in, &out, `"a" + "b";`)
	runWith(t, in, &out, "nil == nil;")

	want := "3\n\"ab\"\ntrue\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestEchoOffByDefault(t *testing.T) {
	expectOutput(t, "1 + 2;", "")
}
