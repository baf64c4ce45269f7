package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Scanner errors
	ErrUnexpectedChar:     "Unexpected character.",
	ErrUnterminatedString: "Unterminated string.",

	// Parser errors
	ErrExpectExpression:          "Expect expression.",
	ErrExpectRightParen:          "Expect ')' after expression.",
	ErrExpectSemicolonAfterExpr:  "Expect ';' after expression.",
	ErrExpectSemicolonAfterVal:   "Expect ';' after value.",
	ErrExpectVarName:             "Expect variable name.",
	ErrExpectSemicolonAfterVar:   "Expect ';' after variable declaration.",
	ErrExpectRightBrace:          "Expect '}' after block.",
	ErrExpectParenAfterIf:        "Expect '(' after 'if'.",
	ErrExpectParenAfterWhile:     "Expect '(' after 'while'.",
	ErrExpectParenAfterFor:       "Expect '(' after 'for'.",
	ErrExpectRightParenAfterCond: "Expect ')' after condition.",
	ErrExpectSemicolonAfterLoop:  "Expect ';' after loop condition.",
	ErrExpectRightParenAfterFor:  "Expect ')' after for clauses.",
	ErrInvalidAssignTarget:       "Invalid assignment target.",

	// Runtime errors
	ErrOperandsNumbers:          "Operands must be numbers.",
	ErrOperandsNumbersOrStrings: "Operands must be either two numbers or two strings.",
	ErrInvalidNegation:          "Invalid negation operand.",
	ErrUndefinedVariable:        "Undefined variable '%s'.",

	// Diagnostic report formatting
	MsgErrorReport:   "[line %d] Error%s: %s",
	MsgRuntimeReport: "%s\n[line %d]",
	MsgAtEnd:         " at end",
	MsgAtToken:       " at '%s'",

	// Usage and help
	MsgUsage:      "Usage: lumo <command> [arguments]",
	MsgCommands:   "Commands:",
	MsgCmdRun:     "  run <file>     run a lumo script",
	MsgCmdRepl:    "  repl           start an interactive session",
	MsgCmdVersion: "  version        print version",
	MsgCmdHelp:    "  help           print this help",
	MsgUseHelp:    "Use \"lumo help\" for more information.",

	// run command
	MsgRunUsage:       "Usage: lumo run <file> [options]",
	MsgRunDescription: "Run a lumo script file.",
	MsgRunArgInput:    "  <file>    path to a .lumo script",
	MsgRunOptVerbose:  "print pipeline stages",
	MsgRunning:        "Running...",

	// repl command
	MsgReplWelcome: "lumo %s interactive session",
	MsgReplHint:    "Press Ctrl-D to exit.",

	// Errors
	MsgUnknownCommand: "Unknown command: %s",
	ErrInputRequired:  "Error: input file required",
	ErrReadFile:       "Error: cannot read %s: %v",
}
