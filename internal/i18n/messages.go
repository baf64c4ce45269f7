package i18n

// Message keys for scanner errors
const (
	ErrUnexpectedChar     = "scan.unexpected_char"
	ErrUnterminatedString = "scan.unterminated_string"
)

// Message keys for parser errors
const (
	ErrExpectExpression          = "parser.expect_expression"
	ErrExpectRightParen          = "parser.expect_right_paren"
	ErrExpectSemicolonAfterExpr  = "parser.expect_semicolon_after_expr"
	ErrExpectSemicolonAfterVal   = "parser.expect_semicolon_after_value"
	ErrExpectVarName             = "parser.expect_var_name"
	ErrExpectSemicolonAfterVar   = "parser.expect_semicolon_after_var"
	ErrExpectRightBrace          = "parser.expect_right_brace"
	ErrExpectParenAfterIf        = "parser.expect_paren_after_if"
	ErrExpectParenAfterWhile     = "parser.expect_paren_after_while"
	ErrExpectParenAfterFor       = "parser.expect_paren_after_for"
	ErrExpectRightParenAfterCond = "parser.expect_right_paren_after_cond"
	ErrExpectSemicolonAfterLoop  = "parser.expect_semicolon_after_loop"
	ErrExpectRightParenAfterFor  = "parser.expect_right_paren_after_for"
	ErrInvalidAssignTarget       = "parser.invalid_assign_target"
)

// Message keys for runtime errors
const (
	ErrOperandsNumbers          = "runtime.operands_numbers"
	ErrOperandsNumbersOrStrings = "runtime.operands_numbers_or_strings"
	ErrInvalidNegation          = "runtime.invalid_negation"
	ErrUndefinedVariable        = "runtime.undefined_variable" // args: name
)

// Message keys for diagnostic report formatting
const (
	MsgErrorReport   = "diag.report"         // args: line, location, message
	MsgRuntimeReport = "diag.runtime_report" // args: message, line
	MsgAtEnd         = "diag.at_end"
	MsgAtToken       = "diag.at_token" // args: lexeme
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage      = "cli.usage"
	MsgCommands   = "cli.commands"
	MsgCmdRun     = "cli.cmd_run"
	MsgCmdRepl    = "cli.cmd_repl"
	MsgCmdVersion = "cli.cmd_version"
	MsgCmdHelp    = "cli.cmd_help"
	MsgUseHelp    = "cli.use_help"

	// run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgRunArgInput    = "cli.run_arg_input"
	MsgRunOptVerbose  = "cli.run_opt_verbose"
	MsgRunning        = "cli.running"

	// repl command
	MsgReplWelcome = "cli.repl_welcome" // args: version
	MsgReplHint    = "cli.repl_hint"

	// Errors
	MsgUnknownCommand = "cli.unknown_command" // args: command
	ErrInputRequired  = "cli.input_required"
	ErrReadFile       = "cli.read_file" // args: path, err
)
