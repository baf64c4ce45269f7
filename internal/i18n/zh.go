package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Scanner errors
	ErrUnexpectedChar:     "无法识别的字符。",
	ErrUnterminatedString: "字符串未闭合。",

	// Parser errors
	ErrExpectExpression:          "此处应为表达式。",
	ErrExpectRightParen:          "表达式之后应有 ')'。",
	ErrExpectSemicolonAfterExpr:  "表达式之后应有 ';'。",
	ErrExpectSemicolonAfterVal:   "print 值之后应有 ';'。",
	ErrExpectVarName:             "var 之后应为变量名。",
	ErrExpectSemicolonAfterVar:   "变量声明之后应有 ';'。",
	ErrExpectRightBrace:          "代码块之后应有 '}'。",
	ErrExpectParenAfterIf:        "'if' 之后应有 '('。",
	ErrExpectParenAfterWhile:     "'while' 之后应有 '('。",
	ErrExpectParenAfterFor:       "'for' 之后应有 '('。",
	ErrExpectRightParenAfterCond: "条件之后应有 ')'。",
	ErrExpectSemicolonAfterLoop:  "循环条件之后应有 ';'。",
	ErrExpectRightParenAfterFor:  "for 子句之后应有 ')'。",
	ErrInvalidAssignTarget:       "无效的赋值目标。",

	// Runtime errors
	ErrOperandsNumbers:          "操作数必须是数字。",
	ErrOperandsNumbersOrStrings: "操作数必须是两个数字或两个字符串。",
	ErrInvalidNegation:          "无效的取负操作数。",
	ErrUndefinedVariable:        "未定义的变量 '%s'。",

	// Diagnostic report formatting
	MsgErrorReport:   "[第 %d 行] 错误%s: %s",
	MsgRuntimeReport: "%s\n[第 %d 行]",
	MsgAtEnd:         " 于末尾",
	MsgAtToken:       " 于 '%s'",

	// Usage and help
	MsgUsage:      "用法: lumo <命令> [参数]",
	MsgCommands:   "命令:",
	MsgCmdRun:     "  run <文件>     运行 lumo 脚本",
	MsgCmdRepl:    "  repl           启动交互式会话",
	MsgCmdVersion: "  version        打印版本号",
	MsgCmdHelp:    "  help           打印帮助信息",
	MsgUseHelp:    "使用 \"lumo help\" 查看更多信息。",

	// run command
	MsgRunUsage:       "用法: lumo run <文件> [选项]",
	MsgRunDescription: "运行一个 lumo 脚本文件。",
	MsgRunArgInput:    "  <文件>    .lumo 脚本路径",
	MsgRunOptVerbose:  "打印各阶段信息",
	MsgRunning:        "运行中...",

	// repl command
	MsgReplWelcome: "lumo %s 交互式会话",
	MsgReplHint:    "按 Ctrl-D 退出。",

	// Errors
	MsgUnknownCommand: "未知命令: %s",
	ErrInputRequired:  "错误: 需要输入文件",
	ErrReadFile:       "错误: 无法读取 %s: %v",
}
