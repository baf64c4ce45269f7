package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tangzhangming/lumo/internal/config"
	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/interp"
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/parser"
)

// replCmd 交互式会话
// 每行输入走完整的扫描/解析/求值流水线；求值器跨行复用，
// 变量因此在整个会话中存续。静态错误丢弃当前行，运行时错误
// 报告后继续读取下一行，会话不会因错误而退出
func replCmd(args []string) {
	cwd, _ := os.Getwd()
	cfg, _, err := config.FindAndLoad(cwd)
	if err != nil {
		printError("Error: " + err.Error())
		cfg = config.DefaultConfig()
	}
	if cfg.Lang != "" {
		i18n.SetLanguage(i18n.Language(cfg.Lang))
	}

	printInfo(i18n.T(i18n.MsgReplWelcome, version))
	printInfo(i18n.T(i18n.MsgReplHint))

	interpreter := interp.New(os.Stdout)
	interpreter.SetEcho(true)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cfg.Repl.Prompt)
		if !scanner.Scan() {
			// EOF（Ctrl-D）退出
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		tokens, scanErrs := lexer.Tokenize(line)
		statements, parseErrs := parser.New(tokens).Parse()
		if len(scanErrs) > 0 || len(parseErrs) > 0 {
			for _, e := range scanErrs {
				printError(e.Error())
			}
			for _, e := range parseErrs {
				printError(e.Error())
			}
			continue
		}

		if rerr := interpreter.Interpret(statements); rerr != nil {
			printError(rerr.Error())
		}
	}
}
