package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tangzhangming/lumo/internal/config"
	"github.com/tangzhangming/lumo/internal/i18n"
	"github.com/tangzhangming/lumo/internal/interp"
	"github.com/tangzhangming/lumo/internal/lexer"
	"github.com/tangzhangming/lumo/internal/parser"
)

// runCmd 运行 lumo 脚本文件
// 任何扫描/解析错误都会被逐条报告并抑制执行，进程退出码 65；
// 运行时错误报告后退出码 70
func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgRunOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgRunArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(64)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(64)
	}

	input := fs.Arg(0)

	// 查找并加载 lumo.toml 配置
	cfg, _, err := config.FindAndLoad(filepath.Dir(input))
	if err == nil && cfg.Lang != "" {
		i18n.SetLanguage(i18n.Language(cfg.Lang))
	}

	source, err := os.ReadFile(input)
	if err != nil {
		printError(i18n.T(i18n.ErrReadFile, input, err))
		os.Exit(1)
	}

	if *verbose {
		printInfo(i18n.T(i18n.MsgRunning))
	}

	tokens, scanErrs := lexer.Tokenize(string(source))
	statements, parseErrs := parser.New(tokens).Parse()

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		for _, e := range scanErrs {
			printError(e.Error())
		}
		for _, e := range parseErrs {
			printError(e.Error())
		}
		os.Exit(65)
	}

	interpreter := interp.New(os.Stdout)
	if rerr := interpreter.Interpret(statements); rerr != nil {
		printError(rerr.Error())
		os.Exit(70)
	}
}
