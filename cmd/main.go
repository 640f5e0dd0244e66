package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ian-shakespeare/hsasm/internal/features"
	"github.com/ian-shakespeare/hsasm/internal/logs"
	"github.com/ian-shakespeare/hsasm/internal/operands"
	"github.com/ian-shakespeare/hsasm/internal/syntax"
	"github.com/ian-shakespeare/hsasm/pkg/iterator"
	"github.com/peterh/liner"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

type configFlags []string

func (c *configFlags) String() string {
	return strings.Join(*c, ",")
}

func (c *configFlags) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: hsasm [flags] command [args]

commands:
  lex [FILE]              print the reduced tokens of every line
  scan [FILE]             print the flat tokens of every line
  symbols [FILE]          list label declarations
  def FILE LINE COLUMN    find the declaration of the symbol under the cursor
  sig LINE                show the operand forms of an instruction line
  complete FILE LINE COLUMN
                          list completions at the cursor
  repl                    inspect lines interactively

FILE defaults to standard input. LINE and COLUMN are 0-based.

flags:
`)
	flag.PrintDefaults()
}

func main() {
	var paths configFlags
	flag.Var(&paths, "config", "additional CUE configuration file, may be repeated")
	level := flag.String("log", "warn", "log level: debug, info, warn or error")
	flag.Usage = usage
	flag.Parse()

	l, err := logs.ParseLevel(*level)
	if err != nil {
		log.Fatal(err.Error())
	}
	logs.SetLevel(l)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	scope := dscope.New(new(features.Module)).Fork(
		func() features.ConfigPaths {
			return features.ConfigPaths(paths)
		},
	)

	scope.Call(func(
		f features.Features,
	) {
		if err := run(context.Background(), f, args[0], args[1:]); err != nil {
			log.Fatal(err.Error())
		}
	})
}

func run(ctx context.Context, f features.Features, command string, args []string) error {
	switch command {

	case "lex", "scan":
		document, err := readDocument(args, 0)
		if err != nil {
			return err
		}
		for lineNo, line := range iterator.Lines(document) {
			tokens, err := syntax.Scan(line, lineNo)
			if err != nil {
				fmt.Printf("%d: %v\n", lineNo, err)
			} else if command == "lex" {
				tokens = syntax.Reduce(tokens)
			}
			printTokens(tokens)
		}

	case "symbols":
		document, err := readDocument(args, 0)
		if err != nil {
			return err
		}
		for _, s := range f.DocumentSymbols(ctx, "", document) {
			fmt.Printf("%s\t%s\n", s.Location.Range, s.Name)
		}

	case "def":
		if len(args) != 3 {
			return errors.New("def: expected FILE LINE COLUMN")
		}
		document, err := readDocument(args, 0)
		if err != nil {
			return err
		}
		lineNo, column, err := parseCursor(args[1], args[2])
		if err != nil {
			return err
		}
		loc, ok := f.Definition(ctx, args[0], document, lineNo, column)
		if !ok {
			fmt.Println("no definition")
			return nil
		}
		fmt.Printf("%s:%s\n", loc.URI, loc.Range)

	case "sig":
		if len(args) != 1 {
			return errors.New("sig: expected LINE")
		}
		return printSignature(ctx, f, args[0])

	case "complete":
		if len(args) != 3 {
			return errors.New("complete: expected FILE LINE COLUMN")
		}
		document, err := readDocument(args, 0)
		if err != nil {
			return err
		}
		lineNo, column, err := parseCursor(args[1], args[2])
		if err != nil {
			return err
		}
		items, err := f.Complete(ctx, document, lineNo, column)
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%s\t%s\n", item.Label, item.Detail)
		}

	case "repl":
		return repl(ctx, f)

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func readDocument(args []string, i int) (string, error) {
	if len(args) <= i || args[i] == "-" {
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	content, err := os.ReadFile(args[i])
	return string(content), err
}

func parseCursor(line string, column string) (int, int, error) {
	l, err := strconv.Atoi(line)
	if err != nil {
		return 0, 0, fmt.Errorf("line: %w", err)
	}
	c, err := strconv.Atoi(column)
	if err != nil {
		return 0, 0, fmt.Errorf("column: %w", err)
	}
	return l, c, nil
}

func printTokens(tokens []syntax.Token) {
	for _, token := range tokens {
		fmt.Printf("%s\t%s\t%q\n", token.Range, token.Type, token.Text())
	}
}

func printSignature(ctx context.Context, f features.Features, line string) error {
	help, ok, err := f.SignatureHelp(ctx, line)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no signature")
		return nil
	}
	for i, sig := range help.Signatures {
		marker := " "
		if i == help.ActiveSignature {
			marker = "*"
		}
		fmt.Printf("%s %s\t%s\n", marker, sig.Label, sig.Doc)
		if i == help.ActiveSignature && help.ActiveParameter < len(sig.Parameters) {
			param := sig.Parameters[help.ActiveParameter]
			fmt.Printf("    %s: %s\n", param.Label, param.Doc)
		}
	}
	fmt.Printf("  %s form, %d separators, last %s\n",
		operands.Form(help.ActiveSignature), help.Analysis.Arguments, help.Analysis.Last)
	return nil
}

func inspect(ctx context.Context, f features.Features, input string) error {
	tokens, err := syntax.Scan(input, 0)
	if err != nil {
		fmt.Println(err)
	} else {
		tokens = syntax.Reduce(tokens)
	}
	printTokens(tokens)
	return printSignature(ctx, f, input)
}

func repl(ctx context.Context, f features.Features) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := inspect(ctx, f, scanner.Text()); err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("hsasm> ")
		if err != nil {
			switch err {
			case io.EOF, liner.ErrPromptAborted:
				return nil
			}
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if err := inspect(ctx, f, input); err != nil {
			return err
		}
	}
}
