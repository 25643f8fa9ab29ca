package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/markkurossi/tabulate"

	"github.com/avdva/ufixed"
)

type result struct {
	value ufixed.Value
	flag  string
}

func main() {
	var (
		op = flag.String("op", "add", "add|sub|mul|div|neg|not|shl|shr|sar|trunc|align.")
		n  = flag.Int("n", 1, "Bit count for shl, shr, sar and trunc.")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: ufx -op add|sub|mul|div a b\n       ufx -op neg|not|align a\n       ufx -op shl|shr|sar|trunc -n N a\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	operands, err := parseOperands(flag.Args())
	if err != nil {
		fatalf("%v", err)
	}
	res, err := eval(strings.ToLower(*op), *n, operands)
	if err != nil {
		fatalf("%s: %v", *op, err)
	}
	printTable(os.Stdout, operands, res)
}

func parseOperands(args []string) ([]ufixed.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no operands")
	}
	operands := make([]ufixed.Value, 0, len(args))
	for _, arg := range args {
		v, err := ufixed.FromString(arg)
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", arg, err)
		}
		operands = append(operands, v)
	}
	return operands, nil
}

func eval(op string, n int, operands []ufixed.Value) (res result, err error) {
	binary := map[string]func(a, b ufixed.Value) (ufixed.Value, uint){
		"add": ufixed.Value.Add,
		"sub": ufixed.Value.Sub,
		"mul": ufixed.Value.Mul,
	}
	if f, found := binary[op]; found {
		if len(operands) != 2 {
			return res, fmt.Errorf("need 2 operands, got %d", len(operands))
		}
		v, carry := f(operands[0], operands[1])
		name := "carry"
		if op == "sub" {
			name = "borrow"
		}
		return result{value: v, flag: fmt.Sprintf("%s=%d", name, carry)}, nil
	}

	if op == "div" {
		if len(operands) != 2 {
			return res, fmt.Errorf("need 2 operands, got %d", len(operands))
		}
		v, err := operands[0].Div(operands[1])
		return result{value: v}, err
	}

	if len(operands) != 1 {
		return res, fmt.Errorf("need 1 operand, got %d", len(operands))
	}
	a := operands[0]
	// shifts panic on bad counts, report them as errors instead.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	switch op {
	case "neg":
		v, carry := a.ArithInvert()
		return result{value: v, flag: fmt.Sprintf("carry=%d", carry)}, nil
	case "not":
		return result{value: a.Not()}, nil
	case "shl":
		return result{value: a.LogicShiftLeft(n)}, nil
	case "shr":
		return result{value: a.LogicShiftRight(n)}, nil
	case "sar":
		return result{value: a.ArithShiftRight(n)}, nil
	case "trunc":
		return result{value: a.TruncateRight(n)}, nil
	case "align":
		v, shift := a.Align()
		return result{value: v, flag: fmt.Sprintf("shift=%d", shift)}, nil
	default:
		return res, fmt.Errorf("unknown operation")
	}
}

func printTable(w io.Writer, operands []ufixed.Value, res result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("").SetAlign(tabulate.ML)
	tab.Header("Decimal").SetAlign(tabulate.MR)
	tab.Header("Limbs").SetAlign(tabulate.MR)
	tab.Header("Float64").SetAlign(tabulate.MR)
	tab.Header("").SetAlign(tabulate.ML)

	for i, v := range operands {
		row := tab.Row()
		row.Column(string(rune('a' + i)))
		row.Column(v.Decimal().String())
		row.Column(v.String())
		row.Column(fmt.Sprintf("%v", v.Float64()))
		row.Column("")
	}
	row := tab.Row()
	row.Column("=").SetFormat(tabulate.FmtBold)
	row.Column(res.value.Decimal().String()).SetFormat(tabulate.FmtBold)
	row.Column(res.value.String()).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%v", res.value.Float64())).SetFormat(tabulate.FmtBold)
	row.Column(res.flag).SetFormat(tabulate.FmtItalic)

	tab.Print(w)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ufx: "+format+"\n", args...)
	os.Exit(1)
}
