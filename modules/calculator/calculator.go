package calculator

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"alfredflow/workflow"

	"github.com/expr-lang/expr"
	"github.com/leekchan/accounting"
)

const (
	calculatorUID   = "calculator"
	defaultIconPath = "https://img.icons8.com/badges/100/calculator.png"
)

// CalculatorModule evaluates the query as a math expression.
type CalculatorModule struct {
	iconPath string
	mathEnv  map[string]interface{}
}

func NewCalculatorModule(iconPath string) *CalculatorModule {
	if iconPath == "" {
		iconPath = defaultIconPath
	}
	return &CalculatorModule{
		iconPath: iconPath,
		mathEnv:  newMathEnv(),
	}
}

func newMathEnv() map[string]interface{} {
	deg := math.Pi / 180
	return map[string]interface{}{
		"pi":    math.Pi,
		"e":     math.E,
		"phi":   math.Phi,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"abs":   math.Abs,
		"log":   math.Log,
		"log10": math.Log10,
		"log2":  math.Log2,
		"logb":  func(x, base float64) float64 { return math.Log(x) / math.Log(base) },
		"exp":   math.Exp,
		"pow":   math.Pow,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"atan2": math.Atan2,
		"sind":  func(x float64) float64 { return math.Sin(x * deg) },
		"cosd":  func(x float64) float64 { return math.Cos(x * deg) },
		"tand":  func(x float64) float64 { return math.Tan(x * deg) },
		"asind": func(x float64) float64 { return math.Asin(x) / deg },
		"acosd": func(x float64) float64 { return math.Acos(x) / deg },
		"atand": func(x float64) float64 { return math.Atan(x) / deg },
		"ceil":  math.Ceil,
		"floor": math.Floor,
		"round": math.Round,
		"min":   math.Min,
		"max":   math.Max,
		"mod":   math.Mod,
		"fact":  factorial,
	}
}

func factorial(n int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("factorial undefined for negative")
	case n > 20:
		return 0, fmt.Errorf("factorial too large")
	}
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}
	return res, nil
}

func (m *CalculatorModule) Name() string {
	return "Calculator"
}

func (m *CalculatorModule) DefaultIconPath() string {
	return m.iconPath
}

var (
	numberRegex   = regexp.MustCompile(`[0-9]+(?:[ \x{00A0}]?[0-9]+|[,.][0-9]+)*`)
	thousandsTail = regexp.MustCompile(`^[0-9]{3}$`)
)

// normalizeNumber rewrites a locale-formatted number ("1 234,5", "1,234.5",
// "1.234,5") into the dotted form expr parses.
func normalizeNumber(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00A0' {
			return -1
		}
		return r
	}, s)

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot != -1 && comma != -1 && comma > dot:
		// 1.234,5
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	case dot != -1 && comma != -1:
		// 1,234.5
		return strings.ReplaceAll(s, ",", "")
	case comma == -1:
		return s
	}

	parts := strings.Split(s, ",")
	if len(parts) == 2 && !thousandsTail.MatchString(parts[1]) {
		// 1,5
		return parts[0] + "." + parts[1]
	}
	// 1,234 and 1,234,567
	return strings.ReplaceAll(s, ",", "")
}

func preprocessQuery(query string) string {
	processed := strings.ReplaceAll(query, "%", "/100.0")
	inCall := callArgs(processed)

	var b strings.Builder
	last := 0
	for _, loc := range numberRegex.FindAllStringIndex(processed, -1) {
		b.WriteString(processed[last:loc[0]])
		number := processed[loc[0]:loc[1]]
		if inCall[loc[0]] {
			// max(1,2): commas separate arguments.
			parts := strings.Split(number, ",")
			for i, p := range parts {
				parts[i] = normalizeNumber(p)
			}
			number = strings.Join(parts, ",")
		} else {
			number = normalizeNumber(number)
		}
		b.WriteString(number)
		last = loc[1]
	}
	b.WriteString(processed[last:])
	return b.String()
}

// callArgs marks the byte positions that lie directly inside the argument
// list of a function call such as max(...), as opposed to a plain group.
func callArgs(s string) []bool {
	marks := make([]bool, len(s))
	var stack []bool
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			stack = append(stack, i > 0 && isIdentByte(s[i-1]))
		case ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		marks[i] = len(stack) > 0 && stack[len(stack)-1]
	}
	return marks
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func (m *CalculatorModule) ProcessQuery(ctx context.Context, query string, wf *workflow.Workflow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	processed := preprocessQuery(trimmed)

	program, err := expr.Compile(processed, expr.Env(m.mathEnv))
	if err != nil {
		return nil
	}

	output, err := expr.Run(program, m.mathEnv)
	if err != nil {
		return nil
	}

	resultStr, grouped, ok := formatResult(output)
	if !ok {
		return nil
	}

	wf.Result().
		UID(calculatorUID).
		Title(resultStr).
		Subtitle(fmt.Sprintf("Result for: %s", trimmed)).
		Arg(resultStr).
		Autocomplete(resultStr).
		Icon(m.DefaultIconPath()).
		Copy(resultStr).
		LargeType(grouped).
		Cmd(fmt.Sprintf("Copy %s", grouped), grouped)

	return nil
}

// formatResult returns the plain and the thousands-grouped form of an
// evaluation result.
func formatResult(output interface{}) (plain, grouped string, ok bool) {
	switch v := output.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", "", false
		}
		plain = strconv.FormatFloat(v, 'f', 8, 64)
		plain = strings.TrimRight(plain, "0")
		plain = strings.TrimRight(plain, ".")
		return plain, group(v, decimals(plain)), true
	case int:
		return strconv.Itoa(v), group(float64(v), 0), true
	case int64:
		return strconv.FormatInt(v, 10), group(float64(v), 0), true
	case bool:
		s := strconv.FormatBool(v)
		return s, s, true
	default:
		return "", "", false
	}
}

func decimals(s string) int {
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		return len(s) - idx - 1
	}
	return 0
}

func group(v float64, precision int) string {
	ac := accounting.Accounting{
		Symbol:    "",
		Precision: precision,
		Thousand:  ",",
		Decimal:   ".",
	}
	return ac.FormatMoneyFloat64(v)
}
