package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/font/mathfont"
	"github.com/npillmayer/mathmetrics/core/font/mathfont/texfont"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/mathmetrics/core/font/variants"
	"github.com/npillmayer/mathmetrics/core/parameters"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mathmetrics.cli'
func tracer() tracing.Trace {
	return tracing.Select("mathmetrics.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	size := flag.String("size", "10pt", "Default font size")
	smp := flag.Bool("smp", false, "Map letters to Mathematical Alphanumeric Symbols")
	flag.Parse()

	// set up logging and configuration
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":              "go",
		"trace.mathmetrics.cli":        *tlevel,
		"trace.mathmetrics.font":       *tlevel,
		"trace.mathmetrics.variants":   "Error",
		"trace.mathmetrics.delimiters": "Error",
		mathfont.ConfigFontSize:        *size,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)

	pterm.Info.Println("Welcome to the math font metrics CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("mf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	var opts []mathfont.Option
	if *smp {
		opts = append(opts, mathfont.WithMathAlphanumerics())
	}
	if intp.font, err = texfont.New(opts...); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	pterm.Printfln("font has %d variants and %d delimiters, default size is %s",
		len(intp.font.VariantNames("")), len(intp.font.DelimiterCodes()), mathfont.DefaultSize())
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or 'quit', 'help' lists the commands")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font *mathfont.Font
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line of the form "op:arg:arg…".
type Command struct {
	code int
	args []string
}

const (
	QUIT int = iota
	HELP
	CHAR
	SCALED
	DELIM
	SIZE
	STRETCH
	PARAM
	VARIANTS
	MATCH
	DUMP
)

var commands = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"char":     CHAR,
	"scaled":   SCALED,
	"delim":    DELIM,
	"size":     SIZE,
	"stretch":  STRETCH,
	"param":    PARAM,
	"params":   PARAM,
	"variants": VARIANTS,
	"match":    MATCH,
	"dump":     DUMP,
}

// argument count per command
var arity = map[int]int{
	CHAR:    2,
	SCALED:  2,
	DELIM:   1,
	SIZE:    2,
	STRETCH: 2,
	MATCH:   2,
	DUMP:    1,
}

func parseCommand(line string) (*Command, error) {
	c := strings.Split(line, ":") // e.g. "char:bold:0x41" or "size:(:2"
	tracer().Debugf("parse command = %v", c)
	code, ok := commands[strings.ToLower(c[0])]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, try 'help'", c[0])
	}
	cmd := &Command{code: code, args: c[1:]}
	if n, ok := arity[code]; ok && len(cmd.args) < n {
		return nil, fmt.Errorf("%s needs %d arguments", c[0], n)
	}
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	f := intp.font
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(getOptArg(cmd.args, 0))
	case CHAR, SCALED:
		code, err := parseCode(cmd.args[1])
		if err != nil {
			return false, err
		}
		if cmd.code == SCALED {
			size := mathfont.DefaultSize()
			h, d, w, err := f.CharScaled(cmd.args[0], code, size)
			if err != nil {
				return false, err
			}
			box, adv, err := f.CharBounds(cmd.args[0], code, size)
			if err != nil {
				return false, err
			}
			pterm.Printfln("%s in %s at %s: height %s, depth %s, width %s",
				variants.CharName(code), cmd.args[0], size, h, d, w)
			pterm.Printfln("pixel bounds %v, advance %v", box, adv)
			return false, nil
		}
		c, ok, err := f.Char(cmd.args[0], code)
		if err != nil {
			return false, err
		}
		if !ok {
			pterm.Printfln("%s is not defined in %s", variants.CharName(code), cmd.args[0])
			return false, nil
		}
		v, _ := f.Variant(cmd.args[0])
		pterm.Printfln("%s = %s", variants.CharName(code), c)
		pterm.Printfln("fallback chain: %v", v.Chain())
	case DELIM:
		code, err := parseCode(cmd.args[0])
		if err != nil {
			return false, err
		}
		d, ok := f.Delimiter(code)
		if !ok {
			return false, core.Error(core.EMISSING, "delimiter U+%04X is not registered", code)
		}
		pterm.Printfln("delimiter %s: direction %s, %d sizes, stretchy = %v",
			variants.CharName(code), d.Dir, len(d.Sizes), d.IsStretchy())
		for i := range d.Sizes {
			v, c, m, err := f.SizeGlyph(code, i)
			if err != nil {
				return false, err
			}
			pterm.Printfln("  size %d (%.3fem): U+%04X from %-12s %s", i, d.Sizes[i], c, v, m)
		}
	case SIZE:
		code, err := parseCode(cmd.args[0])
		if err != nil {
			return false, err
		}
		i, err := strconv.Atoi(cmd.args[1])
		if err != nil {
			return false, core.Error(core.EINVALID, "size step not numeric: %v", cmd.args[1])
		}
		name, err := f.SizeVariant(code, i)
		if err != nil {
			return false, err
		}
		pterm.Printfln("size %d of U+%04X comes from %s", i, code, name)
	case STRETCH:
		code, err := parseCode(cmd.args[0])
		if err != nil {
			return false, err
		}
		p, err := parsePart(cmd.args[1])
		if err != nil {
			return false, err
		}
		name, err := f.StretchVariant(code, p)
		if err != nil {
			return false, err
		}
		d, _ := f.Delimiter(code)
		if part := d.Part(p); part != 0 {
			pterm.Printfln("%s of U+%04X is U+%04X from %s", p, code, part, name)
		} else {
			pterm.Printfln("U+%04X has no %s part", code, p)
		}
	case PARAM:
		return false, intp.showParams(getOptArg(cmd.args, 0))
	case VARIANTS:
		for _, name := range f.VariantNames(getOptArg(cmd.args, 0)) {
			v, _ := f.Variant(name)
			pterm.Printfln("%-24s %v", name, v.Chain())
		}
	case MATCH:
		style, weight := variants.StyleAndWeight(cmd.args[0] + "-" + cmd.args[1])
		matches := f.MatchVariants(style, weight)
		pterm.Printfln("variants with style %s and weight %s: %v", cmd.args[0], cmd.args[1], matches)
	case DUMP:
		v, ok := f.Variant(cmd.args[0])
		if !ok {
			return false, core.Error(core.EMISSING, "variant %q is not registered", cmd.args[0])
		}
		for _, code := range v.Codes() {
			c, _ := v.Lookup(code)
			pterm.Printfln("  U+%04X %-32s %s", code, variants.CharName(code), c)
		}
	}
	return false, nil
}

func (intp *Intp) showParams(name string) error {
	ps := intp.font.Params()
	if name != "" {
		v, err := ps.Value(name)
		if err != nil {
			return err
		}
		pterm.Printfln("%s = %g", name, v)
		return nil
	}
	for _, n := range parameters.Names() {
		v, _ := ps.Value(n)
		pterm.Printfln("%-32s %g", n, v)
	}
	return nil
}

// parseCode accepts "0x41", "U+0041", "65" or a single character.
func parseCode(s string) (rune, error) {
	if utf8.RuneCountInString(s) == 1 && (s[0] < '0' || s[0] > '9') {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	s = strings.TrimPrefix(strings.ToUpper(s), "U+")
	base := 16
	if strings.HasPrefix(s, "0X") {
		s = s[2:]
	} else if _, err := strconv.Atoi(s); err == nil && len(s) < 4 {
		base = 10
	}
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, core.Error(core.EINVALID, "not a character code: %q", s)
	}
	return rune(n), nil
}

func parsePart(s string) (metrics.Part, error) {
	switch strings.ToLower(s) {
	case "begin", "top", "left":
		return metrics.Begin, nil
	case "ext", "extender":
		return metrics.Extender, nil
	case "end", "bottom", "right":
		return metrics.End, nil
	case "mid", "middle":
		return metrics.Middle, nil
	}
	return 0, errors.New("part must be one of begin, ext, end, mid")
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "variants", "variant":
		pterm.Info.Println("Variants")
		pterm.Println(`
	A character is looked up in a variant's own table, then in the table
	of the variant it links to, then along its inherit chain:

	    bold-italic  ->  [bold]  ->  italic  ->  normal

	Linked tables are snapshots taken at creation, which are kept up to
	date when characters are defined for the linked variant.
	`)
	case "delim", "delimiters", "size":
		pterm.Info.Println("Delimiters")
		pterm.Println(`
	Size step i of a delimiter is drawn from size variant i, unless the
	delimiter lists its own variant indices. Parts of an assembly come
	from the stretch variants.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	char:<variant>:<code>      metrics of a character
	scaled:<variant>:<code>    metrics and pixel bounds at the default font size
	delim:<code>               delimiter entry and its size glyphs
	size:<code>:<i>            size variant of size step i
	stretch:<code>:<part>      stretch variant of part begin|ext|end|mid
	param[:<name>]             math parameters
	variants[:<prefix>]        variants and their fallback chains
	match:<style>:<weight>     variants of a style and weight
	dump:<variant>             all characters visible in a variant
	help[:variants|delim]      this help
	quit
	`)
	}
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
