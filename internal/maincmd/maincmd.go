// Package maincmd is the command-line front-end (§6 "Command line"):
// external to the evaluator proper, it wires argument parsing, the
// embedded prelude, the file loader, and exit-code translation around a
// lang/machine.Machine.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/nublang/nub/internal/loader"
	"github.com/nublang/nub/internal/logx"
	"github.com/nublang/nub/internal/prelude"
	"github.com/nublang/nub/lang/machine"
)

const binName = "nub"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<source> [<arg>...]]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<source> [<arg>...]]
       %[1]s -h|--help
       %[1]s -v|--version

Interpreter for the %[1]s concatenative language. The embedded bootstrap
prelude always runs first, in the initial global environment, before
<source> or <arg> are consulted; with no <source> given, that prelude run
is the entire program.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --debug                   Start with the dispatch trace enabled.
`, binName)
)

// Cmd is the mainer.Parser target: flags are filled by reflection on the
// `flag:"..."` tags; positional arguments land in c.args via SetArgs.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	Debug   bool `flag:"debug"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}
func (c *Cmd) Validate() error                { return nil }

// Main parses args and runs the interpreter, returning the process exit
// code (§6 "Exit codes").
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	log := logx.New(stdio.Stderr, c.Debug)
	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	return c.run(ctx, stdio, log)
}

func (c *Cmd) run(ctx context.Context, stdio mainer.Stdio, log *logx.Logger) mainer.ExitCode {
	m := machine.NewMachine(loader.FS)
	m.Stdout = stdio.Stdout
	m.Stderr = stdio.Stderr
	m.Ctx = ctx
	m.Debug = c.Debug

	if err := m.RunSource(prelude.Source().Buf()); err != nil {
		return translateExit(err, log)
	}

	if len(c.args) == 0 {
		// Per §6: a build that ships an embedded prelude runs it
		// unconditionally and exits 0 when no source file is given.
		return mainer.Success
	}

	m.SetArgs(c.args[1:])
	log.Debugf("loading %s", c.args[0])
	src, err := loader.FS(c.args[0])
	if err != nil {
		log.Errorf("cannot open %q: %v", c.args[0], err)
		return mainer.Failure
	}
	if err := m.RunSource(src.Buf()); err != nil {
		return translateExit(err, log)
	}
	return mainer.Success
}

// translateExit maps an error unwound out of RunSource to an exit code
// (§6): an *machine.ExitError propagates its own code verbatim (this
// includes the code 1 that "." and "load" unwind with when given no
// argument or an unopenable file); any other error, such as a
// *machine.CancelError, is logged and exits 1.
func translateExit(err error, log *logx.Logger) mainer.ExitCode {
	if ee, ok := err.(*machine.ExitError); ok {
		return mainer.ExitCode(ee.Code)
	}
	log.Errorf("%s", err)
	return mainer.Failure
}
