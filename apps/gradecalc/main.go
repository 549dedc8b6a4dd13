package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/school"
	"github.com/trezcool/gradecalc/services/logger"
	"github.com/trezcool/gradecalc/storage/database/inmem"
)

var (
	logger  *log.Logger
	restore = func() {}
)

func main() {
	logger = log.New(os.Stderr, "GRADECALC : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// set up grading & registry
	calc, err := school.NewCalculatorFromConfig(conf)
	errAndDie(err)
	db, err := inmemdb.Open()
	errAndDie(err)

	var out, logOut io.Writer = os.Stdout, os.Stderr
	var in lineReader = newScanReader(os.Stdin, os.Stdout)

	// line editing when the menu runs on a terminal
	fd := int(os.Stdin.Fd())
	if len(os.Args) > 1 && os.Args[1] == "menu" && term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		errAndDie(err)
		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, "")
		out, logOut = t, t
		in = &termReader{t: t}
		restore = func() { _ = term.Restore(fd, oldState) }
		defer restore()
	}

	var appLogger core.Logger = logsvc.NewDiscardLogger()
	if conf.Debug {
		appLogger = logsvc.NewStdLogger(logOut, "GRADECALC : ", true)
	}
	svc := school.NewService(inmemdb.NewRepository(db), calc, appLogger)

	if conf.LoadSampleData {
		errAndDie(school.SeedSampleData(context.Background(), svc))
		_, _ = fmt.Fprint(out, "Sample data loaded successfully!\n\n")
	}

	// start CLI
	cli := commandLine{svc: svc, out: out, in: in}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			_, _ = fmt.Fprintf(out, "\nerror: %s\n", err)
		}
		restore()
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		restore()
		logger.Fatal(err)
	}
}
