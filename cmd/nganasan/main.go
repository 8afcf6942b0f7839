// Command nganasan analyzes Nganasan word forms from the command line.
//
// Words are taken from the arguments, or one per line from standard input
// when there are none.
//
//	nganasan [-pos noun|verb|pron|num] [-json] [-data paradigms.txt] [word ...]
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/cours-de-latin/nganasan"
	"github.com/cours-de-latin/nganasan/internal/frontend"
	"github.com/cours-de-latin/nganasan/internal/util"
)

type options struct {
	pos    nganasan.PartOfSpeech
	asJSON bool
}

func main() {
	posName := flag.String("pos", "", "analyze as this part of speech only (noun, verb, pron, num)")
	asJSON := flag.Bool("json", false, "print one JSON object per word")
	dataFile := flag.String("data", "", "paradigm data file (default: built-in tables)")
	flag.Parse()

	pos, err := frontend.ParsePOS(*posName)
	if err != nil {
		util.LogError(err)
		os.Exit(2)
	}

	var a *nganasan.Analyzer
	if *dataFile != "" {
		a, err = nganasan.NewFromFile(*dataFile)
	} else {
		a, err = nganasan.New()
	}
	if err != nil {
		util.LogError(errors.Wrap(err, "load paradigms"))
		os.Exit(1)
	}

	opts := options{pos: pos, asJSON: *asJSON}
	if flag.NArg() > 0 {
		for _, w := range flag.Args() {
			if err := analyzeWord(os.Stdout, a, w, opts); err != nil {
				util.LogError(err)
				os.Exit(1)
			}
		}
		return
	}
	if err := run(os.Stdin, os.Stdout, a, opts); err != nil {
		util.LogError(err)
		os.Exit(1)
	}
}

// run analyzes every non-empty line of r.
func run(r io.Reader, w io.Writer, a *nganasan.Analyzer, opts options) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if frontend.Clean(sc.Text()) == "" {
			continue
		}
		if err := analyzeWord(w, a, sc.Text(), opts); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "read input")
}

func analyzeWord(w io.Writer, a *nganasan.Analyzer, raw string, opts options) error {
	word := frontend.Clean(raw)
	res, err := frontend.SafeAnalyze(func() nganasan.Result {
		return a.AnalyzeAs(word, opts.pos)
	})
	if err != nil {
		util.LogBadf("analyze %q: %v", word, err)
		_, err = fmt.Fprintln(w, frontend.FormatFailure(word, err))
		return errors.Wrap(err, "write output")
	}
	if opts.asJSON {
		return errors.Wrap(json.NewEncoder(w).Encode(frontend.NewAnalysis(word, res)), "write output")
	}
	_, err = fmt.Fprintf(w, "%s\n\n", frontend.Format(word, res))
	return errors.Wrap(err, "write output")
}
