/*
Flexdump lays out an HTML document with flexbox and prints the result.

Usage:

	flexdump [flags] [file.html]

The document is read from stdin if no file is given. Flags are:

	-width n     width of the viewport (default 80)
	-height n    height of the viewport, 0 for unlimited
	-css file    additional author style sheet
	-config file YAML configuration
	-tree        print the box tree instead of the picture
	-dot         print the box tree in GraphViz DOT format
	-trace lvl   trace level: error, info or debug

A configuration file may set up the flex container of the body,
overriding its styles:

	root:
	  direction: row
	  wrap: wrap
	  justify: space-between
	  padding: 1 2

Without -config, flexdump looks for a file flexdump.yaml or config.yaml in
the user's configuration directory (e.g. ~/.config/flexdump/).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/flexbox/box"
	"github.com/npillmayer/flexbox/box/boxdbg"
	"github.com/npillmayer/flexbox/style/cssom"
	"github.com/npillmayer/flexbox/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/net/html"
)

func tracer() tracing.Trace {
	return tracing.Select("flexbox.box")
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "flexdump: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("flexdump", flag.ContinueOnError)
	width := flags.Int("width", 80, "width of the viewport")
	height := flags.Int("height", 0, "height of the viewport, 0 for unlimited")
	cssFile := flags.String("css", "", "additional author style sheet")
	confFile := flags.String("config", "", "YAML configuration")
	tree := flags.Bool("tree", false, "print the box tree instead of the picture")
	dot := flags.Bool("dot", false, "print the box tree in GraphViz DOT format")
	level := flags.String("trace", "error", "trace level: error, info or debug")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *width < 0 || *height < 0 || *width > flexbox.MaxSize || *height > flexbox.MaxSize {
		return fmt.Errorf("viewport %d x %d out of range", *width, *height)
	}
	setupTracing(*level)
	//
	in := stdin
	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	doc, err := html.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}
	var author []cssom.StyleSheet
	if *cssFile != "" {
		text, err := os.ReadFile(*cssFile)
		if err != nil {
			return err
		}
		sheet, err := douceuradapter.ParseStyleSheet(string(text))
		if err != nil {
			return err
		}
		author = append(author, sheet)
	}
	root, err := box.Build(doc, nil, author...)
	if err != nil {
		return err
	}
	conf, err := loadConfig(*confFile)
	if err != nil {
		return err
	}
	if rootConf, err := conf.rootConfig(); err != nil {
		return err
	} else if rootConf != nil {
		root.SetConfig(*rootConf)
	}
	size := box.Layout(root, flexbox.NewSize(*width, *height))
	tracer().Infof("document laid out to %v", size)
	switch {
	case *dot:
		return boxdbg.ToGraphViz(root, stdout, nil)
	case *tree:
		_, err = fmt.Fprintln(stdout, box.Dump(root))
	default:
		_, err = fmt.Fprintln(stdout, box.Render(root))
	}
	return err
}

// setupTracing routes all tracers to the Go standard logger.
func setupTracing(level string) {
	adapter := func() tracing.Trace {
		t := gologadapter.New()
		t.SetTraceLevel(tracing.TraceLevelFromString(level))
		return t
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
}
