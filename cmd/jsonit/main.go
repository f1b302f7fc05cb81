package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/childe/jsonit/codec"
	"github.com/childe/jsonit/internal/config"
	"github.com/childe/jsonit/internal/signal"
	"k8s.io/klog/v2"
)

var options = &struct {
	config string
	input  string
	debug  bool
	times  bool
	watch  bool
}{}

var gitCommit string

func init() {
	klog.InitFlags(nil)

	flag.StringVar(&options.config, "config", "", "path to settings file (yaml), http(s) urls are fetched")
	flag.StringVar(&options.input, "input", "-", "document to encode, yaml or json. - reads stdin")
	flag.BoolVar(&options.debug, "debug", false, "indent output, overrides the settings file")
	flag.BoolVar(&options.times, "times", false, "encode ISO-8601 strings through the datetime rule")
	flag.BoolVar(&options.watch, "watch", false, "encode again each time the input file changes")
}

// flagSet reports whether name was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// exit logs, flushes klog and ends the process with status 1.
func exit(format string, args ...any) {
	klog.Errorf(format, args...)
	klog.Flush()
	os.Exit(1)
}

func main() {
	flag.Parse()
	defer klog.Flush()

	klog.V(1).Infof("jsonit build %s", gitCommit)

	settings, err := config.LoadSettings(options.config)
	if err != nil {
		exit("load settings: %v", err)
	}
	if flagSet("debug") {
		settings.Debug = options.debug
	}
	if options.watch && options.input == "-" {
		exit("-watch needs a file as input")
	}

	r := &renderer{
		settings: settings,
		times:    options.times,
		out:      os.Stdout,
	}
	if err := r.render(options.input); err != nil {
		exit("encode %s: %v", options.input, err)
	}

	if !options.watch {
		return
	}
	refresh := func() {
		if err := r.render(options.input); err != nil {
			klog.Errorf("encode %s: %v", options.input, err)
		}
	}
	if err := config.WatchFile(options.input, refresh); err != nil {
		exit("watch %s: %v", options.input, err)
	}
	sig := signal.Wait(refresh)
	klog.Infof("stop watching %s on %v", options.input, sig)
}

type renderer struct {
	lock     sync.Mutex
	settings *config.Settings
	times    bool
	out      io.Writer
}

func (r *renderer) render(input string) error {
	doc, err := readDocument(input)
	if err != nil {
		return err
	}
	if r.times {
		doc = parseTimes(doc)
	}
	text, err := codec.Encode(doc, r.settings.Debug)
	if err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err = fmt.Fprintln(r.out, text)
	return err
}
