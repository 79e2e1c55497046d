package main

import (
	"flag"

	"github.com/plan-systems/klog"
)

func main() {

	verbosity := flag.String("v", "2", "cascade log verbosity (0 quiet, 2 per-criterion)")
	flag.Parse()

	flag.Set("logtostderr", "true")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", *verbosity)
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	// With no script argument, drop into the _pyonerel REPL.
	pathname := flag.Arg(0)
	go_gpython(pathname)

	klog.Flush()
}
