// runtime-inspect resolves every registered task run attribute against the
// process environment and prints the results, one per line. Extra attribute
// names may be passed as arguments; resolution errors are reported on stderr
// and switch the exit code to 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/execution-hub/runtime/taskrun"
)

func main() {
	verbose := flag.Bool("v", false, "log override application to stderr")
	flag.Parse()

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	resolver := taskrun.NewResolver(nil, logger)

	names := resolver.Names()
	for _, arg := range flag.Args() {
		names = append(names, taskrun.Attr(arg))
	}

	ctx := context.Background()
	exit := 0
	for _, attr := range names {
		val, err := resolver.Resolve(ctx, attr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", attr, err)
			exit = 1
			continue
		}
		fmt.Printf("%s=%v\n", attr, val)
	}
	os.Exit(exit)
}
