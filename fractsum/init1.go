package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2025 @morphym. Licensed under the Apache-2.0 license.

var pSize, pIter = uint(0), uint(0)
var pNoCodesDefault = false
var pHelp, p512, pCheck, pChunked, pNoCodes, pQuiet, pString, pTime bool
var star, yell, purp, und, zero = "", "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&p512, "512", "5", false,
		purp+"emit 512-bit digests"+zero+" (default 256-bit)")

	BoolVarP(&pCheck, "check", "c", false,
		purp+"read digest lists from the given files and verify them"+zero)

	BoolVar(&pChunked, "chunked", false,
		purp+"bench: feed the input in 4KiB chunks through the"+zero+
			n+purp+"streaming interface"+zero)

	UintVarP(&pIter, "iter", "i", 100,
		purp+"bench: number of timed iterations"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	UintVar(&pSize, "size", 1<<20,
		purp+"bench: input size in bytes"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
