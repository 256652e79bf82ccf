package main

import (
	"bufio"
	"encoding/hex"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"
	"unsafe"

	"github.com/morphym/fract"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2025 @morphym. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure = 0, 1

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu to standard error; program returns right after it. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "fractsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "FRACT · the hyperchaotic-lattice hashing algorithm.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-5t] [--quiet|no-codes] -|PATH..."+n,
		spaces, "[-5t] [--quiet|no-codes] -s STRING..."+n,
		spaces, "[-5] -c LIST..."+n,
		spaces, "bench [-5] [-i <uint>] [--size <uint>] [--chunked]"+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for fract: It handles various flags and an unlimited
// number of arguments, processing files as required by the command-line operator.
func program() int {
	if pHelp {
		help()
		return success
	}
	if NArg() > 0 && Arg(0) == "bench" {
		return bench()
	}
	bits := 256
	if p512 {
		bits = 512
	}

	if pCheck {
		if NArg() == 0 {
			Fprint(os.Stderr, purp, "--check requires at least one list argument.", zero, n)
			return failure
		}
		for _, target := range Args() {
			checkList(target, bits)
		}
		if warnings > 0 {
			return failure
		}
		return success
	}

	targets := Args()
	if len(targets) == 0 {
		targets = []string{"-"} /* No arguments: digest STDIN. */
	}

	digest := fract.NewHash(bits)
	for i, target := range targets {
		if i > 0 {
			digest.Reset()
		}
		start, delta, name := time.Now(), "", target

		if pString {
			/* hash.Hash does not implement (*Writer).WriteString. */
			if _, err := digest.Write(strToBytes(target)); err != nil {
				warn(err)
				continue
			}
			name = `"` + target + `"`
		} else if target == "-" || target == os.Stdin.Name() {
			if _, err := io.Copy(digest, os.Stdin); err != nil {
				warn(err)
				continue
			}
			name = "-"
		} else {
			file, err := os.Open(target)
			if err != nil {
				warn(err)
				continue
			}
			_, err = io.Copy(digest, file)
			go file.Close()
			if err != nil {
				warn(err)
				continue
			}
			if !pNoCodes {
				name = vainpath.Simplify(target)
			} else {
				name = filepath.Clean(target)
			}
		}

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		Print(star, yell, hex.EncodeToString(digest.Sum(nil)), zero)
		if pQuiet {
			os.Stdout.WriteString(n)
		} else {
			Print(`  `, und, name, zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// checkList verifies digests against a sha256sum-style list: one `<hex>  <name>` entry per line,
// blank lines and `#` comments skipped. Lines of 128 hex digits are verified in 512-bit mode
// regardless of flags.
func checkList(target string, bits int) {
	file, err := os.Open(target)
	if err != nil {
		warn(err)
		return
	}
	defer file.Close()

	scanner, line := bufio.NewScanner(file), 0
	for scanner.Scan() {
		line++
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		parts := strings.SplitN(entry, " ", 2)
		if len(parts) != 2 || parts[0] == "" {
			Fprint(os.Stderr, purp, target, ":", line, ": improperly formatted line", zero, n)
			continue
		}
		want := strings.ToLower(parts[0])
		name := strings.TrimPrefix(strings.TrimLeft(parts[1], " "), "*")

		size := bits
		if len(want) == 128 {
			size = 512
		} else if len(want) == 64 {
			size = 256
		}
		digest := fract.NewHash(size)

		subject, err := os.Open(name)
		if err != nil {
			Print(name, ": ", purp, "FAILED open or read", zero, n)
			warnings++
			continue
		}
		_, err = io.Copy(digest, subject)
		go subject.Close()
		if err != nil {
			Print(name, ": ", purp, "FAILED open or read", zero, n)
			warnings++
			continue
		}

		if hex.EncodeToString(digest.Sum(nil)) == want {
			if !pQuiet {
				Print(name, ": OK", n)
			}
		} else {
			Print(name, ": ", purp, "FAILED", zero, n)
			warnings++
		}
	}
	if err := scanner.Err(); err != nil {
		warn(err)
	}
}

// strToBytes converts any string into a byte slice without allocating memory; as discussed in
// https://stackoverflow.com/a/69231355, this practice is safe so long as the underlying memory is
// not modified during its lifetime.
func strToBytes(s string) []byte {
	const MaxInt32 = 1<<31 - 1
	return (*[MaxInt32]byte)(unsafe.Pointer((*reflect.StringHeader)(
		unsafe.Pointer(&s)).Data))[: len(s)&MaxInt32 : len(s)&MaxInt32]
}

func warn(err ...interface{}) {
	if !pQuiet {
		Fprint(os.Stderr, purp, Sprint(err...), zero, n)
	}
	warnings++
}
