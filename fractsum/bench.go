package main

import (
	"bytes"
	"encoding/hex"
	. "fmt"
	"runtime"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/morphym/fract"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/sha3"
)

// Copyright © 2025 @morphym. Licensed under the Apache-2.0 license.
/* The built-in timing harness behind `fractsum bench`: a flag-tunable primary run
with TSC-based cycle counts where the platform exposes them, followed by a
comparative sweep against established hashes. */

const chunkSize = 4096

func oneShot(data []byte, bits int, chunked bool) []byte {
	if !chunked {
		if bits == 512 {
			sum := fract.Sum512(data)
			return sum[:]
		}
		sum := fract.Sum256(data)
		return sum[:]
	}
	digest := fract.NewHash(bits)
	for len(data) > chunkSize {
		digest.Write(data[:chunkSize])
		data = data[chunkSize:]
	}
	digest.Write(data)
	return digest.Sum(nil)
}

func bench() int {
	size, iters, bits := int(pSize), int(pIter), 256
	if size < 1 {
		size = 1
	}
	if iters < 1 {
		iters = 1
	}
	if p512 {
		bits = 512
	}
	method := "single-pass"
	if pChunked {
		method = "chunked"
	}
	Printf("Running the fract bench on %d CPUs! %s/%s\n"+
		"Data size: %d bytes   Iterations: %d   Mode: %d-bit   Method: %s\n\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, size, iters, bits, method)

	data := bytes.Repeat([]byte{0x61}, size)
	for i := 10; i > 0; i-- {
		oneShot(data, bits, pChunked) /* Warmup */
	}

	var last []byte
	calltime := gotsc.TSCOverhead()
	tsc1 := gotsc.BenchStart()
	start := time.Now()
	for i := iters; i > 0; i-- {
		last = oneShot(data, bits, pChunked)
	}
	elapsed := time.Since(start)
	tsc2 := gotsc.BenchEnd()

	total := float64(size) * float64(iters)
	Printf("Total time:  %s\n", elapsed)
	Printf("Throughput:  %.2f MiB/s\n", total/elapsed.Seconds()/(1<<20))
	Printf("Latency:     %.2f ns/B\n", float64(elapsed.Nanoseconds())/total)
	if calltime > 0 && tsc2 > tsc1+calltime {
		Printf("Speed:       %.2f cpb\n", float64(tsc2-tsc1-calltime)/total)
	}
	Printf("Last digest: %s…\n\n", hex.EncodeToString(last[:8]))

	Println("Comparisons:")
	compare("github.com/morphym/fract", func(b *testing.B) {
		b.SetBytes(int64(size))
		for i := 0; i < b.N; i++ {
			oneShot(data, bits, pChunked)
		}
	})
	compare("github.com/minio/sha256-simd", func(b *testing.B) {
		b.SetBytes(int64(size))
		for i := 0; i < b.N; i++ {
			sha256.Sum256(data)
		}
	})
	compare("github.com/zeebo/blake3", func(b *testing.B) {
		b.SetBytes(int64(size))
		for i := 0; i < b.N; i++ {
			blake3.Sum256(data)
		}
	})
	compare("github.com/zeebo/xxh3", func(b *testing.B) {
		b.SetBytes(int64(size))
		for i := 0; i < b.N; i++ {
			xxh3.Hash(data)
		}
	})
	compare("golang.org/x/crypto/sha3", func(b *testing.B) {
		b.SetBytes(int64(size))
		for i := 0; i < b.N; i++ {
			k := sha3.NewLegacyKeccak256()
			k.Write(data)
			k.Sum(nil)
		}
	})
	return success
}

func compare(name string, fn func(b *testing.B)) {
	r := testing.Benchmark(fn)
	speed := float64(r.Bytes*int64(r.N)) / float64(r.T.Nanoseconds()) * 1e3
	Printf("%-30s %9.2f MB/s %12d B/op\n", name, speed, r.AllocedBytesPerOp())
}
