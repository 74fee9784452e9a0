package parzip

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"testing"
)

var benchSinkInt64 int64

type benchPattern string

const (
	benchPatternCompressible benchPattern = "compressible"
	benchPatternRandom       benchPattern = "random"
)

func makeBenchContents(fileCount, fileSize int, pattern benchPattern) [][]byte {
	rng := rand.New(rand.NewSource(1))
	contents := make([][]byte, fileCount)
	for i := range contents {
		content := make([]byte, fileSize)
		switch pattern {
		case benchPatternRandom:
			rng.Read(content)
		default:
			fillByte := byte('a' + (i % 26))
			for j := range content {
				content[j] = fillByte
			}
			if len(content) > 0 {
				content[0] = byte(i)
			}
		}
		contents[i] = content
	}
	return contents
}

func BenchmarkCompress(b *testing.B) {
	cases := []struct {
		name      string
		fileCount int
		fileSize  int
		level     CompressionLevel
		pattern   benchPattern
	}{
		{
			name:      "files=128/size=16k/balanced/compressible",
			fileCount: 128,
			fileSize:  16 << 10,
			level:     CompressionLevelBalanced(),
			pattern:   benchPatternCompressible,
		},
		{
			name:      "files=128/size=16k/balanced/random",
			fileCount: 128,
			fileSize:  16 << 10,
			level:     CompressionLevelBalanced(),
			pattern:   benchPatternRandom,
		},
		{
			name:      "files=128/size=16k/fast/compressible",
			fileCount: 128,
			fileSize:  16 << 10,
			level:     CompressionLevelFast(),
			pattern:   benchPatternCompressible,
		},
		{
			name:      "files=32/size=256k/best/compressible",
			fileCount: 32,
			fileSize:  256 << 10,
			level:     CompressionLevelBest(),
			pattern:   benchPatternCompressible,
		},
	}

	workerRuns := []struct {
		label   string
		workers int
	}{
		{label: "serial", workers: 1},
		{label: "parallel", workers: runtime.GOMAXPROCS(0)},
	}

	for _, bc := range cases {
		contents := makeBenchContents(bc.fileCount, bc.fileSize, bc.pattern)
		for _, wr := range workerRuns {
			b.Run(fmt.Sprintf("%s/%s", wr.label, bc.name), func(b *testing.B) {
				b.SetBytes(int64(bc.fileCount * bc.fileSize))
				b.ReportAllocs()
				b.ResetTimer()
				for b.Loop() {
					b.StopTimer()
					arc := New()
					for i, content := range contents {
						if err := arc.AddFileFromBytes(content, fmt.Sprintf("file%05d.dat", i),
							WithCompressionLevel(bc.level),
						); err != nil {
							b.Fatal(err)
						}
					}
					b.StartTimer()

					if err := arc.CompressWithWorkers(wr.workers); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkWriteTo(b *testing.B) {
	cases := []struct {
		name      string
		fileCount int
		fileSize  int
		method    CompressionType
	}{
		{name: "files=128/size=16k/stored", fileCount: 128, fileSize: 16 << 10, method: Stored},
		{name: "files=1024/size=4k/stored", fileCount: 1024, fileSize: 4 << 10, method: Stored},
	}

	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			contents := makeBenchContents(bc.fileCount, bc.fileSize, benchPatternCompressible)

			b.SetBytes(int64(bc.fileCount * bc.fileSize))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				b.StopTimer()
				arc := New()
				for i, content := range contents {
					if err := arc.AddFileFromBytes(content, fmt.Sprintf("file%05d.dat", i),
						WithCompressionType(bc.method),
					); err != nil {
						b.Fatal(err)
					}
				}
				if err := arc.Compress(); err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				n, err := arc.WriteTo(io.Discard)
				if err != nil {
					b.Fatal(err)
				}
				benchSinkInt64 = n
			}
		})
	}
}
