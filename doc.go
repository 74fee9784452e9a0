// Package parzip creates ZIP archives, compressing entries in parallel.
//
// Entries are registered up front and compressed later: file, byte-slice,
// and reader entries queue a job, and [Archive.Compress] drains the queue
// across a pool of workers. Directory entries carry no content and resolve
// immediately. [Archive.WriteTo] serializes everything compressed so far,
// running a final compression pass first if entries are still queued.
//
// # Quick Start
//
// Build an archive from a mix of sources and write it to a file:
//
//	arc := parzip.New()
//	if err := arc.AddFile("testdata/report.pdf", "report.pdf"); err != nil {
//	    return err
//	}
//	if err := arc.AddDirectory("logs"); err != nil {
//	    return err
//	}
//	err := arc.AddFileFromBytes([]byte("hello\n"), "logs/hello.txt",
//	    parzip.WithCompressionLevel(parzip.CompressionLevelBest()),
//	)
//	if err != nil {
//	    return err
//	}
//
//	out, err := os.Create("bundle.zip")
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//	if _, err := arc.WriteTo(out); err != nil {
//	    return err
//	}
//
// # Compression
//
// Entries default to Deflate at a balanced level. Use [WithCompressionType]
// to store an entry uncompressed and [WithCompressionLevel] to trade speed
// for ratio. [Archive.CompressWithWorkers] controls parallelism explicitly;
// the default is one worker per available CPU.
package parzip
