// Package source provides the input side of apfind: readers that turn a byte
// stream into a sequence of unsigned integers, and openers that resolve an
// input location to a byte stream.
//
// # Locations
//
//	-                    standard input
//	path/to/file         local file (also file://path/to/file)
//	s3://bucket/key      Amazon S3 (see package source/s3)
//	minio://bucket/key   MinIO or any S3-compatible store (see package source/minio)
//
// Every opened stream is sniffed for a compression frame (gzip, zstd, lz4)
// and transparently decompressed. Throttle paces a stream to a read limit.
//
// # Line Format
//
// One integer per line, in any base strconv.ParseUint accepts with base 0:
// decimal, 0x hexadecimal, 0o or leading-zero octal, 0b binary. Surrounding
// whitespace is ignored and blank lines are skipped. Anything else is a
// *SyntaxError.
package source
