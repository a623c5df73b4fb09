// Package minio opens apfind input streams stored in MinIO or any other
// S3-compatible object store.
//
// Locations have the form minio://bucket/key; the endpoint is part of the
// client:
//
//	opener, _ := minio.New("localhost:9000", false)
//	mux.Handle("minio", opener)
//
// Credentials are read from MINIO_ACCESS_KEY/MINIO_SECRET_KEY, falling back
// to the AWS environment variables.
package minio
