// Package s3 opens apfind input streams stored in Amazon S3.
//
// Locations have the form s3://bucket/key:
//
//	opener, _ := s3.NewFromConfig(ctx)
//	mux := source.NewMux()
//	mux.Handle("s3", opener)
//	rc, _ := mux.Open(ctx, "s3://my-bucket/numbers.txt.zst")
//
// Credentials and region come from the default AWS configuration chain.
package s3
