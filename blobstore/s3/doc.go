// Package s3 implements blobstore.Store for Amazon S3.
//
// Uploads go through the aws-sdk-go-v2 transfer manager, which switches to
// concurrent multipart uploads for large snapshots automatically.
//
//	store, _ := s3.NewStoreFromDefaultConfig(ctx, "my-bucket", "snapshots/")
//	err := engine.SaveToStore(ctx, store, "index.snap")
package s3
