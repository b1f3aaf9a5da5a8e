// Package minio implements blobstore.Store for MinIO and other
// S3-compatible object stores.
//
//	client, _ := minio.New("localhost:9000", &minio.Options{...})
//	store := miniostore.NewStore(client, "my-bucket", "snapshots/")
package minio
