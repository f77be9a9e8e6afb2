// Package minio provides a storage.Store implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library and works with other
// S3-compatible systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := miniostore.NewStore(client, "datasets", "mnist")
//	err = meta.Write(ctx, store, meta.DatasetMeta{"version": 1})
//
// # URLs
//
// Open accepts "minio://endpoint/bucket/prefix" (plain HTTP) and
// "minios://endpoint/bucket/prefix" (TLS). Credentials are read from
// MINIO_ROOT_USER/MINIO_ROOT_PASSWORD or the AWS_* environment variables.
package minio
