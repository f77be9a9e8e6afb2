// Package s3 provides Amazon S3 and DynamoDB implementations of
// storage.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/mnist"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = meta.Write(ctx, store, meta.DatasetMeta{"version": 1})
//
// Small records such as dataset metadata can live in DynamoDB instead:
//
//	store, err := s3.NewDynamo(ctx, "hub-meta", s3.WithPrefix("mnist"))
//
// Both are reachable by URL through Open:
//
//	store, err := s3.Open(ctx, "s3://my-bucket/datasets/mnist")
//	store, err := s3.Open(ctx, "dynamodb://hub-meta/mnist")
//
// # Features
//
//   - Uploads through the feature/s3/manager uploader (multipart for large values)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for LocalStack and other emulators
package s3
