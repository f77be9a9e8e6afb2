package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/hupe1980/hubgo/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_Get(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "datasets/mnist")

	t.Run("NotFound", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "datasets/mnist/missing.json"
		})).Return(nil, &types.NoSuchKey{}).Once()

		_, err := store.Get(context.Background(), "missing.json")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		var nf *storage.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "missing.json", nf.Key)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "datasets/mnist/dataset_meta.json"
		})).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader(`{"version":1}`)),
		}, nil).Once()

		v, err := store.Get(context.Background(), "dataset_meta.json")
		require.NoError(t, err)
		assert.Equal(t, `{"version":1}`, string(v))
	})

	t.Run("BackendError", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Key == "datasets/mnist/denied.json"
		})).Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"}).Once()

		_, err := store.Get(context.Background(), "denied.json")
		require.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("InvalidKey", func(t *testing.T) {
		_, err := store.Get(context.Background(), "../escape")
		assert.ErrorIs(t, err, storage.ErrInvalidKey)
	})

	mockClient.AssertExpectations(t)
}

func TestStore_Set(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix")

	var body []byte
	mockClient.On("PutObject", mock.Anything, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "prefix/dataset_meta.json"
	})).Run(func(args mock.Arguments) {
		input := args.Get(1).(*s3.PutObjectInput)
		body, _ = io.ReadAll(input.Body)
	}).Return(&s3.PutObjectOutput{}, nil).Once()

	err := store.Set(context.Background(), "dataset_meta.json", []byte(`{"tensors":[]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"tensors":[]}`, string(body))

	mockClient.AssertExpectations(t)
}

func TestStore_SetError(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "")

	mockClient.On("PutObject", mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled")).Once()

	err := store.Set(context.Background(), "k", []byte("v"))
	assert.Error(t, err)
}

func TestStore_Delete(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix")

	mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(input *s3.DeleteObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "prefix/del"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()
	mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(input *s3.DeleteObjectInput) bool {
		return *input.Key == "prefix/gone"
	})).Return(nil, &smithy.GenericAPIError{Code: "NotFound"}).Once()

	assert.NoError(t, store.Delete(context.Background(), "del"))
	assert.NoError(t, store.Delete(context.Background(), "gone"))
	mockClient.AssertExpectations(t)
}

func TestStore_List(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix/")
	assert.Equal(t, "prefix/", store.Prefix())

	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(input *s3.ListObjectsV2Input) bool {
		return *input.Bucket == "test-bucket" && *input.Prefix == "prefix/"
	})).Return(&s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("prefix/dataset_meta.json")},
			{Key: aws.String("prefix/images/tensor_meta.json")},
		},
	}, nil).Once()

	keys, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dataset_meta.json", "images/tensor_meta.json"}, keys)
}

func TestStore_List_Pagination(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix")

	// Page 1
	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(input *s3.ListObjectsV2Input) bool {
		return input.ContinuationToken == nil && *input.Prefix == "prefix/images/"
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("token"),
		Contents:              []types.Object{{Key: aws.String("prefix/images/b")}},
	}, nil).Once()

	// Page 2
	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(input *s3.ListObjectsV2Input) bool {
		return input.ContinuationToken != nil && *input.ContinuationToken == "token"
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated: aws.Bool(false),
		Contents:    []types.Object{{Key: aws.String("prefix/images/a")}},
	}, nil).Once()

	keys, err := store.List(context.Background(), "images/")
	require.NoError(t, err)
	assert.Equal(t, []string{"images/a", "images/b"}, keys)
	mockClient.AssertExpectations(t)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&types.NotFound{}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "SlowDown"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "", normalizePrefix(""))
	assert.Equal(t, "", normalizePrefix("/"))
	assert.Equal(t, "a/b/", normalizePrefix("/a/b/"))
	assert.Equal(t, "a/", normalizePrefix("a"))
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "gcs://bucket/x")
	assert.ErrorIs(t, err, storage.ErrUnsupportedScheme)

	_, err = Open(ctx, "s3:///x")
	assert.Error(t, err)
}
