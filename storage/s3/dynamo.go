package s3

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/hubgo/storage"
)

// DDBClient is the subset of the DynamoDB API used by DynamoStore.
// *dynamodb.Client satisfies it.
type DDBClient interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

const (
	attrKey   = "key"
	attrValue = "value"
)

// DynamoStore implements storage.Store on a DynamoDB table.
//
// Items are limited to 400KB, so DynamoStore suits small records such as
// dataset metadata. Reads are strongly consistent.
//
// Table schema:
//   - Partition key: key (string)
//   - Attribute: value (binary)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name hub-meta \
//	  --attribute-definitions AttributeName=key,AttributeType=S \
//	  --key-schema AttributeName=key,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type DynamoStore struct {
	client DDBClient
	table  string
	prefix string
}

// NewDynamoStore creates a new DynamoDB store.
// rootPrefix is prepended to all keys.
func NewDynamoStore(client DDBClient, table, rootPrefix string) *DynamoStore {
	return &DynamoStore{
		client: client,
		table:  table,
		prefix: normalizePrefix(rootPrefix),
	}
}

// NewDynamo creates a DynamoStore using the default AWS credential chain.
func NewDynamo(ctx context.Context, table string, opts ...Option) (*DynamoStore, error) {
	o := newOptions(opts)

	cfg, err := config.LoadDefaultConfig(ctx, o.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(do *dynamodb.Options) {
		if o.endpoint != "" {
			do.BaseEndpoint = aws.String(o.endpoint)
		}
	})

	return NewDynamoStore(client, table, o.prefix), nil
}

func (s *DynamoStore) key(name string) (map[string]types.AttributeValue, error) {
	cleaned, err := storage.CleanKey(name)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		attrKey: &types.AttributeValueMemberS{Value: s.prefix + cleaned},
	}, nil
}

// Get reads the item stored under key.
func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := s.key(key)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            k,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get item %q: %w", key, err)
	}
	if resp.Item == nil {
		return nil, &storage.NotFoundError{Key: key}
	}

	switch v := resp.Item[attrValue].(type) {
	case *types.AttributeValueMemberB:
		return v.Value, nil
	case nil:
		// DynamoDB drops empty binary attributes on some paths.
		return []byte{}, nil
	default:
		return nil, fmt.Errorf("item %q: invalid %s attribute type %T", key, attrValue, v)
	}
}

// Set writes value under key, replacing any previous item.
func (s *DynamoStore) Set(ctx context.Context, key string, value []byte) error {
	item, err := s.key(key)
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	item[attrValue] = &types.AttributeValueMemberB{Value: value}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put item %q: %w", key, err)
	}
	return nil
}

// Delete removes the item stored under key.
func (s *DynamoStore) Delete(ctx context.Context, key string) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}

	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       k,
	}); err != nil {
		return fmt.Errorf("delete item %q: %w", key, err)
	}
	return nil
}

// List scans the table for keys with the given prefix.
func (s *DynamoStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:            aws.String(s.table),
		FilterExpression:     aws.String("begins_with(#k, :p)"),
		ProjectionExpression: aws.String("#k"),
		ExpressionAttributeNames: map[string]string{
			"#k": attrKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: s.prefix + prefix},
		},
		ConsistentRead: aws.Bool(true),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		for _, item := range page.Items {
			k, ok := item[attrKey].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			if name := strings.TrimPrefix(k.Value, s.prefix); name != "" {
				keys = append(keys, name)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}
