package storage

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStoreTableName = "coffeenet_store"

// storeItem is the single-table row: the prefixed key and the JSON blob.
type storeItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// DynamoStore backs the key/value contract with a single DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Each logical key is one row; the value is the serialized JSON document,
// exactly as the other backends store it.

type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = defaultStoreTableName
	}
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoStore) Get(ctx context.Context, key string, out any) (bool, error) {
	resp, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: KeyPrefix + key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, Failure(err)
	}
	if len(resp.Item) == 0 {
		return false, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(resp.Item, &it); err != nil {
		return false, Failure(err)
	}
	if err := json.Unmarshal([]byte(it.Value), out); err != nil {
		return false, Failure(err)
	}
	return true, nil
}

func (s *DynamoStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return Failure(err)
	}
	av, err := attributevalue.MarshalMap(storeItem{Key: KeyPrefix + key, Value: string(raw)})
	if err != nil {
		return Failure(err)
	}
	if _, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		return Failure(err)
	}
	return nil
}

func (s *DynamoStore) Remove(ctx context.Context, key string) error {
	if _, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: KeyPrefix + key},
		},
	}); err != nil {
		return Failure(err)
	}
	return nil
}

func (s *DynamoStore) Clear(ctx context.Context) error {
	out, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("begins_with(#key, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: KeyPrefix},
		},
	})
	if err != nil {
		return Failure(err)
	}
	for _, item := range out.Items {
		var it storeItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return Failure(err)
		}
		if _, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key: map[string]types.AttributeValue{
				"key": &types.AttributeValueMemberS{Value: it.Key},
			},
		}); err != nil {
			return Failure(err)
		}
	}
	return nil
}
