package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultTableName = "processed_events"

// API is the part of the DynamoDB client the ledger uses.
type API interface {
	GetItem(ctx context.Context, in *awsdynamodb.GetItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *awsdynamodb.PutItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.PutItemOutput, error)
	CreateTable(ctx context.Context, in *awsdynamodb.CreateTableInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.CreateTableOutput, error)
}

type processedEventItem struct {
	EventID     string `dynamodbav:"event_id"`
	Consumer    string `dynamodbav:"consumer"`
	EventType   string `dynamodbav:"event_type"`
	ProcessedAt string `dynamodbav:"processed_at"`
}

// ProcessedEventLedger implements ports.ProcessedEventLedger. Writes are not
// part of any database transaction; the unit of work defers them until its
// commit succeeded.
type ProcessedEventLedger struct {
	api       API
	tableName string
	clock     func() time.Time
}

var _ ports.ProcessedEventLedger = (*ProcessedEventLedger)(nil)

func NewProcessedEventLedger(api API, tableName string) *ProcessedEventLedger {
	if tableName == "" {
		tableName = DefaultTableName
	}
	return &ProcessedEventLedger{
		api:       api,
		tableName: tableName,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func (l *ProcessedEventLedger) IsProcessed(ctx context.Context, eventID kernel.UUID, consumer string) (bool, error) {
	out, err := l.api.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName:      aws.String(l.tableName),
		Key:            key(eventID, consumer),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("dynamodb: get processed event: %w", err)
	}
	return len(out.Item) > 0, nil
}

// RecordProcessed stores the entry once. Recording an entry that already
// exists succeeds.
func (l *ProcessedEventLedger) RecordProcessed(
	ctx context.Context,
	eventID kernel.UUID,
	eventType event.Name,
	consumer string,
) error {
	av, err := attributevalue.MarshalMap(processedEventItem{
		EventID:     eventID.String(),
		Consumer:    consumer,
		EventType:   eventType.String(),
		ProcessedAt: l.clock().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = l.api.PutItem(ctx, &awsdynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#event_id)"),
		ExpressionAttributeNames: map[string]string{
			"#event_id": "event_id",
		},
	})
	var exists *types.ConditionalCheckFailedException
	if errors.As(err, &exists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("dynamodb: put processed event: %w", err)
	}
	return nil
}

// EnsureTable creates the ledger table with on-demand billing unless it
// already exists.
func (l *ProcessedEventLedger) EnsureTable(ctx context.Context) error {
	_, err := l.api.CreateTable(ctx, &awsdynamodb.CreateTableInput{
		TableName: aws.String(l.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("event_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("consumer"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("event_id"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("consumer"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	return err
}

func key(eventID kernel.UUID, consumer string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"event_id": &types.AttributeValueMemberS{Value: eventID.String()},
		"consumer": &types.AttributeValueMemberS{Value: consumer},
	}
}
