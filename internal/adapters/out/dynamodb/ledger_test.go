package dynamodb_test

import (
	"context"
	"errors"
	"testing"

	"automfg/internal/adapters/out/dynamodb"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAPI struct{ mock.Mock }

func (m *MockAPI) GetItem(
	ctx context.Context,
	in *awsdynamodb.GetItemInput,
	_ ...func(*awsdynamodb.Options),
) (*awsdynamodb.GetItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*awsdynamodb.GetItemOutput)
	return out, args.Error(1)
}

func (m *MockAPI) PutItem(
	ctx context.Context,
	in *awsdynamodb.PutItemInput,
	_ ...func(*awsdynamodb.Options),
) (*awsdynamodb.PutItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*awsdynamodb.PutItemOutput)
	return out, args.Error(1)
}

func (m *MockAPI) CreateTable(
	ctx context.Context,
	in *awsdynamodb.CreateTableInput,
	_ ...func(*awsdynamodb.Options),
) (*awsdynamodb.CreateTableOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*awsdynamodb.CreateTableOutput)
	return out, args.Error(1)
}

const consumer = "production-order-intake"

func stringAttr(t *testing.T, item map[string]types.AttributeValue, name string) string {
	t.Helper()
	attr, ok := item[name].(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %s", name)
	return attr.Value
}

func TestProcessedEventLedger_IsProcessed(t *testing.T) {
	ctx := t.Context()
	eventID := kernel.NewUUID()
	keyMatches := mock.MatchedBy(func(in *awsdynamodb.GetItemInput) bool {
		id, _ := in.Key["event_id"].(*types.AttributeValueMemberS)
		c, _ := in.Key["consumer"].(*types.AttributeValueMemberS)
		return aws.ToString(in.TableName) == "ledger" &&
			aws.ToBool(in.ConsistentRead) &&
			id != nil && id.Value == eventID.String() &&
			c != nil && c.Value == consumer
	})

	api := new(MockAPI)
	api.On("GetItem", ctx, keyMatches).Return(&awsdynamodb.GetItemOutput{}, nil).Once()
	api.On("GetItem", ctx, keyMatches).Return(&awsdynamodb.GetItemOutput{
		Item: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID.String()},
		},
	}, nil).Once()
	ledger := dynamodb.NewProcessedEventLedger(api, "ledger")

	processed, err := ledger.IsProcessed(ctx, eventID, consumer)
	require.NoError(t, err)
	assert.False(t, processed)

	processed, err = ledger.IsProcessed(ctx, eventID, consumer)
	require.NoError(t, err)
	assert.True(t, processed)
	api.AssertExpectations(t)
}

func TestProcessedEventLedger_IsProcessedError(t *testing.T) {
	ctx := t.Context()
	api := new(MockAPI)
	api.On("GetItem", ctx, mock.Anything).Return(nil, errors.New("throttled")).Once()

	_, err := dynamodb.NewProcessedEventLedger(api, "").IsProcessed(ctx, kernel.NewUUID(), consumer)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestProcessedEventLedger_RecordProcessed(t *testing.T) {
	ctx := t.Context()
	eventID := kernel.NewUUID()

	var put *awsdynamodb.PutItemInput
	api := new(MockAPI)
	api.On("PutItem", ctx, mock.Anything).Run(func(args mock.Arguments) {
		put = args.Get(1).(*awsdynamodb.PutItemInput)
	}).Return(&awsdynamodb.PutItemOutput{}, nil).Once()

	err := dynamodb.NewProcessedEventLedger(api, "").RecordProcessed(ctx, eventID, event.OrderPlacedName, consumer)

	require.NoError(t, err)
	require.NotNil(t, put)
	assert.Equal(t, dynamodb.DefaultTableName, aws.ToString(put.TableName))
	assert.Equal(t, "attribute_not_exists(#event_id)", aws.ToString(put.ConditionExpression))
	assert.Equal(t, eventID.String(), stringAttr(t, put.Item, "event_id"))
	assert.Equal(t, consumer, stringAttr(t, put.Item, "consumer"))
	assert.Equal(t, event.OrderPlacedName.String(), stringAttr(t, put.Item, "event_type"))
	assert.NotEmpty(t, stringAttr(t, put.Item, "processed_at"))
}

func TestProcessedEventLedger_RecordProcessedTwice(t *testing.T) {
	ctx := t.Context()
	api := new(MockAPI)
	api.On("PutItem", ctx, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}).Once()

	err := dynamodb.NewProcessedEventLedger(api, "").
		RecordProcessed(ctx, kernel.NewUUID(), event.OrderPlacedName, consumer)

	require.NoError(t, err)
}

func TestProcessedEventLedger_RecordProcessedError(t *testing.T) {
	ctx := t.Context()
	api := new(MockAPI)
	api.On("PutItem", ctx, mock.Anything).Return(nil, errors.New("access denied")).Once()

	err := dynamodb.NewProcessedEventLedger(api, "").
		RecordProcessed(ctx, kernel.NewUUID(), event.OrderPlacedName, consumer)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestProcessedEventLedger_EnsureTable(t *testing.T) {
	ctx := t.Context()
	api := new(MockAPI)
	api.On("CreateTable", ctx, mock.MatchedBy(func(in *awsdynamodb.CreateTableInput) bool {
		return aws.ToString(in.TableName) == "ledger" &&
			len(in.KeySchema) == 2 &&
			in.BillingMode == types.BillingModePayPerRequest
	})).Return(&awsdynamodb.CreateTableOutput{}, nil).Once()
	api.On("CreateTable", ctx, mock.Anything).
		Return(nil, &types.ResourceInUseException{Message: aws.String("table exists")}).Once()
	ledger := dynamodb.NewProcessedEventLedger(api, "ledger")

	require.NoError(t, ledger.EnsureTable(ctx))
	require.NoError(t, ledger.EnsureTable(ctx))
	api.AssertExpectations(t)
}
