package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	waLog "go.mau.fi/whatsmeow/util/log"

	"github.com/maozinhaws/pintor-pro/internal/infra/config"
	"github.com/maozinhaws/pintor-pro/internal/model"
)

// configKey is the sort key under which the single company profile lives.
const configKey = "empresa"

type quoteItem struct {
	AccountID   string `dynamodbav:"account_id"`
	QuoteID     string `dynamodbav:"quote_id"`
	Payload     string `dynamodbav:"payload"`
	ClienteNome string `dynamodbav:"cliente_nome"`
	Status      string `dynamodbav:"status"`
	DataCriacao string `dynamodbav:"data_criacao"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type clientItem struct {
	AccountID string `dynamodbav:"account_id"`
	ClientID  string `dynamodbav:"client_id"`
	Payload   string `dynamodbav:"payload"`
	Nome      string `dynamodbav:"nome"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type configItem struct {
	AccountID string `dynamodbav:"account_id"`
	Key       string `dynamodbav:"key"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoStore implements Store on DynamoDB.
//
// Table requirements (all three tables):
//   - PK: account_id (string)
//   - SK: quote_id / client_id / key (string)
//
// Records are stored as a JSON payload attribute plus a few scalar
// attributes mirrored out for inspection. Quotes and clients reuse the
// local numeric id as sort key so a re-push overwrites instead of
// duplicating.
type DynamoStore struct {
	ddb *dynamodb.Client
	cfg config.RemoteConfig
	log waLog.Logger
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore builds a DynamoStore from the remote configuration.
func NewDynamoStore(ctx context.Context, cfg config.RemoteConfig, log waLog.Logger) (*DynamoStore, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return &DynamoStore{
		ddb: dynamodb.NewFromConfig(awsCfg),
		cfg: cfg,
		log: log.Sub("Remote"),
	}, nil
}

// newAWSConfig loads AWS configuration, pointing the SDK at a custom
// endpoint when one is configured (local DynamoDB). Local endpoints don't
// validate credentials but the SDK still requires some.
func newAWSConfig(ctx context.Context, cfg config.RemoteConfig) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.Endpoint != "" {
		creds := credentials.NewStaticCredentialsProvider("local", "local", "")
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: cfg.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(creds),
			awsconfig.WithEndpointResolverWithOptions(resolver),
		)
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// PushQuote upserts the quote under the account. Quotes that already carry
// a local id keep it as the remote document id, so retries and re-syncs
// land on the same item.
func (s *DynamoStore) PushQuote(ctx context.Context, accountID string, o *model.Orcamento) (string, error) {
	docID := remoteDocID(o.ID)

	payload, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("failed to encode quote: %w", err)
	}

	it := quoteItem{
		AccountID:   accountID,
		QuoteID:     docID,
		Payload:     string(payload),
		ClienteNome: o.Cliente.Nome,
		Status:      string(o.Status),
		DataCriacao: o.DataCriacao.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.QuotesTable),
		Item:      av,
	})
	if err != nil {
		return "", fmt.Errorf("failed to push quote %s: %w", docID, err)
	}

	s.log.Debugf("Pushed quote %s for account %s", docID, accountID)
	return docID, nil
}

// ListQuotes queries every quote under the account and returns them sorted
// by creation date, newest first.
func (s *DynamoStore) ListQuotes(ctx context.Context, accountID string) ([]*model.Orcamento, error) {
	var quotes []*model.Orcamento

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.cfg.QuotesTable),
		KeyConditionExpression: aws.String("account_id = :acc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acc": &types.AttributeValueMemberS{Value: accountID},
		},
	}

	for {
		out, err := s.ddb.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list quotes: %w", err)
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			var o model.Orcamento
			if err := json.Unmarshal([]byte(it.Payload), &o); err != nil {
				s.log.Warnf("Skipping undecodable quote %s: %v", it.QuoteID, err)
				continue
			}
			quotes = append(quotes, &o)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].DataCriacao.After(quotes[j].DataCriacao)
	})
	return quotes, nil
}

// PushClient stores the client if no item with the same id exists yet.
// Clients are only ever created during a quote save, so an existing remote
// copy wins over whatever the local side holds.
func (s *DynamoStore) PushClient(ctx context.Context, accountID string, c *model.Cliente) (string, error) {
	docID := remoteDocID(c.ID)

	payload, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode client: %w", err)
	}

	it := clientItem{
		AccountID: accountID,
		ClientID:  docID,
		Payload:   string(payload),
		Nome:      c.Nome,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.cfg.ClientsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(client_id)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return docID, nil
		}
		return "", fmt.Errorf("failed to push client %s: %w", docID, err)
	}

	s.log.Debugf("Pushed client %s for account %s", docID, accountID)
	return docID, nil
}

// PushConfig upserts the company profile.
func (s *DynamoStore) PushConfig(ctx context.Context, accountID string, cfg *model.ConfigEmpresa) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	it := configItem{
		AccountID: accountID,
		Key:       configKey,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.ConfigTable),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to push config: %w", err)
	}
	return nil
}

// GetConfig fetches the company profile for the account.
func (s *DynamoStore) GetConfig(ctx context.Context, accountID string) (*model.ConfigEmpresa, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.cfg.ConfigTable),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: accountID},
			"key":        &types.AttributeValueMemberS{Value: configKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get config: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it configItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	var cfg model.ConfigEmpresa
	if err := json.Unmarshal([]byte(it.Payload), &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, true, nil
}

// remoteDocID derives the remote document id from a local row id, falling
// back to a random id for records that were never persisted locally.
func remoteDocID(localID int64) string {
	if localID > 0 {
		return strconv.FormatInt(localID, 10)
	}
	return uuid.NewString()
}
