package database

import (
	"context"
	"log"

	appconfig "orcamento_api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the application config.
//
// A non-empty Endpoint (e.g. http://dynamodb:8000) points the client at
// DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, c appconfig.DynamoDBConfig) *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(ctx, c)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	log.Printf("[dynamodb][client] connected region=%s endpoint=%s", c.Region, c.Endpoint)
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, c appconfig.DynamoDBConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(creds),
	}

	if c.Endpoint != "" {
		endpoint := c.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
