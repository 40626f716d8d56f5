package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared
// config, IAM role). When AWS_ENDPOINT_URL is set (localstack), static dummy
// credentials are used so no real AWS account is needed locally.
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	var opts []func(*config.LoadOptions) error
	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		opts = append(opts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
			config.WithRegion("us-east-1"),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	svc := secretsmanager.NewFromConfig(cfg)

	return &SecretsManagerClient{
		svc: svc,
		cfg: cfg,
	}, nil
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN
// specified by an environment variable. If the ARN environment variable
// (secretArnEnvVar) is not set or fetching fails, it falls back to reading the
// secret directly from another environment variable (fallbackEnvVar).
// It returns the secret value or an error if both methods fail.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	// Attempt to fetch from Secrets Manager if ARN is provided
	if secretArn != "" {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn))

		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Log.Info("Successfully fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return *result.SecretString, nil
		}

		logger.Log.Warn("Failed to fetch secret from Secrets Manager, falling back to environment variable",
			zap.String("secretArn", secretArn),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err))
	}

	// Fallback to plain environment variable
	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not available via %s or %s", secretArnEnvVar, fallbackEnvVar)
}
