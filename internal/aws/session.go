package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadConfig resolves credentials and region from the shared AWS config,
// honoring profile and region overrides when non-empty. The listing pipeline
// never touches shared config; this is its only entry point.
func LoadConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, func(o *config.LoadOptions) error {
		if profile != "" {
			o.SharedConfigProfile = profile
		}
		if region != "" {
			o.Region = region
		}
		return nil
	})
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return cfg, nil
}
