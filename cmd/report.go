package cmd

import (
	"context"
	"fmt"
	"io"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	awsclient "tasnim.dev/s3cadence/internal/aws"
	awss3 "tasnim.dev/s3cadence/internal/aws/s3"
	"tasnim.dev/s3cadence/internal/cadence"
	"tasnim.dev/s3cadence/internal/config"
	"tasnim.dev/s3cadence/internal/render"
)

func NewReportCmd() *cobra.Command {
	var profile string
	var region string
	var bucket string
	var prefix string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report average time between object modifications under a prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region = cfg.Merge(profile, region)

			log, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx := context.Background()
			awsCfg, err := awsclient.LoadConfig(ctx, profile, region)
			if err != nil {
				return fmt.Errorf("loading AWS config: %w", err)
			}

			target := render.Target{
				Bucket:    bucket,
				Profile:   profile,
				Prefix:    prefix,
				AccountID: accountID(ctx, awsCfg),
			}
			client := awss3.NewClient(awss3sdk.NewFromConfig(awsCfg))

			return runReport(ctx, cmd.OutOrStdout(), client, log, target)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket to inspect")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix to list (empty means the whole bucket)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log page fetches")
	_ = cmd.MarkFlagRequired("bucket")

	return cmd
}

// runReport drives the pipeline against any Lister, so tests can swap in a
// stub without AWS wiring.
func runReport(ctx context.Context, w io.Writer, lister cadence.Lister, log *zap.Logger, target render.Target) error {
	render.Header(w, target)

	timestamps, err := cadence.NewCollector(lister, log).Collect(ctx, target.Bucket, target.Prefix)
	if err != nil {
		return err
	}

	res, ok := cadence.Aggregate(timestamps)
	if !ok {
		render.InsufficientData(w)
		return nil
	}

	render.Stats(w, res)
	return nil
}

// accountID resolves the caller's account for the report header.
// Best-effort: empty string on error.
func accountID(ctx context.Context, cfg awssdk.Config) string {
	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return ""
	}
	return awssdk.ToString(out.Account)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
