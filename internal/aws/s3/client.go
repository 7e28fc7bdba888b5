package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"tasnim.dev/s3cadence/internal/cadence"
)

// S3API defines the subset of the S3 API we use.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

// Client adapts the S3 listing API to the collector's Lister contract.
type Client struct {
	api S3API
}

// NewClient creates a new S3 client.
func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// ListPage fetches one page of objects under prefix. Last-modified times are
// rendered as RFC3339 UTC strings; objects the service reports without one
// come back with an empty LastModified. Retries are the SDK's concern, not
// ours.
func (c *Client) ListPage(ctx context.Context, bucket, prefix string, cursor cadence.ContinuationToken) (cadence.Page, error) {
	input := &awss3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	if !cursor.IsZero() {
		input.ContinuationToken = aws.String(cursor.Value())
	}

	out, err := c.api.ListObjectsV2(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return cadence.Page{}, fmt.Errorf("ListObjectsV2: %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return cadence.Page{}, fmt.Errorf("ListObjectsV2: %w", err)
	}

	objects := make([]cadence.ObjectRecord, len(out.Contents))
	for i, obj := range out.Contents {
		rec := cadence.ObjectRecord{Key: aws.ToString(obj.Key)}
		if obj.LastModified != nil {
			rec.LastModified = obj.LastModified.UTC().Format(time.RFC3339Nano)
		}
		objects[i] = rec
	}

	page := cadence.Page{
		Objects:     objects,
		IsTruncated: aws.ToBool(out.IsTruncated),
	}
	if out.NextContinuationToken != nil {
		page.Next = cadence.NewContinuationToken(aws.ToString(out.NextContinuationToken))
	}

	return page, nil
}
