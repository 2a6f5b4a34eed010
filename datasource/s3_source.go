package datasource

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog"
	"github.com/tastedash/tastedash/gologger"
	"github.com/tastedash/tastedash/utils"
)

var logger = gologger.NewLogger()

type S3Source struct {
	bucket string
	key    string
}

func NewS3Source(bucket, key string) *S3Source {
	return &S3Source{bucket: bucket, key: key}
}

func (ss *S3Source) Key() string {
	return fmt.Sprintf("s3://%s/%s", ss.bucket, ss.key)
}

func (ss *S3Source) newClient() (*s3.S3, error) {
	conf := &aws.Config{
		Region:      aws.String(utils.AWS_DEFAULT_REGION),
		Credentials: credentials.NewEnvCredentials(),
	}
	if utils.S3_ENDPOINT != "" {
		conf.Endpoint = aws.String(utils.S3_ENDPOINT)
		conf.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(conf)
	if err != nil {
		return nil, fmt.Errorf("error making new session: %w", err)
	}

	return s3.New(sess), nil
}

func (ss *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	ctx = logger.WithContext(ctx)
	logger := zerolog.Ctx(ctx)

	client, err := ss.newClient()
	if err != nil {
		return nil, err
	}

	s := time.Now()
	out, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(ss.key),
	})
	if err != nil {
		return nil, fmt.Errorf("error in GetObject: %w", err)
	}

	logger.Debug().Str("key", ss.Key()).Str("durationHuman", time.Since(s).String()).Msg("opened dataset object on s3")
	return out.Body, nil
}

func (ss *S3Source) LastModified(ctx context.Context) (time.Time, error) {
	client, err := ss.newClient()
	if err != nil {
		return time.Time{}, err
	}

	out, err := client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(ss.key),
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("error in HeadObject: %w", err)
	}
	if out.LastModified == nil {
		return time.Time{}, nil
	}
	return *out.LastModified, nil
}
