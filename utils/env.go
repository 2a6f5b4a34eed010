package utils

import "os"

var (
	CONFIG_PATH = GetEnvOrDefault("CONFIG_PATH", "config.yaml")

	AWS_DEFAULT_REGION = GetEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1")

	S3_ENDPOINT = os.Getenv("S3_ENDPOINT")
)
