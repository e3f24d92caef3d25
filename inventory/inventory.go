// Package inventory loads the resource descriptors that widget sets are built
// from. Descriptors are YAML or JSON documents read from a local file or from
// an S3 object.
package inventory

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/30Piraten/widgetsets/widgetset"
)

const s3Scheme = "s3://"

// Inventory is the set of discovered resources to build a dashboard for.
type Inventory struct {
	AppSync         []widgetset.AppsyncResource `yaml:"appsync"`
	Ecs             []EcsCluster                `yaml:"ecs"`
	TransitGateways []widgetset.TransitGateway  `yaml:"transitGateways"`
}

// EcsCluster groups the services discovered in one cluster.
type EcsCluster struct {
	ClusterName string                 `yaml:"clusterName"`
	Services    []widgetset.EcsService `yaml:"services"`
}

// Count returns the number of resources widget sets will be built for.
func (inv *Inventory) Count() int {
	n := len(inv.AppSync) + len(inv.TransitGateways)
	for _, cluster := range inv.Ecs {
		n += len(cluster.Services)
	}
	return n
}

// Decode parses a YAML or JSON inventory document.
func Decode(data []byte) (*Inventory, error) {
	inv := &Inventory{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(inv); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "could not decode inventory")
	}
	return inv, nil
}

// ObjectGetter is the subset of the S3 client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Loader struct {
	s3  ObjectGetter
	log zerolog.Logger
}

// NewLoader returns a loader. s3 may be nil when only local sources are used.
func NewLoader(s3 ObjectGetter, log zerolog.Logger) *Loader {
	return &Loader{s3: s3, log: log}
}

// NewS3Client builds an S3 client from the default AWS configuration chain.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	return s3.NewFromConfig(cfg), nil
}

// IsS3Source reports whether source is an s3://bucket/key URI.
func IsS3Source(source string) bool {
	return strings.HasPrefix(source, s3Scheme)
}

// Load reads and decodes the inventory at source, a local path or an
// s3://bucket/key URI.
func (l *Loader) Load(ctx context.Context, source string) (*Inventory, error) {
	var data []byte
	var err error
	if IsS3Source(source) {
		data, err = l.fetchObject(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		err = errors.Wrapf(err, "could not read inventory %s", source)
	}
	if err != nil {
		return nil, err
	}

	inv, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "inventory %s", source)
	}

	l.log.Info().
		Str("source", source).
		Int("appsync", len(inv.AppSync)).
		Int("ecs_clusters", len(inv.Ecs)).
		Int("transit_gateways", len(inv.TransitGateways)).
		Msg("Loaded inventory")
	return inv, nil
}

func (l *Loader) fetchObject(ctx context.Context, source string) ([]byte, error) {
	bucket, key, err := parseS3URI(source)
	if err != nil {
		return nil, err
	}
	if l.s3 == nil {
		return nil, errors.Errorf("no S3 client configured for %s", source)
	}

	l.log.Debug().Str("bucket", bucket).Str("key", key).Msg("Fetching inventory from S3")
	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", source)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", source)
	}
	return data, nil
}

func parseS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", errors.Errorf("invalid S3 URI %q, want s3://bucket/key", uri)
	}
	return bucket, key, nil
}
