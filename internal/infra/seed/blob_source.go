package seed

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets

	"arches/internal/domain/entity"
	"arches/internal/util"
)

// LoadFromBucket opens bucketURL through gocloud blob and parses the object at key.
func LoadFromBucket(ctx context.Context, logger *slog.Logger, bucketURL, key string) ([]*entity.Location, error) {
	if bucketURL == "" || key == "" {
		return nil, errors.New("seed bucket and key are required")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	defer bucket.Close()

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", key)
	}
	defer reader.Close()

	counter := util.NewChecksumReader(reader)

	locations, err := ReadLocations(counter)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", key)
	}

	logger.Info("Loaded location catalog",
		slog.String("bucket", bucketURL),
		slog.String("key", key),
		slog.Int("locations", len(locations)),
		slog.String("size", util.FormatBytes(counter.BytesRead())),
		slog.String("sha256", counter.Checksum()),
	)

	return locations, nil
}
