// Package storage keeps voter face data on a gocloud.dev blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"votegate/config"
	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob" // azblob://
	_ "gocloud.dev/blob/fileblob"  // file://
	_ "gocloud.dev/blob/gcsblob"   // gs://
	_ "gocloud.dev/blob/memblob"   // mem://
	_ "gocloud.dev/blob/s3blob"    // s3://
	"gocloud.dev/gcerrors"
)

const (
	facesPrefix  = "faces/"
	modelsPrefix = "models/"
	modelName    = "lbph.gob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobFaceStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (repository.FaceStore, error) {
	url := "mem://"
	if params.Config.Face != nil && params.Config.Face.Storage.BucketURL != "" {
		url = params.Config.Face.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), url)
	if err != nil {
		return nil, errors.Wrapf(err, "open face bucket %q", url)
	}

	params.Logger.Info("Face store opened", slog.String("bucket", redactURL(url)))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewFaceStore(bucket), nil
}

// NewFaceStore wraps an already opened bucket.
func NewFaceStore(bucket *blob.Bucket) repository.FaceStore {
	return &blobFaceStore{bucket: bucket}
}

func (s *blobFaceStore) AppendTrainingImage(ctx context.Context, voterID uuid.UUID, png []byte) (int, error) {
	keys, err := s.trainingKeys(ctx, voterID)
	if err != nil {
		return 0, err
	}

	next := len(keys) + 1
	key := fmt.Sprintf("%s%s/%04d.png", facesPrefix, voterID, next)
	// IfNotExist turns a concurrent writer picking the same slot into an error instead of an overwrite.
	err = s.bucket.WriteAll(ctx, key, png, &blob.WriterOptions{ContentType: "image/png", IfNotExist: true})
	if gcerrors.Code(err) == gcerrors.FailedPrecondition {
		return 0, domainerrors.ErrFaceStorageFailed.WithDetails(key).WrapMessage("training image slot already taken")
	}
	if err != nil {
		return 0, domainerrors.ErrFaceStorageFailed.WithDetails(key).WrapMessage(err.Error())
	}

	return next, nil
}

func (s *blobFaceStore) ListTrainingImages(ctx context.Context, voterID uuid.UUID) ([][]byte, error) {
	keys, err := s.trainingKeys(ctx, voterID)
	if err != nil {
		return nil, err
	}

	images := make([][]byte, 0, len(keys))
	for _, key := range keys {
		data, err := s.bucket.ReadAll(ctx, key)
		if err != nil {
			return nil, domainerrors.ErrFaceStorageFailed.WithDetails(key).WrapMessage(err.Error())
		}
		images = append(images, data)
	}

	return images, nil
}

func (s *blobFaceStore) CountTrainingImages(ctx context.Context, voterID uuid.UUID) (int, error) {
	keys, err := s.trainingKeys(ctx, voterID)
	if err != nil {
		return 0, err
	}

	return len(keys), nil
}

func (s *blobFaceStore) SaveModel(ctx context.Context, voterID uuid.UUID, model []byte) error {
	key := modelKey(voterID)
	if err := s.bucket.WriteAll(ctx, key, model, &blob.WriterOptions{ContentType: "application/octet-stream"}); err != nil {
		return domainerrors.ErrFaceStorageFailed.WithDetails(key).WrapMessage(err.Error())
	}

	return nil
}

func (s *blobFaceStore) LoadModel(ctx context.Context, voterID uuid.UUID) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, modelKey(voterID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrFaceModelNotFound
		}

		return nil, domainerrors.ErrFaceStorageFailed.WithDetails(modelKey(voterID)).WrapMessage(err.Error())
	}

	return data, nil
}

// trainingKeys lists faces/{voterID}/ in key order, which is insertion order.
func (s *blobFaceStore) trainingKeys(ctx context.Context, voterID uuid.UUID) ([]string, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: facesPrefix + voterID.String() + "/"})

	var keys []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domainerrors.ErrFaceStorageFailed.WithDetails(voterID.String()).WrapMessage(err.Error())
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, ".png") {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	return keys, nil
}

func modelKey(voterID uuid.UUID) string {
	return modelsPrefix + voterID.String() + "/" + modelName
}

// redactURL drops query parameters, which may hold credentials.
func redactURL(url string) string {
	base, _, _ := strings.Cut(url, "?")

	return base
}
