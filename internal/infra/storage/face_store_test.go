package storage

import (
	"context"
	"testing"

	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"
	"votegate/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) repository.FaceStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewFaceStore(bucket)
}

func TestFaceStore_AppendAndListInOrder(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	voter := uuid.New()
	other := uuid.New()

	for i := 1; i <= 3; i++ {
		total, err := store.AppendTrainingImage(ctx, voter, []byte{byte(i)})
		require.NoError(t, err)
		assert.Equal(t, i, total)
	}
	_, err := store.AppendTrainingImage(ctx, other, []byte{9})
	require.NoError(t, err)

	images, err := store.ListTrainingImages(ctx, voter)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{1}, {2}, {3}}, images)

	count, err := store.CountTrainingImages(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFaceStore_ModelRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	voter := uuid.New()

	_, err := store.LoadModel(ctx, voter)
	assert.True(t, errors.Is(err, repository.ErrFaceModelNotFound))

	require.NoError(t, store.SaveModel(ctx, voter, []byte("model")))

	data, err := store.LoadModel(ctx, voter)
	require.NoError(t, err)
	assert.Equal(t, []byte("model"), data)

	count, err := store.CountTrainingImages(ctx, voter)
	require.NoError(t, err)
	assert.Zero(t, count, "model blob must not count as a training image")
}

func TestFaceStore_AppendNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewFaceStore(bucket)
	voter := uuid.New()

	// a concurrent writer already took slot 2 while our listing saw one image
	slot := facesPrefix + voter.String() + "/0002.png"
	require.NoError(t, bucket.WriteAll(ctx, slot, []byte("theirs"), nil))

	_, err := store.AppendTrainingImage(ctx, voter, []byte("ours"))
	require.True(t, errors.Is(err, domainerrors.ErrFaceStorageFailed))
	assert.ErrorContains(t, err, "slot already taken")

	data, err := bucket.ReadAll(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, []byte("theirs"), data)
}

func TestFaceStore_ClosedBucketReportsStorageFailure(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewFaceStore(bucket)
	require.NoError(t, bucket.Close())

	_, err := store.AppendTrainingImage(context.Background(), uuid.New(), []byte{1})
	assert.True(t, errors.Is(err, domainerrors.ErrFaceStorageFailed))
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "s3://faces", redactURL("s3://faces?region=eu-west-1&access=secret"))
	assert.Equal(t, "mem://", redactURL("mem://"))
}
