// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjects is an in-memory objectAPI.
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	getErr  error
	putErr  error
	lastPut *s3.PutObjectInput
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string][]byte)}
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	modified := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data)), LastModified: &modified}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	f.lastPut = in
	return &s3.PutObjectOutput{}, nil
}

func TestS3DocumentRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjects()
	repo := newS3DocumentRepository(objects, "vaults", "docs/", logger.Nop())

	records := []models.EncryptedRecord{{Site: "s", Username: "u", Password: "p"}}
	require.NoError(t, repo.SaveDocument(ctx, "uid-1", records))

	require.NotNil(t, objects.lastPut)
	assert.Equal(t, "docs/uid-1.json", aws.ToString(objects.lastPut.Key))
	assert.Equal(t, "application/json", aws.ToString(objects.lastPut.ContentType))

	doc, err := repo.GetDocument(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, records, doc.Passwords)
	assert.NotNil(t, doc.UpdatedAt)
}

func TestS3DocumentRepository_NotFound(t *testing.T) {
	repo := newS3DocumentRepository(newFakeObjects(), "vaults", "", logger.Nop())

	_, err := repo.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestS3DocumentRepository_Corrupt(t *testing.T) {
	objects := newFakeObjects()
	objects.objects["vaults/uid-1.json"] = []byte("{broken")
	repo := newS3DocumentRepository(objects, "vaults", "", logger.Nop())

	_, err := repo.GetDocument(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestS3DocumentRepository_FallsBackToLastModified(t *testing.T) {
	objects := newFakeObjects()
	objects.objects["vaults/uid-1.json"] = []byte(`{"passwords":null}`)
	repo := newS3DocumentRepository(objects, "vaults", "", logger.Nop())

	doc, err := repo.GetDocument(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.NotNil(t, doc.Passwords)
	assert.Empty(t, doc.Passwords)
	require.NotNil(t, doc.UpdatedAt)
	assert.Equal(t, 2026, doc.UpdatedAt.Year())
}

func TestS3DocumentRepository_Errors(t *testing.T) {
	objects := newFakeObjects()
	objects.getErr = errors.New("throttled")
	objects.putErr = errors.New("denied")
	repo := newS3DocumentRepository(objects, "vaults", "", logger.Nop())

	_, err := repo.GetDocument(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrObjectStorage)

	err = repo.SaveDocument(context.Background(), "uid-1", nil)
	assert.ErrorIs(t, err, ErrObjectStorage)
}

func TestS3DocumentRepository_EscapesAccountID(t *testing.T) {
	repo := newS3DocumentRepository(newFakeObjects(), "vaults", "p/", logger.Nop())
	assert.Equal(t, "p/a%2Fb.json", repo.objectKey("a/b"))
}
