package storage

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, r, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Copy(ctx context.Context, srcKey, dstKey string) (string, error) {
	args := m.Called(ctx, srcKey, dstKey)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Move(ctx context.Context, srcKey, dstKey string) (string, error) {
	args := m.Called(ctx, srcKey, dstKey)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) DeleteMany(ctx context.Context, urls []string) (int, error) {
	args := m.Called(ctx, urls)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) GenerateKey(folder, originalFilename string) string {
	args := m.Called(folder, originalFilename)
	return args.String(0)
}

func (m *MockStorage) MimeFor(filename string) string {
	args := m.Called(filename)
	return args.String(0)
}

func (m *MockStorage) KeyFromURL(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}
