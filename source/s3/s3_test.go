package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/apfind/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func matchObject(bucket, key string) interface{} {
	return mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Bucket == bucket && *input.Key == key
	})
}

func TestOpener_Open(t *testing.T) {
	mockClient := new(MockS3Client)
	opener := NewOpener(mockClient)

	t.Run("Success", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, matchObject("test-bucket", "dir/numbers.txt")).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader("1\n2\n")),
		}, nil).Once()

		rc, err := opener.Open(context.Background(), "test-bucket/dir/numbers.txt")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n", string(data))
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, matchObject("test-bucket", "missing")).Return(nil, &types.NoSuchKey{}).Once()

		_, err := opener.Open(context.Background(), "test-bucket/missing")
		assert.ErrorIs(t, err, source.ErrNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, matchObject("test-bucket", "gone")).Return(nil, &types.NotFound{}).Once()

		_, err := opener.Open(context.Background(), "test-bucket/gone")
		assert.ErrorIs(t, err, source.ErrNotFound)
	})

	t.Run("OtherError", func(t *testing.T) {
		boom := errors.New("access denied")
		mockClient.On("GetObject", mock.Anything, matchObject("test-bucket", "secret")).Return(nil, boom).Once()

		_, err := opener.Open(context.Background(), "test-bucket/secret")
		assert.ErrorIs(t, err, boom)
	})

	mockClient.AssertExpectations(t)
}

func TestOpener_InvalidLocation(t *testing.T) {
	opener := NewOpener(new(MockS3Client))

	for _, name := range []string{"bucket", "bucket/", "/key"} {
		_, err := opener.Open(context.Background(), name)
		assert.ErrorIs(t, err, source.ErrInvalidLocation, name)
	}
}

func TestOpener_ThroughMux(t *testing.T) {
	mockClient := new(MockS3Client)
	mockClient.On("GetObject", mock.Anything, matchObject("b", "k")).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("3\n6\n9\n")),
	}, nil).Once()

	mux := source.NewMux()
	mux.Handle("s3", NewOpener(mockClient))

	rc, err := mux.Open(context.Background(), "s3://b/k")
	require.NoError(t, err)
	defer rc.Close()

	r := source.NewLineReader(rc)
	var got []uint64
	for {
		v, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []uint64{3, 6, 9}, got)
}
