package archive

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of the Fetcher interface.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(Page), args.Error(1)
}

// MockCaptureService is a mock implementation of the CaptureService interface.
type MockCaptureService struct {
	mock.Mock
}

func (m *MockCaptureService) Save(ctx context.Context, rawURL string) (Capture, error) {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(Capture), args.Error(1)
}

// MockSnapshotter is a mock implementation of the Snapshotter interface.
type MockSnapshotter struct {
	mock.Mock
}

func (m *MockSnapshotter) Archive(ctx context.Context, rawURL string) (CaptureResult, error) {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(CaptureResult), args.Error(1)
}

// MockExtractor is a mock implementation of the Extractor interface.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(baseURL, html string, limit int) ([]string, error) {
	args := m.Called(baseURL, html, limit)
	return args.Get(0).([]string), args.Error(1)
}

// fixedClock pins Now for deterministic manifest rows.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// stubIDs returns a constant run ID.
type stubIDs struct{}

func (stubIDs) NewID() (string, error) {
	return "test-run-id", nil
}
