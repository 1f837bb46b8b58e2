package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jsamuelsen11/todo-api/internal/domain"
)

// fakeMetadataClient implements ports.MetadataClient. factFn is called
// concurrently by the fan-out, so call recording is mutex-guarded.
type fakeMetadataClient struct {
	tokenFn func(ctx context.Context) (string, error)
	factFn  func(ctx context.Context, token, path string) (string, error)

	mu        sync.Mutex
	factCalls []string
}

func (f *fakeMetadataClient) GetToken(ctx context.Context) (string, error) {
	return f.tokenFn(ctx)
}

func (f *fakeMetadataClient) GetFact(ctx context.Context, token, path string) (string, error) {
	f.mu.Lock()
	f.factCalls = append(f.factCalls, path)
	f.mu.Unlock()
	return f.factFn(ctx, token, path)
}

func (f *fakeMetadataClient) factCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.factCalls)
}

func TestNewMetadataService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewMetadataService(&fakeMetadataClient{}, nil)
	if svc.logger == nil {
		t.Fatal("NewMetadataService(nil logger) should create a no-op logger, got nil")
	}
}

func TestMetadataService_InstanceMetadata(t *testing.T) {
	t.Parallel()

	facts := map[string]string{
		"instance-id":                 "i-0abc123def456",
		"instance-type":               "t3.micro",
		"placement/availability-zone": "us-east-1a",
		"local-ipv4":                  "172.31.5.10",
	}

	t.Run("returns all facts on success", func(t *testing.T) {
		t.Parallel()
		client := &fakeMetadataClient{
			tokenFn: func(context.Context) (string, error) { return "tok-1", nil },
			factFn: func(_ context.Context, token, path string) (string, error) {
				if token != "tok-1" {
					t.Errorf("GetFact received token %q, want %q", token, "tok-1")
				}
				return facts[path], nil
			},
		}
		svc := NewMetadataService(client, discardLogger())

		got := svc.InstanceMetadata(context.Background())

		if got.InstanceID != "i-0abc123def456" {
			t.Errorf("InstanceID = %q, want %q", got.InstanceID, "i-0abc123def456")
		}
		if got.InstanceType != "t3.micro" {
			t.Errorf("InstanceType = %q, want %q", got.InstanceType, "t3.micro")
		}
		if got.AvailabilityZone != "us-east-1a" {
			t.Errorf("AvailabilityZone = %q, want %q", got.AvailabilityZone, "us-east-1a")
		}
		if got.PrivateIPv4 != "172.31.5.10" {
			t.Errorf("PrivateIPv4 = %q, want %q", got.PrivateIPv4, "172.31.5.10")
		}
	})

	t.Run("token failure yields all placeholders without fact calls", func(t *testing.T) {
		t.Parallel()
		client := &fakeMetadataClient{
			tokenFn: func(context.Context) (string, error) { return "", domain.ErrUnavailable },
		}
		svc := NewMetadataService(client, discardLogger())

		got := svc.InstanceMetadata(context.Background())

		if got != domain.UnavailableInstanceMetadata() {
			t.Errorf("InstanceMetadata() = %+v, want all placeholders", got)
		}
		if n := client.factCallCount(); n != 0 {
			t.Errorf("GetFact called %d times, want 0", n)
		}
	})

	t.Run("single fact failure degrades that fact only", func(t *testing.T) {
		t.Parallel()
		client := &fakeMetadataClient{
			tokenFn: func(context.Context) (string, error) { return "tok-1", nil },
			factFn: func(_ context.Context, _, path string) (string, error) {
				if path == "local-ipv4" {
					return "", errors.New("request timeout")
				}
				return facts[path], nil
			},
		}
		svc := NewMetadataService(client, discardLogger())

		got := svc.InstanceMetadata(context.Background())

		if got.PrivateIPv4 != domain.MetadataUnavailable {
			t.Errorf("PrivateIPv4 = %q, want %q", got.PrivateIPv4, domain.MetadataUnavailable)
		}
		if got.InstanceID != "i-0abc123def456" {
			t.Errorf("InstanceID = %q, want %q", got.InstanceID, "i-0abc123def456")
		}
		if got.AvailabilityZone != "us-east-1a" {
			t.Errorf("AvailabilityZone = %q, want %q", got.AvailabilityZone, "us-east-1a")
		}
	})

	t.Run("fetches every fact path exactly once", func(t *testing.T) {
		t.Parallel()
		client := &fakeMetadataClient{
			tokenFn: func(context.Context) (string, error) { return "tok-1", nil },
			factFn: func(_ context.Context, _, path string) (string, error) {
				return facts[path], nil
			},
		}
		svc := NewMetadataService(client, discardLogger())

		svc.InstanceMetadata(context.Background())

		if n := client.factCallCount(); n != len(factPaths) {
			t.Errorf("GetFact called %d times, want %d", n, len(factPaths))
		}
		seen := make(map[string]bool)
		client.mu.Lock()
		for _, p := range client.factCalls {
			seen[p] = true
		}
		client.mu.Unlock()
		for _, p := range factPaths {
			if !seen[p] {
				t.Errorf("GetFact never called for path %q", p)
			}
		}
	})
}
