package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-api/internal/app/fanout"
	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// Compile-time check that MetadataService implements ports.MetadataService.
var _ ports.MetadataService = (*MetadataService)(nil)

// factPaths lists the metadata paths fetched for an instance, in the order
// their values populate domain.InstanceMetadata.
var factPaths = []string{
	"instance-id",
	"instance-type",
	"placement/availability-zone",
	"local-ipv4",
}

// metadataWorkers bounds the fan-out when fetching instance facts.
const metadataWorkers = 4

// MetadataService implements ports.MetadataService. Lookups are best-effort:
// a token failure yields all-placeholder metadata, a single fact failure
// yields a placeholder for that fact only. It never returns an error.
type MetadataService struct {
	client ports.MetadataClient
	logger *slog.Logger
}

// NewMetadataService creates a MetadataService. The client port provides
// access to the instance metadata endpoint. A nil logger discards all output.
func NewMetadataService(client ports.MetadataClient, logger *slog.Logger) *MetadataService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MetadataService{
		client: client,
		logger: logger,
	}
}

// InstanceMetadata fetches a session token and fans out over the fact paths,
// degrading to placeholders wherever a fetch fails.
func (s *MetadataService) InstanceMetadata(ctx context.Context) domain.InstanceMetadata {
	token, err := s.client.GetToken(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "metadata token unavailable",
			slog.String("operation", "InstanceMetadata"),
			slog.Any("error", err),
		)
		return domain.UnavailableInstanceMetadata()
	}

	results := fanout.Run(ctx, metadataWorkers, factPaths,
		func(ctx context.Context, path string) (string, error) {
			return s.client.GetFact(ctx, token, path)
		})

	facts := make([]string, len(results))
	for i, res := range results {
		if res.Err != nil {
			s.logger.WarnContext(ctx, "metadata fact unavailable",
				slog.String("operation", "InstanceMetadata"),
				slog.String("path", factPaths[i]),
				slog.Any("error", res.Err),
			)
			facts[i] = domain.MetadataUnavailable
			continue
		}
		facts[i] = res.Value
	}

	return domain.InstanceMetadata{
		InstanceID:       facts[0],
		InstanceType:     facts[1],
		AvailabilityZone: facts[2],
		PrivateIPv4:      facts[3],
	}
}
