package domain

// MetadataUnavailable is the placeholder reported for any instance fact
// that cannot be fetched from the metadata endpoint.
const MetadataUnavailable = "unavailable"

// InstanceMetadata holds identifying facts about the cloud instance the
// service runs on. Lookups are best-effort: a fact that cannot be fetched
// carries MetadataUnavailable instead of failing the request.
type InstanceMetadata struct {
	InstanceID       string
	InstanceType     string
	AvailabilityZone string
	PrivateIPv4      string
}

// UnavailableInstanceMetadata returns metadata with every fact set to the
// placeholder, used when the metadata endpoint cannot be reached at all.
func UnavailableInstanceMetadata() InstanceMetadata {
	return InstanceMetadata{
		InstanceID:       MetadataUnavailable,
		InstanceType:     MetadataUnavailable,
		AvailabilityZone: MetadataUnavailable,
		PrivateIPv4:      MetadataUnavailable,
	}
}
