package enrich

// SkipReason is a machine-readable code for not attempting enrichment.
type SkipReason string

const (
	SkipFeatureOff        SkipReason = "feature_off"
	SkipMissingAPIKey     SkipReason = "missing_api_key"
	SkipConsentOff        SkipReason = "consent_off"
	SkipNetworkDisallowed SkipReason = "network_disallowed"
	SkipNoDetectedItems   SkipReason = "no_detected_items"
)

// Eligibility is the input to the pre-flight gate.
type Eligibility struct {
	FeatureEnabled bool
	HasAPIKey      bool
	Consent        bool
	AllowNetwork   bool
	ItemCount      int
}

// Check returns the first failing condition in a fixed order, or ok.
func (e Eligibility) Check() (SkipReason, bool) {
	switch {
	case !e.FeatureEnabled:
		return SkipFeatureOff, false
	case !e.HasAPIKey:
		return SkipMissingAPIKey, false
	case !e.Consent:
		return SkipConsentOff, false
	case !e.AllowNetwork:
		return SkipNetworkDisallowed, false
	case e.ItemCount == 0:
		return SkipNoDetectedItems, false
	}
	return "", true
}
