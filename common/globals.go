package common

const (
	MetalTypeGold      = "GOLD"
	MetalTypeSilver    = "SILVER"
	MetalTypePlatinum  = "PLATINUM"
	MetalTypePalladium = "PALLADIUM"

	StorageTypeIPFS    = "IPFS"
	StorageTypeArweave = "ARWEAVE"

	VaultLocationZurich    = "ZURICH"
	VaultLocationSingapore = "SINGAPORE"
	VaultLocationDubai     = "DUBAI"
	VaultLocationLondon    = "LONDON"
	VaultLocationNewYork   = "NEW_YORK"
	VaultLocationHongKong  = "HONG_KONG"

	CertificationStatusPending   = "PENDING"
	CertificationStatusCertified = "CERTIFIED"
	CertificationStatusSuspended = "SUSPENDED"
	CertificationStatusRevoked   = "REVOKED"

	RoleCertifier     = "certifier"
	RoleVaultOperator = "vault_operator"

	// Provenance descriptions are part of the public surface, off-service
	// indexers match on them.
	ProvenanceMint            = "Asset minted and bridged to ScrollVerse"
	ProvenanceCertified       = "Asset certified by authorized certifier"
	ProvenanceStatusChanged   = "Certification status changed"
	ProvenanceValuationUpdate = "Asset valuation updated"

	EventTypeMinted                  = "precious_metal_minted"
	EventTypeCertified               = "asset_certified"
	EventTypeStatusChanged           = "certification_status_changed"
	EventTypeValuationUpdated        = "valuation_updated"
	EventTypeCertifierAuthorized     = "certifier_authorized"
	EventTypeVaultOperatorAuthorized = "vault_operator_authorized"
	EventTypeTreasuryUpdated         = "treasury_updated"

	// Wildcard pubsub topic receiving every registry event.
	EventTopicAll = "registry_events"

	RoyaltyBasisPointDivisor = 10000
	PurityDivisor            = 1000

	// One billion kilograms. Far beyond any real vault holding, and low
	// enough that weight times purity stays inside int64.
	MaxWeightInGrams = int64(1_000_000_000_000)
)

var metalTypes = map[string]bool{
	MetalTypeGold:      true,
	MetalTypeSilver:    true,
	MetalTypePlatinum:  true,
	MetalTypePalladium: true,
}

var storageTypes = map[string]bool{
	StorageTypeIPFS:    true,
	StorageTypeArweave: true,
}

var vaultLocations = map[string]bool{
	VaultLocationZurich:    true,
	VaultLocationSingapore: true,
	VaultLocationDubai:     true,
	VaultLocationLondon:    true,
	VaultLocationNewYork:   true,
	VaultLocationHongKong:  true,
}

var certificationStatuses = map[string]bool{
	CertificationStatusPending:   true,
	CertificationStatusCertified: true,
	CertificationStatusSuspended: true,
	CertificationStatusRevoked:   true,
}

func IsValidMetalType(v string) bool           { return metalTypes[v] }
func IsValidStorageType(v string) bool         { return storageTypes[v] }
func IsValidVaultLocation(v string) bool       { return vaultLocations[v] }
func IsValidCertificationStatus(v string) bool { return certificationStatuses[v] }
