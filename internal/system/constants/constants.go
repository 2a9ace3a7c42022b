package constants

const ApiBasePath = "/api/v1"
const DuplicatesApiPath = "/duplicates"
const DefaultOrgHandle = "carbon.super"
const DeploymentConfigFile = "repository/conf/deployment.yaml"

type contextKey string

const TenantContextKey contextKey = "tenant"
const TraceIDContextKey contextKey = "trace_id"
const UserIDContextKey contextKey = "user_id"

const TraceIDHeader = "X-Trace-Id"

// Match types accepted by the detection engine.
const (
	MatchTypeExact = "exact"
	MatchTypeFuzzy = "fuzzy"
)

// Retention policies applied to detected groups.
const (
	RetentionKeepFirst = "keep_first"
	RetentionNone      = "none"
)

var AllowedRetentionPolicies = map[string]bool{
	RetentionKeepFirst: true,
	RetentionNone:      true,
}

// Record store back ends.
const (
	PostgresRecordStore = "postgres"
	MongoRecordStore    = "mongodb"
)

// Direct record attributes resolved before the attribute bag.
const (
	NameAttribute    = "name"
	EmailAttribute   = "email"
	CompanyAttribute = "company"
	StatusAttribute  = "status"
)

// RecordDataKey is the key under which the attribute bag is serialized. Upstream payloads
// occasionally nest a second bag under the same key.
const RecordDataKey = "data"

// DefaultSystemColumns are never part of the comparable column set.
var DefaultSystemColumns = []string{
	"id",
	"table_id",
	"org_id",
	"created_at",
	"updated_at",
	"created_by",
}

const (
	DefaultMatchThreshold = 0.8
	DefaultMaxBatchSize   = 1000
	MaxBatchSizeLimit     = 10000
)

// Operations used for scope validation.
const (
	OperationViewDuplicates   = "duplicates:view"
	OperationDeleteDuplicates = "duplicates:delete"
)
