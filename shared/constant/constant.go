package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession   contextKey = "session"
	ContextKeySessionID contextKey = "session_id"
)

const (
	RoleAdmin = "admin"
)

const (
	RequestParamLimit   = "limit"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID        = "id"
	RequestParamAvailable = "available"
	RequestMaxBodyBytes   = 1 << 20 // 1 MB
)

const (
	DefaultValueRecentBookings = 10
)

const (
	DateFormat     = time.RFC3339
	CalendarFormat = "2006-01-02"
	HoursPerDay    = 24
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStorageScopeName    = "storage"
	OtelEventScopeName      = "event"

	OtelBlobAttributeKey = "blob"
	OtelS3ScopeName      = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	ResponseHeaderRetryAfter        = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	StorageDriverFile     = "file"
	StorageDriverS3       = "s3"
	StorageDriverPostgres = "postgres"
)

const (
	CacheDriverMemory    = "memory"
	CacheDriverRedis     = "redis"
	CacheDriverMemcached = "memcached"
)

const (
	Asterix = "*"
	Empty   = ""
)
