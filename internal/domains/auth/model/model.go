package model

// SessionKeyPrefix namespaces admin sessions in the cache.
const SessionKeyPrefix = "session"
