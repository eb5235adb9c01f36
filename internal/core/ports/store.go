package ports

// Keys under which the durable session snapshot is persisted. The trio is
// written piecewise on every successful mutation and removed together on
// logout.
const (
	KeyToken     = "token"
	KeyUser      = "user"
	KeyCompanies = "userCompanies"
)

// Store is the durable key-value medium the session snapshot is mirrored to.
// Operations are synchronous and do not fail under normal operation; an
// implementation that hits an unrecoverable medium failure may terminate the
// process. Readers must tolerate the store being unexpectedly empty at any
// point (the medium can be cleared externally).
type Store interface {
	Set(key, value string)
	Get(key string) (string, bool)
	Remove(key string)
}
