package ports

// KeyValueSlot is a durable string store addressed by key.
// Get returns domain.ErrSlotEmpty when nothing is stored under key.
type KeyValueSlot interface {
	Get(key string) (string, error)
	Remove(key string) error
	Set(key, value string) error
}
