package ports

// Notifier shows a transient, fire-and-forget message to the user.
// Implementations must not stack: a notification raised while the
// previous one is still visible is dropped.
type Notifier interface {
	Notify(message string)
}
