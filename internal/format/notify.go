package format

// Notifier surfaces mutation outcomes to the user. It satisfies the notifier
// interface expected by the mutate package.
type Notifier struct{}

// NewNotifier creates a terminal notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Success announces a completed write
func (n *Notifier) Success(message string) {
	PrintSuccess("✓ %s", message)
}

// Failure announces a rejected or failed write
func (n *Notifier) Failure(message string) {
	PrintError("✗ %s", message)
}
