package nav

// Actuator is the optional command/response channel to an external
// robot controller. The loop sends every chosen command and blocks on
// its acknowledgement before taking the next step; after arrival it
// sends one final GoalCommand.
type Actuator interface {
	// Send forwards a command string (UP, DOWN, LEFT, RIGHT, NONE or GOAL).
	Send(command string) error

	// Ack blocks until the acknowledgement for the last sent command
	// arrives and returns its payload.
	Ack() (string, error)

	// Close releases the channel.
	Close() error
}
