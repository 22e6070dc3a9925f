// Package checkpointer implements periodic saving of learned state
// during an experiment
package checkpointer

// Serializable is an object that can be saved to a file
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on the
// number of ticks an experiment has run
type Checkpointer interface {
	Checkpoint(tick int) error
}
