package checkpointer

import "fmt"

// nStep implements checkpointing every N ticks
type nStep struct {
	interval int
	object   Serializable // Object to save

	// filename returns the string filename of the file to save the object
	// in.
	//
	// If each serialized object should be saved in a separate file with
	// each file having an incremented number as a suffix (e.g.
	// file1.bin, file2.bin, ..., fileK.bin), then simply use the
	// static function FilenameEnumerator, which will return a function
	// that will enumerate filenames.
	//
	// Otherwise, if each serialized object should be saved in a
	// separate file, but the filename does not matter, use the
	// static function FileTimer to generate the required naming
	// function. To overwrite a single file, use Fixed. For example:
	//
	// n := NewNStep(10, object, FileTimer("filename", ".bin"))
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n ticks
func NewNStep(n int, object Serializable,
	filename func() string) Checkpointer {
	if n <= 0 {
		panic(fmt.Sprintf("newNStep: interval must be positive, have %d", n))
	}

	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}
}

// Checkpoint checkpoints the Checkpointer's tracked object by calling
// its Save() method on every tick that is a multiple of the interval
func (n *nStep) Checkpoint(tick int) error {
	if tick > 0 && tick%n.interval == 0 {
		if err := n.object.Save(n.filename()); err != nil {
			return fmt.Errorf("checkpoint: tick %d: %v", tick, err)
		}
	}
	return nil
}
