package checkpointer

import "fmt"

// fileEnumerator enumerates filenames
type fileEnumerator struct {
	next      int
	name      string
	extension string
}

// filename returns the name of the next enumerated file. Counters are
// zero padded so that checkpoints sort in the order they were taken.
func (f *fileEnumerator) filename() string {
	name := fmt.Sprintf("%v-%06d%v", f.name, f.next, f.extension)
	f.next++
	return name
}

// FilenameEnumerator returns a function which will return filenames
// with a counter suffix, starting at start and increasing by one on
// each call. For example, FilenameEnumerator(1, "qtable", ".bin")
// returns qtable-000001.bin, then qtable-000002.bin, and so on.
func FilenameEnumerator(start int, filename, extension string) func() string {
	enum := fileEnumerator{next: start, name: filename, extension: extension}

	return enum.filename
}
