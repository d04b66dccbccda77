package loader

import (
	"fmt"
	"io"
)

// Summary holds the counts reported at the end of a run.
type Summary struct {
	Movies    int
	Directors int
	Genres    int
}

// Print writes the three summary lines to w.
func (s Summary) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Inserted %d movies into 'movie' table.\n"+
			"Inserted %d directors into 'director' table.\n"+
			"Inserted %d genres into 'genre' table.\n",
		s.Movies, s.Directors, s.Genres,
	)
	return err
}
