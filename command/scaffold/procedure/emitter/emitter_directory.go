package emitter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
)

// Directory makes sure directory exists. An existing directory is not an error;
// anything else that prevents creating it is.
func (r *Emitter) Directory(ctx context.Context, directory string) error {
	info, err := r.Filesystem.Stat(directory)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", directory)
		}
		if r.Verbose {
			log.Printf("directory already exists: %s", directory)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to access directory %s: %w", directory, err)
	}

	if err := r.Filesystem.MkdirAll(directory, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("unable to create directory %s: %w", directory, err)
	}
	r.Instrument.DirectoryCreated(ctx)

	return nil
}
