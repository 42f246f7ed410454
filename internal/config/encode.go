package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encode writes the settings in the canonical file format: a single [mysql]
// section with the four keys in fixed order. Reloading the output yields an
// equal record.
func (s ConnectionSettings) Encode(w io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[mysql]")
	fmt.Fprintf(bw, "host = %s\n", s.Host)
	fmt.Fprintf(bw, "port = %d\n", s.Port)
	fmt.Fprintf(bw, "user = %s\n", s.User)
	fmt.Fprintf(bw, "pass = %s\n", s.Pass)
	return bw.Flush()
}

// WriteFile encodes the settings to path with owner-only permissions, since
// the file carries a credential.
func (s ConnectionSettings) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
