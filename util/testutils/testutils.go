package testutils

import (
	"fmt"
	"net"
	"strings"
)

/*
General purpose test utilities.
*/

////////////////////////////////////////////////////////////////////////////////

// GetOpenPort returns an open port that can be used for testing.
func GetOpenPort() (int, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, fmt.Errorf("failed to get open port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// StripSpace removes all newlines and repeated spaces from a string.
func StripSpace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	// replace runs of multiple spaces with a single space
	s = strings.Join(strings.Fields(s), " ")
	return s
}
