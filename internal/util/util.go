package util

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"time"
)

// ChecksumReader hashes and counts everything read through it.
type ChecksumReader struct {
	reader io.Reader
	hash   hash.Hash
	read   int64
}

// NewChecksumReader wraps r with a SHA256 digest.
func NewChecksumReader(r io.Reader) *ChecksumReader {
	h := sha256.New()

	return &ChecksumReader{reader: io.TeeReader(r, h), hash: h}
}

func (c *ChecksumReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.read += int64(n)

	return n, err //nolint:wrapcheck // io.Reader contract requires the raw error (io.EOF).
}

// Checksum returns the hex SHA256 of the bytes read so far.
func (c *ChecksumReader) Checksum() string {
	return fmt.Sprintf("%x", c.hash.Sum(nil))
}

// BytesRead returns the number of bytes read so far.
func (c *ChecksumReader) BytesRead() int64 {
	return c.read
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
