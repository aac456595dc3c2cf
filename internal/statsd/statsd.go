// Package statsd implements the minimal dogstatsd subset the collector
// needs: gauge samples with tags, one UDP datagram each.
package statsd

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"unicode"
)

// Client sends gauge datagrams to a dogstatsd-compatible agent. Delivery
// is fire-and-forget: UDP gives no confirmation, nothing is retried, and a
// dropped sample is superseded by the next scheduled run.
type Client struct {
	conn net.Conn
}

// Dial resolves addr (host:port) and binds a UDP socket to it.
func Dial(addr string) (*Client, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial metrics agent: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Close releases the socket.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Gauge sends a single gauge sample. The returned error reports a local
// write failure only; a datagram that left the socket counts as sent.
func (c *Client) Gauge(name string, value int, tags []string) error {
	_, err := c.conn.Write([]byte(FormatGauge(name, value, tags)))
	return err
}

// Printer writes formatted gauge lines to W, one per line, instead of a
// socket. Used for dry runs.
type Printer struct {
	W io.Writer
}

func (p Printer) Gauge(name string, value int, tags []string) error {
	_, err := fmt.Fprintln(p.W, FormatGauge(name, value, tags))
	return err
}

// FormatGauge renders one gauge line: name:value|g|#tag1,tag2
// No trailing newline - a datagram carries exactly one sample.
func FormatGauge(name string, value int, tags []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(value))
	b.WriteString("|g")
	if len(tags) > 0 {
		b.WriteString("|#")
		b.WriteString(strings.Join(tags, ","))
	}
	return b.String()
}

// SanitizeTagValue lowercases v and rewrites any character that would
// collide with the wire format's delimiters (comma between tags, colon
// inside a tag, pipe between fields) or whitespace to an underscore.
// Hyphens are legal tag characters and pass through.
func SanitizeTagValue(v string) string {
	v = strings.ToLower(v)
	return strings.Map(func(r rune) rune {
		if r == ',' || r == ':' || r == '|' || unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, v)
}
