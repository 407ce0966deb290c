package version

import (
	"errors"
	"strconv"

	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/indigo-web/httpwire/transcode"
)

var ErrMalformed = errors.New("malformed version")

// Version is the protocol version of a message's start line. The wire form
// is "HTTP/<major>[.<minor>]": a zero minor is omitted, so HTTP/1.0 reads
// back as "HTTP/1".
type Version struct {
	Major, Minor uint8
}

// Parse consumes a version literal off the cursor.
func Parse(c *bytecursor.Cursor) (Version, error) {
	if c.Len() < len("HTTP/1") || !c.AdvanceString("HTTP/") {
		return Version{}, ErrMalformed
	}

	if c.Len() >= len("1.1") && c.At(1) == '.' {
		major, minor := transcode.Digit(c.At(0)), transcode.Digit(c.At(2))
		if major >= 10 || minor >= 10 {
			return Version{}, ErrMalformed
		}

		c.Take(3)
		return Version{Major: major, Minor: minor}, nil
	}

	major := transcode.Digit(c.At(0))
	if major >= 10 {
		return Version{}, ErrMalformed
	}

	c.Take(1)
	return Version{Major: major}, nil
}

// AppendTo writes the wire form.
func (v Version) AppendTo(buff []byte) []byte {
	buff = append(buff, "HTTP/"...)
	buff = append(buff, '0'+v.Major)
	if v.Minor != 0 {
		buff = append(buff, '.', '0'+v.Minor)
	}

	return buff
}

func (v Version) String() string {
	if v.Minor == 0 {
		return "HTTP/" + strconv.Itoa(int(v.Major))
	}

	return "HTTP/" + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}
