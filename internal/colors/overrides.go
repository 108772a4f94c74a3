package colors

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Overrides maps role keys (see Role.Key) to 256-color codes.
type Overrides map[string]uint8

// ParseOverrides reads KEY=<0-255> lines. Blank lines, # comments, unknown
// keys and malformed or out-of-range values are skipped. A trailing "_CODE"
// on the key is accepted.
func ParseOverrides(r io.Reader) Overrides {
	out := Overrides{}
	if r == nil {
		return out
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		key = strings.TrimSuffix(key, "_CODE")
		if _, known := RoleByKey(key); !known {
			continue
		}
		code, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || code < 0 || code > 255 {
			continue
		}
		out[key] = uint8(code)
	}
	return out
}

// LoadOverrides reads an override file. On any read failure it returns an
// empty set together with the error, so callers can log and carry on.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Overrides{}, err
	}
	defer f.Close()
	return ParseOverrides(f), nil
}
