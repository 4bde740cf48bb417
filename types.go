package kvargs

import (
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Builtin coercions. Any of these can be passed to Type.

func String(s string) string {
	return s
}

func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

func Float(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

func Duration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

func URL(s string) (*url.URL, error) {
	return url.Parse(s)
}

func IP(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, errors.Errorf("not an IP address: %q", s)
	}
	return ip, nil
}

func TCPAddr(s string) (*net.TCPAddr, error) {
	return net.ResolveTCPAddr("tcp", s)
}

// A cleaned file path. It need not exist.
func Path(s string) string {
	return filepath.Clean(s)
}

func ExistingPath(s string) (string, error) {
	p := filepath.Clean(s)
	if _, err := os.Stat(p); err != nil {
		return "", errors.Errorf("%q does not exist", p)
	}
	return p, nil
}

func UUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// A semantic version, such as 1.2.3 or v2.0.0-rc1.
func Version(s string) (*semver.Version, error) {
	return semver.NewVersion(s)
}

// Decodes an inline YAML value, so that list=[1,2] binds a []interface{}.
func YAML(s string) (ret interface{}, err error) {
	err = yaml.Unmarshal([]byte(s), &ret)
	return
}

// Accepts slog level names like "debug" and "warn+2".
func LogLevel(s string) (l slog.Level, err error) {
	err = l.UnmarshalText([]byte(s))
	return
}

// Returns a coercion accepting integers in [min, max].
func IntRange(min, max int) func(string) (int, error) {
	return func(s string) (int, error) {
		i, err := Int(s)
		if err != nil {
			return 0, err
		}
		if i < min || i > max {
			return 0, errors.Errorf("%d not within %d and %d", i, min, max)
		}
		return i, nil
	}
}
