// Package location models the page location an admin client is served from.
package location

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zhulik/ccpadmin/internal/core"
)

var ErrInvalidOrigin = errors.New("invalid origin")

// Location holds the parts of a page location the API base URL is built from.
// Protocol keeps its trailing colon and Port is empty when the scheme default
// is used, the same way a browser reports them.
type Location struct {
	Protocol string
	Hostname string
	Port     string
}

// Parse builds a Location from an absolute URL such as https://admin.example.org:8443/.
func Parse(origin string) (Location, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}

	if u.Scheme == "" || u.Hostname() == "" {
		return Location{}, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidOrigin, origin)
	}

	hostname := u.Hostname()
	if strings.Contains(hostname, ":") {
		hostname = "[" + hostname + "]"
	}

	return Location{
		Protocol: u.Scheme + ":",
		Hostname: hostname,
		Port:     u.Port(),
	}, nil
}

// BaseURL returns {protocol}//{hostname}:{port}/api.
func (l Location) BaseURL() string {
	return fmt.Sprintf("%s//%s:%s%s", l.Protocol, l.Hostname, l.Port, core.APIPathPrefix)
}

func (l Location) String() string {
	if l.Port == "" {
		return fmt.Sprintf("%s//%s", l.Protocol, l.Hostname)
	}

	return fmt.Sprintf("%s//%s:%s", l.Protocol, l.Hostname, l.Port)
}
