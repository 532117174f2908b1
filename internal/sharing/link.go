package sharing

import (
	"errors"
	"fmt"
	"net/url"
	"sharecart/pkg/domain"
	"strconv"
	"strings"
)

const linkPrefix = "/share/"

// Link identifies a shared cart together with the timestamp and token that
// prove access to it.
type Link struct {
	CartID    domain.CartID
	Timestamp int64
	Token     string
}

// Path renders the link as /share/{cartID}/{timestamp}/{token}.
func (l Link) Path() string {
	return fmt.Sprintf("%s%d/%d/%s", linkPrefix, l.CartID, l.Timestamp, url.PathEscape(l.Token))
}

// URL joins the link path to baseURL.
func (l Link) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + l.Path()
}

// ParseLink is the inverse of Link.Path. Trailing segments are rejected.
func ParseLink(path string) (Link, error) {
	rest, ok := strings.CutPrefix(path, linkPrefix)
	if !ok {
		return Link{}, fmt.Errorf("link %q does not start with %s", path, linkPrefix)
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return Link{}, fmt.Errorf("link %q must have cart id, timestamp and token", path)
	}

	return NewLink(parts[0], parts[1], parts[2])
}

// NewLink builds a Link from raw path values.
func NewLink(cartID, timestamp, token string) (Link, error) {
	id, err := strconv.ParseInt(cartID, 10, 64)
	if err != nil || id <= 0 {
		return Link{}, fmt.Errorf("invalid cart id %q", cartID)
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return Link{}, fmt.Errorf("invalid timestamp %q", timestamp)
	}

	if token == "" {
		return Link{}, errors.New("empty token")
	}

	return Link{CartID: domain.CartID(id), Timestamp: ts, Token: token}, nil
}
