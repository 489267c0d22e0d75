package drive

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var folderPathRe = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)

// FolderID extracts the folder ID from a Google Drive URL, accepting both
// the /folders/ path form and the ?id= query form.
func FolderID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if m := folderPathRe.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if u, err := url.Parse(ref); err == nil {
		if id := u.Query().Get("id"); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("cannot parse drive folder id from %q", ref)
}
