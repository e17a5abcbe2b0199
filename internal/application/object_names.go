package application

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultImageExt = ".jpg"

// objectNamer derives object names from the current time plus the original
// file extension. Names are strictly increasing within one process.
type objectNamer struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newObjectNamer() *objectNamer {
	return &objectNamer{now: time.Now}
}

func (n *objectNamer) next(filename string) string {
	n.mu.Lock()
	stamp := n.now().UnixNano()
	if stamp <= n.last {
		stamp = n.last + 1
	}
	n.last = stamp
	n.mu.Unlock()

	return strconv.FormatInt(stamp, 10) + extensionOf(filename)
}

func extensionOf(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || ext == "." || len(ext) > 6 {
		return defaultImageExt
	}
	return ext
}
