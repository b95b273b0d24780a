package images

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys names stored image objects as {prefix}/{bottle_id}_{sequence}.{ext}.
type Keys struct {
	Prefix    string
	Extension string
}

func (k Keys) Key(bottleID uint, sequence int) string {
	name := fmt.Sprintf("%d_%d.%s", bottleID, sequence, k.Extension)
	if k.Prefix == "" {
		return name
	}

	return k.Prefix + "/" + name
}

// Held names the copy kept of an image while a removal is pending.
func (k Keys) Held(bottleID uint, sequence int) string {
	return k.Key(bottleID, sequence) + ".held"
}

// ListPrefix is the prefix every image key starts with.
func (k Keys) ListPrefix() string {
	if k.Prefix == "" {
		return ""
	}

	return k.Prefix + "/"
}

// Parse reverses Key and Held. Any extension is accepted so images stored
// under an earlier format are still recognised.
func (k Keys) Parse(key string) (uint, int, bool) {
	name, found := strings.CutPrefix(key, k.ListPrefix())
	if !found || strings.Contains(name, "/") {
		return 0, 0, false
	}

	name, _, _ = strings.Cut(name, ".")

	idPart, sequencePart, found := strings.Cut(name, "_")
	if !found {
		return 0, 0, false
	}

	bottleID, err := strconv.ParseUint(idPart, 10, 0)
	if err != nil || bottleID == 0 {
		return 0, 0, false
	}

	sequence, err := strconv.Atoi(sequencePart)
	if err != nil || sequence < 1 {
		return 0, 0, false
	}

	return uint(bottleID), sequence, true
}
