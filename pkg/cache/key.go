package cache

import (
	"fmt"
	"strconv"
)

// Key identifies one cached marketplace page. Two keys collide only when
// both the page number and the family filter are equal.
type Key struct {
	// Page is the 1-based page number.
	Page int

	// ModelFamily is the optional family filter the page was fetched with
	// (empty for unfiltered listings).
	ModelFamily string
}

// Filename returns the deterministic cache file name for this key, e.g.
// "models_page1.json" or "models_page2_DeepSeek.json". Pure: no I/O.
func (k Key) Filename() string {
	name := "models_page" + strconv.Itoa(k.Page)
	if k.ModelFamily != "" {
		name += "_" + k.ModelFamily
	}
	return name + ".json"
}

// String returns the Redis key form, e.g. "models:page:2:family:DeepSeek".
func (k Key) String() string {
	if k.ModelFamily != "" {
		return fmt.Sprintf("models:page:%d:family:%s", k.Page, k.ModelFamily)
	}
	return fmt.Sprintf("models:page:%d", k.Page)
}
