package editor

import (
	"sort"
	"strconv"
	"strings"
)

// splitColorKey splits "colors.<name>.<attr>".
func splitColorKey(key string) (name, attr string, ok bool) {
	rest, found := strings.CutPrefix(key, "colors.")
	if !found {
		return "", "", false
	}
	name, attr, ok = strings.Cut(rest, ".")
	return name, attr, ok
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on":
		return true, nil
	case "off", "":
		return false, nil
	}
	return strconv.ParseBool(v)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
