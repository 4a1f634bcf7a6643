package common

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SplitCSV splits a comma-separated flag value, dropping blanks.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// FilterResultFields converts result to a map keyed by its json field names
// and keeps only the requested keys. An empty fieldsStr keeps everything;
// a requested key the result does not have is an error.
func FilterResultFields(result interface{}, fieldsStr string) (map[string]interface{}, error) {
	fullMap, err := structToMap(result)
	if err != nil {
		return nil, err
	}
	requested := SplitCSV(fieldsStr)
	if len(requested) == 0 {
		return fullMap, nil
	}

	filtered := make(map[string]interface{}, len(requested))
	var unknown []string
	for _, field := range requested {
		value, ok := fullMap[field]
		if !ok {
			unknown = append(unknown, field)
			continue
		}
		filtered[field] = value
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown field(s) %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(sortedKeys(fullMap), ", "))
	}
	return filtered, nil
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("error marshalling result: %w", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("error converting result to map: %w", err)
	}
	return result, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
