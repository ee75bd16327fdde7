package database

import (
	"fmt"
	"strings"
)

// ConstructDatabaseURL appends the database name to a server URL, keeping any
// query parameters, and defaults sslmode to disable. An empty databaseName
// returns baseURL unchanged.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	base, query, hasQuery := strings.Cut(strings.TrimRight(baseURL, "/"), "?")
	base = strings.TrimRight(base, "/")

	params := []string{}
	if hasQuery && query != "" {
		params = append(params, query)
	}
	if !strings.Contains(query, "sslmode=") {
		params = append(params, "sslmode=disable")
	}

	return fmt.Sprintf("%s/%s?%s", base, databaseName, strings.Join(params, "&"))
}
