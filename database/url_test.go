package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructDatabaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		baseURL      string
		databaseName string
		want         string
	}{
		{
			name:         "no database name returns base unchanged",
			baseURL:      "postgres://u:p@localhost:5432/raffler",
			databaseName: "",
			want:         "postgres://u:p@localhost:5432/raffler",
		},
		{
			name:         "appends name and sslmode",
			baseURL:      "postgres://u:p@localhost:5432",
			databaseName: "raffler",
			want:         "postgres://u:p@localhost:5432/raffler?sslmode=disable",
		},
		{
			name:         "trailing slash is dropped",
			baseURL:      "postgres://u:p@localhost:5432/",
			databaseName: "raffler",
			want:         "postgres://u:p@localhost:5432/raffler?sslmode=disable",
		},
		{
			name:         "existing query parameters are kept",
			baseURL:      "postgres://u:p@localhost:5432?connect_timeout=5",
			databaseName: "raffler",
			want:         "postgres://u:p@localhost:5432/raffler?connect_timeout=5&sslmode=disable",
		},
		{
			name:         "explicit sslmode is respected",
			baseURL:      "postgres://u:p@db:5432?sslmode=require",
			databaseName: "raffler",
			want:         "postgres://u:p@db:5432/raffler?sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ConstructDatabaseURL(tt.baseURL, tt.databaseName))
		})
	}
}
