package app

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-reference/internal/config"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// A multi-row VALUES list as emitted by the query builder: ($1, $2), ($3, $4), ...
	queryValuesListRegex = regexp.MustCompile(`VALUES (\([^()]*\))(?:, \([^()]*\))+`)
)

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", dbNameFromURL(dsn), err)
	}

	return db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database failed", "error", err)
	}
}

// normalizeDBURL sets disable_prepared_binary_result=yes on URL-style DSNs unless the caller
// already chose a value. Key/value DSNs pass through untouched.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}
	return ""
}

// formatDBQueryForTrace flattens whitespace and folds the bulk game and stat-line inserts down
// to their first row, so the ON CONFLICT clause survives the length cap.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = queryValuesListRegex.ReplaceAllStringFunc(normalized, func(values string) string {
		first := queryValuesListRegex.FindStringSubmatch(values)[1]
		rows := strings.Count(values, "), (") + 1
		return fmt.Sprintf("VALUES %s /* %d rows */", first, rows)
	})
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
