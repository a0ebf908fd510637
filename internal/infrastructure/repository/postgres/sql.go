package postgres

import (
	"database/sql"
	"errors"
	"strings"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "bind message supplies") &&
		strings.Contains(text, "prepared statement") &&
		strings.Contains(text, "requires")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	if strings.Contains(text, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(text, "prepared statement") && strings.Contains(text, "26000")
}
