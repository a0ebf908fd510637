// Package querybuilder assembles Postgres statements with $n placeholders.
// It covers exactly the shapes the repositories need: filtered selects,
// upsert-style inserts, and soft-delete updates.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one WHERE predicate. Conditions chain with AND.
type Condition interface {
	writeTo(sb *strings.Builder, args *[]any, n *int)
}

type eqCond struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCond{column: column, value: value}
}

func (c eqCond) writeTo(sb *strings.Builder, args *[]any, n *int) {
	sb.WriteString(c.column)
	sb.WriteString(" = ")
	sb.WriteString(placeholder(*n))
	*args = append(*args, c.value)
	*n++
}

type isNullCond string

func IsNull(column string) Condition {
	return isNullCond(column)
}

func (c isNullCond) writeTo(sb *strings.Builder, _ *[]any, _ *int) {
	sb.WriteString(string(c))
	sb.WriteString(" IS NULL")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	n := 1
	writeWhere(&sb, b.where, &args, &n)
	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(b.limit))
	}

	return sb.String(), args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// Suffix appends raw SQL after the VALUES clause, typically an
// ON CONFLICT ... DO UPDATE block or a RETURNING clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(b.values), len(b.columns))
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(") VALUES (")

	args := make([]any, 0, len(b.values))
	for i, value := range b.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholder(i + 1))
		args = append(args, value)
	}
	sb.WriteString(")")

	if b.suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(b.suffix)
	}

	return sb.String(), args, nil
}

type setClause struct {
	column string
	value  any
	// raw SET expressions (NOW(), column arithmetic) skip placeholder binding.
	rawExpr string
}

type UpdateBuilder struct {
	table string
	sets  []setClause
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, rawExpr: expr})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")

	args := make([]any, 0, len(b.sets)+len(b.where))
	n := 1
	for i, s := range b.sets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.column)
		sb.WriteString(" = ")
		if s.rawExpr != "" {
			sb.WriteString(s.rawExpr)
			continue
		}
		sb.WriteString(placeholder(n))
		args = append(args, s.value)
		n++
	}

	writeWhere(&sb, b.where, &args, &n)

	return sb.String(), args, nil
}

func writeWhere(sb *strings.Builder, conditions []Condition, args *[]any, n *int) {
	if len(conditions) == 0 {
		return
	}
	sb.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		c.writeTo(sb, args, n)
	}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
