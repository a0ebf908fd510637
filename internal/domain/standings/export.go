package standings

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

// ExportCSV serializes a standings table to RFC 4180 CSV: one header line
// followed by one line per row, fields in the declared column order. Values
// containing the delimiter, quotes, or newlines are quoted by the encoder,
// so team names never corrupt the export.
func ExportCSV(rows []Row, columns []sport.Column) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("export columns are required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)

	header := make([]string, 0, len(columns))
	for _, column := range columns {
		header = append(header, string(column))
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("write export header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for idx, column := range columns {
			record[idx] = columnValue(row, column)
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write export row team=%s: %w", row.TeamID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}

	return buf.String(), nil
}

func columnValue(row Row, column sport.Column) string {
	switch column {
	case sport.ColumnPosition:
		return strconv.Itoa(row.Position)
	case sport.ColumnTeam:
		if row.TeamName != "" {
			return row.TeamName
		}
		return row.TeamID
	case sport.ColumnPlayed:
		return strconv.Itoa(row.Stats.Played)
	case sport.ColumnWon:
		return strconv.Itoa(row.Stats.Won)
	case sport.ColumnDrawn:
		return strconv.Itoa(row.Stats.Drawn)
	case sport.ColumnLost:
		return strconv.Itoa(row.Stats.Lost)
	case sport.ColumnGoalsFor:
		return strconv.Itoa(row.Stats.GoalsFor)
	case sport.ColumnGoalsAgainst:
		return strconv.Itoa(row.Stats.GoalsAgainst)
	case sport.ColumnGoalDifference:
		return strconv.Itoa(row.Stats.GoalDifference)
	case sport.ColumnPoints:
		return strconv.Itoa(row.Stats.Points)
	case sport.ColumnForm:
		return row.Stats.FormString()
	case sport.ColumnNetRunRate:
		return strconv.FormatFloat(row.Stats.NetRunRate, 'f', 3, 64)
	default:
		return ""
	}
}
