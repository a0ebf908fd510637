package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchconnect/standings-engine/internal/domain/standings"
)

// StandingsExport carries CSV content together with the filename the client
// should save it under.
type StandingsExport struct {
	Filename    string
	ContentType string
	Content     string
}

type ExportService struct {
	standingsService *StandingsService
}

func NewExportService(standingsService *StandingsService) *ExportService {
	return &ExportService{
		standingsService: standingsService,
	}
}

// StandingsCSV renders the competition's current table as CSV using the
// sport's declared column set.
func (s *ExportService) StandingsCSV(ctx context.Context, competitionID string) (StandingsExport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.StandingsCSV")
	defer span.End()

	table, err := s.standingsService.Table(ctx, competitionID)
	if err != nil {
		return StandingsExport{}, err
	}

	content, err := standings.ExportCSV(table.Rows, table.Rules.StandingsColumns)
	if err != nil {
		return StandingsExport{}, fmt.Errorf("render standings csv: %w", err)
	}

	return StandingsExport{
		Filename:    exportFilename(table.Competition.Code, table.Competition.Season),
		ContentType: "text/csv; charset=utf-8",
		Content:     content,
	}, nil
}

func exportFilename(code, season string) string {
	code = sanitizeFilenamePart(code)
	if code == "" {
		code = "competition"
	}
	season = sanitizeFilenamePart(season)
	if season == "" {
		return code + "_standings.csv"
	}
	return code + "_standings_" + season + ".csv"
}

func sanitizeFilenamePart(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '/':
			b.WriteRune('-')
		}
	}
	return b.String()
}
