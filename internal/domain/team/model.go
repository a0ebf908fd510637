package team

// Team represents one club side registered in a competition.
type Team struct {
	ID            string
	CompetitionID string
	Name          string
	Short         string
}
