package i18n

// Report message keys registered in every locale catalog.
const (
	// ReportEventHeadingKey formats an event line: id, type, arena, city, date.
	ReportEventHeadingKey = "report.event_heading"
	// ReportParticipantsHeadingKey labels the participant summary block.
	ReportParticipantsHeadingKey = "report.participants_heading"
	// ReportBeastsHeadingKey labels the beast summary block.
	ReportBeastsHeadingKey = "report.beasts_heading"
	// ReportNoEventsKey is printed when the database holds no events.
	ReportNoEventsKey = "report.no_events"
	// ReportStatsHeadingKey labels the table-count block.
	ReportStatsHeadingKey = "report.stats_heading"
	// ReportArenaEventsHeadingKey labels the per-arena event counts.
	ReportArenaEventsHeadingKey = "report.arena_events_heading"
	// ReportFindingsHeadingKey labels the integrity findings block.
	ReportFindingsHeadingKey = "report.findings_heading"
	// ReportNoFindingsKey is printed when the integrity audit is clean.
	ReportNoFindingsKey = "report.no_findings"
)
