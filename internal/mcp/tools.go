package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ArenaCreateInput represents the MCP tool input for creating an arena.
type ArenaCreateInput struct {
	Name     string `json:"name" jsonschema:"arena name"`
	City     string `json:"city" jsonschema:"city hosting the arena"`
	Capacity int64  `json:"capacity" jsonschema:"spectator capacity, must be positive"`
}

// ArenaCreateResult represents the MCP tool output for creating an arena.
type ArenaCreateResult struct {
	ID       int64  `json:"id" jsonschema:"arena identifier"`
	Name     string `json:"name" jsonschema:"arena name"`
	City     string `json:"city" jsonschema:"city hosting the arena"`
	Capacity int64  `json:"capacity" jsonschema:"spectator capacity"`
}

// ArenaListInput represents the MCP tool input for listing arenas.
type ArenaListInput struct{}

// ArenaRow is one arena in a listing.
type ArenaRow struct {
	ID       int64  `json:"id" jsonschema:"arena identifier"`
	Name     string `json:"name" jsonschema:"arena name"`
	City     string `json:"city" jsonschema:"city hosting the arena"`
	Capacity int64  `json:"capacity" jsonschema:"spectator capacity"`
}

// ArenaListResult represents the MCP tool output for listing arenas.
type ArenaListResult struct {
	Arenas []ArenaRow `json:"arenas" jsonschema:"arenas ordered by name"`
	Count  int        `json:"count" jsonschema:"number of arenas"`
}

// EventCreateInput represents the MCP tool input for scheduling an event.
type EventCreateInput struct {
	ArenaID   int64  `json:"arena_id" jsonschema:"hosting arena identifier"`
	Date      string `json:"date" jsonschema:"event date in YYYY-MM-DD form"`
	EventType string `json:"event_type" jsonschema:"free-form event description"`
}

// EventCreateResult represents the MCP tool output for scheduling an event.
type EventCreateResult struct {
	ID        int64  `json:"id" jsonschema:"event identifier"`
	ArenaID   int64  `json:"arena_id" jsonschema:"hosting arena identifier"`
	Date      string `json:"date" jsonschema:"event date in YYYY-MM-DD form"`
	EventType string `json:"event_type" jsonschema:"event description"`
}

// EventDeleteInput represents the MCP tool input for deleting an event.
type EventDeleteInput struct {
	EventID int64 `json:"event_id" jsonschema:"event identifier"`
}

// EventDeleteResult represents the MCP tool output for deleting an event.
// Deleting an unknown event reports deleted=false rather than an error.
type EventDeleteResult struct {
	EventID int64 `json:"event_id" jsonschema:"event identifier"`
	Deleted bool  `json:"deleted" jsonschema:"whether an event row was removed"`
}

// EventDetailsInput represents the MCP tool input for reading event details.
type EventDetailsInput struct {
	EventID int64 `json:"event_id" jsonschema:"event identifier"`
}

// EventDetailsResult represents the MCP tool output for reading event details.
type EventDetailsResult struct {
	EventID   int64  `json:"event_id" jsonschema:"event identifier"`
	Date      string `json:"date" jsonschema:"event date in YYYY-MM-DD form"`
	EventType string `json:"event_type" jsonschema:"event description"`
	Arena     string `json:"arena" jsonschema:"hosting arena name"`
	City      string `json:"city" jsonschema:"hosting city"`
}

// ParticipantUpsertInput represents the MCP tool input for recording a
// participant contingent. Existing rows with the same event and type are
// overwritten; otherwise a new row is inserted.
type ParticipantUpsertInput struct {
	EventID  int64   `json:"event_id" jsonschema:"event identifier"`
	Type     string  `json:"type" jsonschema:"participant type label (gladiator, retiarius, barbarian, ...)"`
	Count    int64   `json:"count" jsonschema:"number of fighters, must not be negative"`
	Strength string  `json:"strength" jsonschema:"strength level (novice, experienced, veteran)"`
	Cost     float64 `json:"cost,omitempty" jsonschema:"total cost of fielding the contingent"`
	Age      int64   `json:"age,omitempty" jsonschema:"average age in years"`
	Battles  int64   `json:"battles,omitempty" jsonschema:"average prior battle count"`
}

// ParticipantUpsertResult represents the MCP tool output for recording a
// participant contingent.
type ParticipantUpsertResult struct {
	EventID  int64   `json:"event_id" jsonschema:"event identifier"`
	Type     string  `json:"type" jsonschema:"participant type label"`
	Count    int64   `json:"count" jsonschema:"number of fighters"`
	Strength string  `json:"strength" jsonschema:"strength level"`
	Cost     float64 `json:"cost" jsonschema:"total cost of fielding the contingent"`
	Age      int64   `json:"age" jsonschema:"average age in years"`
	Battles  int64   `json:"battles" jsonschema:"average prior battle count"`
}

// ParticipantListInput represents the MCP tool input for listing the
// participant contingents of an event.
type ParticipantListInput struct {
	EventID int64 `json:"event_id" jsonschema:"event identifier"`
}

// ParticipantRow is one participant contingent in a listing.
type ParticipantRow struct {
	ID       int64   `json:"id" jsonschema:"participant row identifier"`
	Type     string  `json:"type" jsonschema:"participant type label"`
	Count    int64   `json:"count" jsonschema:"number of fighters"`
	Strength string  `json:"strength" jsonschema:"strength level"`
	Cost     float64 `json:"cost" jsonschema:"total cost of fielding the contingent"`
	Age      int64   `json:"age" jsonschema:"average age in years"`
	Battles  int64   `json:"battles" jsonschema:"average prior battle count"`
}

// ParticipantListResult represents the MCP tool output for listing
// participant contingents.
type ParticipantListResult struct {
	EventID      int64            `json:"event_id" jsonschema:"event identifier"`
	Participants []ParticipantRow `json:"participants" jsonschema:"contingents ordered by type"`
	Count        int              `json:"count" jsonschema:"number of contingent rows"`
}

// BeastAddInput represents the MCP tool input for adding a beast group.
type BeastAddInput struct {
	EventID       int64  `json:"event_id" jsonschema:"event identifier"`
	Species       string `json:"species" jsonschema:"beast species label (lion, leopard, jackal, baboon)"`
	Count         int64  `json:"count" jsonschema:"number of animals, must not be negative"`
	Strength      int64  `json:"strength,omitempty" jsonschema:"strength rating"`
	Speed         int64  `json:"speed,omitempty" jsonschema:"speed rating"`
	Entertainment int64  `json:"entertainment,omitempty" jsonschema:"entertainment rating"`
}

// BeastAddResult represents the MCP tool output for adding a beast group.
type BeastAddResult struct {
	ID            int64  `json:"id" jsonschema:"beast row identifier"`
	EventID       int64  `json:"event_id" jsonschema:"event identifier"`
	Species       string `json:"species" jsonschema:"beast species label"`
	Count         int64  `json:"count" jsonschema:"number of animals"`
	Strength      int64  `json:"strength" jsonschema:"strength rating"`
	Speed         int64  `json:"speed" jsonschema:"speed rating"`
	Entertainment int64  `json:"entertainment" jsonschema:"entertainment rating"`
}

// BeastListInput represents the MCP tool input for listing the beast
// groups of an event.
type BeastListInput struct {
	EventID int64 `json:"event_id" jsonschema:"event identifier"`
}

// BeastRow is one beast group in a listing.
type BeastRow struct {
	ID            int64  `json:"id" jsonschema:"beast row identifier"`
	Species       string `json:"species" jsonschema:"beast species label"`
	Count         int64  `json:"count" jsonschema:"number of animals"`
	Strength      int64  `json:"strength" jsonschema:"strength rating"`
	Speed         int64  `json:"speed" jsonschema:"speed rating"`
	Entertainment int64  `json:"entertainment" jsonschema:"entertainment rating"`
}

// BeastListResult represents the MCP tool output for listing beast groups.
type BeastListResult struct {
	EventID int64      `json:"event_id" jsonschema:"event identifier"`
	Beasts  []BeastRow `json:"beasts" jsonschema:"beast groups ordered by species"`
	Count   int        `json:"count" jsonschema:"number of beast rows"`
}

// BattleResultRecordInput represents the MCP tool input for recording a
// battle result. The label may name any group, including species; labels
// without matching participant rows skip the survivor cap.
type BattleResultRecordInput struct {
	EventID  int64  `json:"event_id" jsonschema:"event identifier"`
	Label    string `json:"label" jsonschema:"group label the result applies to"`
	Survived int64  `json:"survived" jsonschema:"number of survivors, must not be negative"`
}

// BattleResultRecordResult represents the MCP tool output for recording a
// battle result.
type BattleResultRecordResult struct {
	ID       int64  `json:"id" jsonschema:"battle result identifier"`
	EventID  int64  `json:"event_id" jsonschema:"event identifier"`
	Label    string `json:"label" jsonschema:"group label the result applies to"`
	Survived int64  `json:"survived" jsonschema:"number of survivors"`
}

// SummaryParticipantsInput represents the MCP tool input for the
// participants summary. A zero event id covers every event.
type SummaryParticipantsInput struct {
	EventID int64 `json:"event_id,omitempty" jsonschema:"event identifier, 0 for all events"`
}

// ParticipantsSummaryRow is one summed contingent in the summary.
type ParticipantsSummaryRow struct {
	EventID    int64  `json:"event_id" jsonschema:"event identifier"`
	Type       string `json:"type" jsonschema:"participant type label"`
	TotalCount int64  `json:"total_count" jsonschema:"summed fighter count"`
}

// SummaryParticipantsResult represents the MCP tool output for the
// participants summary.
type SummaryParticipantsResult struct {
	Rows  []ParticipantsSummaryRow `json:"rows" jsonschema:"summed contingents per event and type"`
	Count int                      `json:"count" jsonschema:"number of summary rows"`
}

// SummaryBeastsInput represents the MCP tool input for the beast summary.
// A zero event id covers every event.
type SummaryBeastsInput struct {
	EventID int64 `json:"event_id,omitempty" jsonschema:"event identifier, 0 for all events"`
}

// BeastSummaryRow is one summed species group in the summary.
type BeastSummaryRow struct {
	EventID    int64  `json:"event_id" jsonschema:"event identifier"`
	Species    string `json:"species" jsonschema:"beast species label"`
	TotalCount int64  `json:"total_count" jsonschema:"summed animal count"`
}

// SummaryBeastsResult represents the MCP tool output for the beast summary.
type SummaryBeastsResult struct {
	Rows  []BeastSummaryRow `json:"rows" jsonschema:"summed species groups per event"`
	Count int               `json:"count" jsonschema:"number of summary rows"`
}

// ArenaCreateTool defines the MCP tool schema for creating arenas.
func ArenaCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "arena_create",
		Description: "Registers a new arena with its city and capacity",
	}
}

// ArenaListTool defines the MCP tool schema for listing arenas.
func ArenaListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "arena_list",
		Description: "Lists registered arenas ordered by name",
	}
}

// EventCreateTool defines the MCP tool schema for scheduling events.
func EventCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_create",
		Description: "Schedules an event at an arena on a given day",
	}
}

// EventDeleteTool defines the MCP tool schema for deleting events.
func EventDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_delete",
		Description: "Deletes an event and everything recorded under it",
	}
}

// EventDetailsTool defines the MCP tool schema for reading event details.
func EventDetailsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_details",
		Description: "Shows an event with its arena name and city",
	}
}

// ParticipantUpsertTool defines the MCP tool schema for recording
// participant contingents.
func ParticipantUpsertTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "participant_upsert",
		Description: "Records a participant contingent, replacing any existing rows of the same type",
	}
}

// ParticipantListTool defines the MCP tool schema for listing participant
// contingents.
func ParticipantListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "participant_list",
		Description: "Lists the participant contingents of an event",
	}
}

// BeastAddTool defines the MCP tool schema for adding beast groups.
func BeastAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "beast_add",
		Description: "Adds a group of beasts to an event",
	}
}

// BeastListTool defines the MCP tool schema for listing beast groups.
func BeastListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "beast_list",
		Description: "Lists the beast groups of an event",
	}
}

// BattleResultRecordTool defines the MCP tool schema for recording battle
// results.
func BattleResultRecordTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_result_record",
		Description: "Records how many members of a labeled group survived an event",
	}
}

// SummaryParticipantsTool defines the MCP tool schema for the participants
// summary.
func SummaryParticipantsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "summary_participants",
		Description: "Sums participant counts per event and type",
	}
}

// SummaryBeastsTool defines the MCP tool schema for the beast summary.
func SummaryBeastsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "summary_beasts",
		Description: "Sums beast counts per event and species",
	}
}
