package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, participantKeyPrefix+"gladiator", "gladiator")
	message.SetString(lang, participantKeyPrefix+"retiarius", "retiarius")
	message.SetString(lang, participantKeyPrefix+"barbarian", "barbarian")
	message.SetString(lang, participantKeyPrefix+"victim", "victim")
	message.SetString(lang, participantKeyPrefix+"archer", "archer")
	message.SetString(lang, participantKeyPrefix+"legionary", "legionary")
	message.SetString(lang, participantKeyPrefix+"phalanx", "phalanx fighter")
	message.SetString(lang, participantKeyPrefix+"slinger", "slinger")
	message.SetString(lang, participantKeyPrefix+"charioteer", "charioteer")
	message.SetString(lang, participantKeyPrefix+"auriga", "auriga")
	message.SetString(lang, participantKeyPrefix+"chariot-owner", "chariot owner")

	message.SetString(lang, strengthKeyPrefix+"novice", "novice")
	message.SetString(lang, strengthKeyPrefix+"experienced", "experienced")
	message.SetString(lang, strengthKeyPrefix+"veteran", "veteran")

	message.SetString(lang, speciesKeyPrefix+"lion", "lion")
	message.SetString(lang, speciesKeyPrefix+"leopard", "leopard")
	message.SetString(lang, speciesKeyPrefix+"jackal", "jackal")
	message.SetString(lang, speciesKeyPrefix+"baboon", "baboon")

	message.SetString(lang, ReportEventHeadingKey, "Event %d: %s at %s (%s) on %s")
	message.SetString(lang, ReportParticipantsHeadingKey, "Participants")
	message.SetString(lang, ReportBeastsHeadingKey, "Beasts")
	message.SetString(lang, ReportNoEventsKey, "No events recorded")
	message.SetString(lang, ReportStatsHeadingKey, "Rows by table")
	message.SetString(lang, ReportArenaEventsHeadingKey, "Events by arena")
	message.SetString(lang, ReportFindingsHeadingKey, "Integrity findings")
	message.SetString(lang, ReportNoFindingsKey, "No integrity findings")
}
