package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, participantKeyPrefix+"gladiator", "гладиатор")
	message.SetString(lang, participantKeyPrefix+"retiarius", "ретиарий")
	message.SetString(lang, participantKeyPrefix+"barbarian", "варвар")
	message.SetString(lang, participantKeyPrefix+"victim", "жертва")
	message.SetString(lang, participantKeyPrefix+"archer", "лучник")
	message.SetString(lang, participantKeyPrefix+"legionary", "легионер")
	message.SetString(lang, participantKeyPrefix+"phalanx", "боец фаланги")
	message.SetString(lang, participantKeyPrefix+"slinger", "пращник")
	message.SetString(lang, participantKeyPrefix+"charioteer", "колесничий")
	message.SetString(lang, participantKeyPrefix+"auriga", "возница")
	message.SetString(lang, participantKeyPrefix+"chariot-owner", "владелец колесницы")

	message.SetString(lang, strengthKeyPrefix+"novice", "новичок")
	message.SetString(lang, strengthKeyPrefix+"experienced", "опытный")
	message.SetString(lang, strengthKeyPrefix+"veteran", "ветеран")

	message.SetString(lang, speciesKeyPrefix+"lion", "лев")
	message.SetString(lang, speciesKeyPrefix+"leopard", "леопард")
	message.SetString(lang, speciesKeyPrefix+"jackal", "шакал")
	message.SetString(lang, speciesKeyPrefix+"baboon", "бабуин")

	message.SetString(lang, ReportEventHeadingKey, "Событие %d: %s, %s (%s), %s")
	message.SetString(lang, ReportParticipantsHeadingKey, "Участники")
	message.SetString(lang, ReportBeastsHeadingKey, "Звери")
	message.SetString(lang, ReportNoEventsKey, "События не записаны")
	message.SetString(lang, ReportStatsHeadingKey, "Строки по таблицам")
	message.SetString(lang, ReportArenaEventsHeadingKey, "События по аренам")
	message.SetString(lang, ReportFindingsHeadingKey, "Нарушения целостности")
	message.SetString(lang, ReportNoFindingsKey, "Нарушений целостности не найдено")
}
