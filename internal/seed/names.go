package seed

// Historical venues the random generator draws from. Names follow the
// Russian-language convention of the recorded fixtures.
var arenaSites = []struct {
	Name     string
	City     string
	Capacity int64
}{
	{"Римский Колизей", "Рим", 50000},
	{"Циркус Максимус", "Рим", 150000},
	{"Амфитеатр Капуи", "Капуя", 40000},
	{"Арена Вероны", "Верона", 30000},
	{"Амфитеатр Помпей", "Помпеи", 20000},
	{"Арена Нима", "Ним", 24000},
	{"Амфитеатр Эль-Джема", "Эль-Джем", 35000},
	{"Пульский амфитеатр", "Пула", 23000},
}

// Event programme descriptions. The column is free text, so anything a
// lanista could announce goes.
var eventProgrammes = []string{
	"бой с варварами",
	"гладиаторские игры",
	"травля зверей",
	"гонки колесниц",
	"морское сражение",
	"императорские игры",
	"поединок чемпионов",
}
