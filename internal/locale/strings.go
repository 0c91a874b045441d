package locale

import "aura_display/internal/models"

// Strings is the UI text table for one language.
type Strings struct {
	Today            string
	Now              string
	Noon             string
	AM               string
	PM               string
	InvalidHour      string
	Due              string
	Mins             string
	NoArrivals       string
	FeelsLike        string
	Sunrise          string
	Sunset           string
	SevenDayForecast string
	HourlyForecast   string
	TransitTitle     string
	Weekdays         [7]string // index 0 is Sunday
}

var tables = map[models.Language]*Strings{
	models.LangEN: {
		Today: "Today", Now: "Now", Noon: "Noon", AM: "am", PM: "pm",
		InvalidHour: "Invalid hour", Due: "Due", Mins: "mins", NoArrivals: "No arrivals",
		FeelsLike: "Feels like", Sunrise: "Sunrise", Sunset: "Sunset",
		SevenDayForecast: "7-Day Forecast", HourlyForecast: "Hourly Forecast", TransitTitle: "Transit",
		Weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
	models.LangES: {
		Today: "Hoy", Now: "Ahora", Noon: "Mediodía", AM: "am", PM: "pm",
		InvalidHour: "Hora inválida", Due: "Llega", Mins: "min", NoArrivals: "Sin llegadas",
		FeelsLike: "Sensación", Sunrise: "Amanecer", Sunset: "Atardecer",
		SevenDayForecast: "Pronóstico 7 días", HourlyForecast: "Pronóstico por horas", TransitTitle: "Transporte",
		Weekdays: [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	},
	models.LangDE: {
		Today: "Heute", Now: "Jetzt", Noon: "Mittag", AM: "am", PM: "pm",
		InvalidHour: "Ungültige Stunde", Due: "Jetzt", Mins: "Min", NoArrivals: "Keine Ankünfte",
		FeelsLike: "Gefühlt", Sunrise: "Aufgang", Sunset: "Untergang",
		SevenDayForecast: "7-Tage-Vorhersage", HourlyForecast: "Stündlich", TransitTitle: "Nahverkehr",
		Weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	models.LangFR: {
		Today: "Aujourd'hui", Now: "Maint.", Noon: "Midi", AM: "am", PM: "pm",
		InvalidHour: "Heure invalide", Due: "Imminent", Mins: "min", NoArrivals: "Aucune arrivée",
		FeelsLike: "Ressenti", Sunrise: "Lever", Sunset: "Coucher",
		SevenDayForecast: "Prévisions 7 jours", HourlyForecast: "Prévisions horaires", TransitTitle: "Transports",
		Weekdays: [7]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"},
	},
	models.LangTR: {
		Today: "Bugün", Now: "Şimdi", Noon: "Öğle", AM: "ÖÖ", PM: "ÖS",
		InvalidHour: "Geçersiz saat", Due: "Geliyor", Mins: "dk", NoArrivals: "Varış yok",
		FeelsLike: "Hissedilen", Sunrise: "Gün doğumu", Sunset: "Gün batımı",
		SevenDayForecast: "7 Günlük Tahmin", HourlyForecast: "Saatlik Tahmin", TransitTitle: "Ulaşım",
		Weekdays: [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"},
	},
	models.LangSV: {
		Today: "Idag", Now: "Nu", Noon: "Middag", AM: "fm", PM: "em",
		InvalidHour: "Ogiltig timme", Due: "Nu", Mins: "min", NoArrivals: "Inga ankomster",
		FeelsLike: "Känns som", Sunrise: "Soluppgång", Sunset: "Solnedgång",
		SevenDayForecast: "7-dagarsprognos", HourlyForecast: "Timprognos", TransitTitle: "Kollektivtrafik",
		Weekdays: [7]string{"Sön", "Mån", "Tis", "Ons", "Tor", "Fre", "Lör"},
	},
	models.LangIT: {
		Today: "Oggi", Now: "Ora", Noon: "Mezzogiorno", AM: "am", PM: "pm",
		InvalidHour: "Ora non valida", Due: "In arrivo", Mins: "min", NoArrivals: "Nessun arrivo",
		FeelsLike: "Percepita", Sunrise: "Alba", Sunset: "Tramonto",
		SevenDayForecast: "Previsioni 7 giorni", HourlyForecast: "Previsioni orarie", TransitTitle: "Trasporti",
		Weekdays: [7]string{"Dom", "Lun", "Mar", "Mer", "Gio", "Ven", "Sab"},
	},
}

// For returns the table for lang, falling back to English.
func For(lang models.Language) *Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[models.LangEN]
}
