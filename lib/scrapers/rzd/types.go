package rzd

// the timetable payload nests trains inside route segments; most fields
// show up inconsistently typed across responses, hence the `any`s

type timetableResponse struct {
	Routes []routeSegment `json:"tp"`
}

type routeSegment struct {
	Date string       `json:"date0"`
	List []trainEntry `json:"list"`
}

type trainEntry struct {
	Number       string     `json:"number"`
	TimeInWay    any        `json:"timeInWay"`
	TimeInWayMin any        `json:"timeInWayMin"`
	Departure    string     `json:"time0"`
	Date         string     `json:"date0"`
	Cars         []carEntry `json:"cars"`
}

type carEntry struct {
	Service     string `json:"service"`
	Type        string `json:"type"`
	TariffType  string `json:"tariffType"`
	TypeLoc     string `json:"typeLoc"`
	Category    string `json:"category"`
	Tariff      any    `json:"tariff"`
	TariffValue any    `json:"tariffValue"`
	TariffFull  any    `json:"tariffFull"`
}
