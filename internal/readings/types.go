package readings

// Zone is a monitored zone from the reference table.
type Zone struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Measurement is a measurement type from the reference table.
type Measurement struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Point is one timestamped value from a raw series. Timestamp carries the
// store's canonical "YYYY-MM-DD HH:MM:SS" text form.
type Point struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

// DailyPoint is one day's mean value from an aggregated series.
type DailyPoint struct {
	Day  string  `json:"day"`
	Mean float64 `json:"mean"`
}

// Stats summarises a zone series. Mean and Max are zero when Count is zero.
type Stats struct {
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Count int64   `json:"count"`
}

// ComparePoint pairs a zone's daily mean with an outdoor variable's daily
// mean for the same day. Days present in only one series are omitted.
type ComparePoint struct {
	Day         string  `json:"day"`
	ZoneMean    float64 `json:"zone_mean"`
	OutdoorMean float64 `json:"outdoor_mean"`
}
