package ingest

import "testing"

func houseProfile() Profile {
	return Profile{
		TimestampColumn: "Timestamp",
		TimestampLayouts: []string{
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04",
		},
		Separator:    "_",
		ZonePrefixes: []string{"Z"},
		OutdoorColumns: []string{
			"Air_temperature",
			"Relative_humidity",
			"Wind_speed",
			"Wind_direction",
			"Barometric_pressure",
			"Precipitation",
			"Solar_radiation",
			"Outdoor_CO2",
		},
		Units: map[string]string{
			"temp":                "°C",
			"humidity":            "%",
			"CO2":                 "ppm",
			"Air_temperature":     "°C",
			"Relative_humidity":   "%",
			"Wind_speed":          "m/s",
			"Wind_direction":      "°",
			"Barometric_pressure": "hPa",
			"Precipitation":       "mm",
			"Solar_radiation":     "W/m²",
			"Outdoor_CO2":         "ppm",
		},
	}
}

func TestClassify(t *testing.T) {
	profile := houseProfile()

	tests := []struct {
		name            string
		column          string
		wantKind        ColumnKind
		wantZone        string
		wantMeasurement string
	}{
		{
			name:     "timestamp column",
			column:   "Timestamp",
			wantKind: KindTimestamp,
		},
		{
			name:            "simple zone column",
			column:          "Z1_temp",
			wantKind:        KindZone,
			wantZone:        "Z1",
			wantMeasurement: "temp",
		},
		{
			name:            "measurement containing separator",
			column:          "Z2_supply_temp",
			wantKind:        KindZone,
			wantZone:        "Z2",
			wantMeasurement: "supply_temp",
		},
		{
			name:            "mixed case measurement",
			column:          "Z10_CO2",
			wantKind:        KindZone,
			wantZone:        "Z10",
			wantMeasurement: "CO2",
		},
		{
			name:     "known outdoor column",
			column:   "Air_temperature",
			wantKind: KindOutdoor,
		},
		{
			name:     "outdoor column with zone-like name",
			column:   "Outdoor_CO2",
			wantKind: KindOutdoor,
		},
		{
			name:     "unknown column ignored",
			column:   "Battery_voltage",
			wantKind: KindIgnored,
		},
		{
			name:     "zone prefix without separator ignored",
			column:   "Zebra",
			wantKind: KindIgnored,
		},
		{
			name:     "empty measurement part ignored",
			column:   "Z1_",
			wantKind: KindIgnored,
		},
		{
			name:     "empty column name ignored",
			column:   "",
			wantKind: KindIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := profile.Classify(tt.column)

			if col.Kind != tt.wantKind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tt.column, col.Kind, tt.wantKind)
			}
			if col.Zone != tt.wantZone {
				t.Errorf("Classify(%q).Zone = %q, want %q", tt.column, col.Zone, tt.wantZone)
			}
			if col.Measurement != tt.wantMeasurement {
				t.Errorf("Classify(%q).Measurement = %q, want %q", tt.column, col.Measurement, tt.wantMeasurement)
			}
			if col.Name != tt.column {
				t.Errorf("Classify(%q).Name = %q, want original name", tt.column, col.Name)
			}
		})
	}
}

func TestClassify_SeparatorStartsName(t *testing.T) {
	profile := houseProfile()
	profile.ZonePrefixes = []string{"_"}

	col := profile.Classify("_temp")
	if col.Kind != KindIgnored {
		t.Errorf("Classify(\"_temp\").Kind = %v, want KindIgnored", col.Kind)
	}
}

func TestColumnKind_String(t *testing.T) {
	tests := []struct {
		kind ColumnKind
		want string
	}{
		{KindTimestamp, "timestamp"},
		{KindOutdoor, "outdoor"},
		{KindZone, "zone"},
		{KindIgnored, "ignored"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ColumnKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
