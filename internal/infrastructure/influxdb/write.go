package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteZoneReading writes a single zone sensor reading to InfluxDB.
//
// The write is non-blocking; data is batched and sent asynchronously.
// The point carries the source timestamp, not the write time, so mirrored
// history lines up with the SQLite store.
//
// Parameters:
//   - zone: Zone name (e.g., "Z1")
//   - measurement: The measurement name (e.g., "temp", "CO2")
//   - value: The numeric reading
//   - timestamp: The source reading timestamp
//
// Example:
//
//	client.WriteZoneReading("Z1", "temp", 21.5, ts)
func (c *Client) WriteZoneReading(zone string, measurement string, value float64, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"zone_readings",
		map[string]string{
			"zone":        zone,
			"measurement": measurement,
		},
		map[string]interface{}{
			"value": value,
		},
		timestamp,
	)

	c.writeAPI.WritePoint(point)
}

// WriteOutdoorReading writes a single outdoor variable reading to InfluxDB.
//
// Parameters:
//   - variable: Outdoor variable name (e.g., "Air_temperature")
//   - value: The numeric reading
//   - timestamp: The source reading timestamp
func (c *Client) WriteOutdoorReading(variable string, value float64, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"outdoor_readings",
		map[string]string{
			"variable": variable,
		},
		map[string]interface{}{
			"value": value,
		},
		timestamp,
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
//   - timestamp: The exact time for this data point
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
