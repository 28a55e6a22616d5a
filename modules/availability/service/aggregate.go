package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/availability/dto"
	"github.com/prasen-shakya/Schedulify/modules/availability/entity"
)

// The aggregator is pure: it reads the flat row set the store produced and
// derives the two views the client renders from, without touching storage.
// It never fails: malformed rows are dropped so one bad row cannot blank
// the whole calendar.

// GroupByUser partitions rows by user display name (the legacy grouping
// key; the user id is carried alongside), then by date within each user.
// Time ranges are preserved verbatim; adjacent or overlapping ranges from
// the same user are intentionally not merged, so raw submissions survive
// round-trips. Within a user+date group the store's (date, start_time)
// ordering is kept as-is; groups themselves appear in first-encounter
// order.
func GroupByUser(rows []entity.UserAvailabilityRow) []dto.UserAvailability {
	result := make([]dto.UserAvailability, 0)
	userIndex := make(map[string]int)
	dateIndex := make(map[string]map[string]int)

	for _, row := range rows {
		if row.UserName == "" || row.Date.IsZero() {
			continue
		}
		date := row.Date.Format(utils.DateLayout)

		ui, ok := userIndex[row.UserName]
		if !ok {
			ui = len(result)
			userIndex[row.UserName] = ui
			dateIndex[row.UserName] = make(map[string]int)
			result = append(result, dto.UserAvailability{
				User:         row.UserName,
				UserID:       row.UserID.String(),
				Availability: []dto.DateAvailability{},
			})
		}

		di, ok := dateIndex[row.UserName][date]
		if !ok {
			di = len(result[ui].Availability)
			dateIndex[row.UserName][date] = di
			result[ui].Availability = append(result[ui].Availability, dto.DateAvailability{
				Date:  date,
				Times: []dto.TimeRange{},
			})
		}

		result[ui].Availability[di].Times = append(result[ui].Availability[di].Times, dto.TimeRange{
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}

	return result
}

// CoverageMap maps "date-hour" bucket keys to the users available in that
// bucket. Iteration order is insertion order, and the JSON encoding
// preserves it; the renderer depends on that.
type CoverageMap struct {
	keys    []string
	buckets map[string][]string
}

func NewCoverageMap() *CoverageMap {
	return &CoverageMap{buckets: make(map[string][]string)}
}

// Add marks userID available in the bucket. A user appears at most once per
// bucket no matter how many of their slots touch the same hour.
func (m *CoverageMap) Add(key, userID string) {
	users, ok := m.buckets[key]
	if !ok {
		m.keys = append(m.keys, key)
		m.buckets[key] = []string{userID}
		return
	}
	for _, u := range users {
		if u == userID {
			return
		}
	}
	m.buckets[key] = append(users, userID)
}

// Get returns the users available in the bucket, in insertion order.
// Absence of a key means zero users are available at that date+hour.
func (m *CoverageMap) Get(key string) []string {
	return m.buckets[key]
}

// Keys returns the bucket keys in insertion order.
func (m *CoverageMap) Keys() []string {
	return m.keys
}

func (m *CoverageMap) Len() int {
	return len(m.keys)
}

// MarshalJSON emits the buckets as an object whose keys appear in insertion
// order.
func (m *CoverageMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.buckets[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BuildHourCoverageMap marks, for every submitted time range, every whole
// hour h with startHour <= h < endHour as covered by that user, keyed by
// "date-hour" (hour unpadded). A range that begins or ends off the hour
// still marks the full hour bucket it falls within; the client only offers
// hour-granularity slots, so bucketing is deliberately coarse. Buckets
// outside [earliestDate, latestDate] x [earliestHour, latestHour] are
// clamped out; malformed entries are skipped.
func BuildHourCoverageMap(grouped []dto.UserAvailability, earliestDate, latestDate string, earliestHour, latestHour int) *CoverageMap {
	coverage := NewCoverageMap()

	for _, user := range grouped {
		for _, day := range user.Availability {
			if day.Date == "" {
				continue
			}
			if (earliestDate != "" && day.Date < earliestDate) || (latestDate != "" && day.Date > latestDate) {
				continue
			}
			for _, tr := range day.Times {
				startHour := utils.HourOf(tr.StartTime)
				endHour := utils.HourOf(tr.EndTime)
				if startHour < 0 || endHour < 0 {
					continue
				}
				for h := startHour; h < endHour; h++ {
					if h < earliestHour || h > latestHour {
						continue
					}
					coverage.Add(fmt.Sprintf("%s-%d", day.Date, h), user.UserID)
				}
			}
		}
	}

	return coverage
}
