package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// rulesFileYear is the on-disk shape of one year's arrangement, matching
// the published holiday JSON feeds: a year plus a flat day list where each
// day is either a rest day or a shifted workday of a named holiday.
type rulesFileYear struct {
	Year string `json:"year"`
	Days []struct {
		Name     string `json:"name"`
		Date     string `json:"date"` // YYYY-MM-DD
		IsOffDay bool   `json:"isOffDay"`
	} `json:"days"`
}

// LoadAdjustmentRules reads supplementary holiday shift rules from a JSON
// file. The file holds an array of per-year blocks; days are grouped into
// one AdjustmentRule per (year, holiday name), preserving file order.
func LoadAdjustmentRules(filePath string, logger *zap.Logger) ([]AdjustmentRule, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var years []rulesFileYear
	if err := json.Unmarshal(data, &years); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	var rules []AdjustmentRule
	for _, y := range years {
		year, err := strconv.Atoi(y.Year)
		if err != nil {
			logger.Warn("Skipping rules block with invalid year",
				zap.String("year", y.Year))
			continue
		}

		index := make(map[string]int) // holiday name -> position in rules
		for _, day := range y.Days {
			if day.Name == "" || day.Date == "" {
				logger.Warn("Skipping incomplete rules entry",
					zap.Int("year", year),
					zap.String("name", day.Name),
					zap.String("date", day.Date))
				continue
			}

			i, ok := index[day.Name]
			if !ok {
				rules = append(rules, AdjustmentRule{Year: year, Holiday: day.Name})
				i = len(rules) - 1
				index[day.Name] = i
			}

			if day.IsOffDay {
				rules[i].HolidayDates = append(rules[i].HolidayDates, day.Date)
			} else {
				rules[i].WorkingDates = append(rules[i].WorkingDates, day.Date)
			}
		}
	}

	logger.Info("Adjustment rules file loaded",
		zap.String("file", filePath),
		zap.Int("rules", len(rules)))

	return rules, nil
}
