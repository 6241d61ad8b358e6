package facilities

import (
	"sort"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/facilities/models"
)

// unknownRow ряд для мест, код которых не разбирается на буквы и цифры
const unknownRow = "unknown"

// buildRows группирует места в ряды. Код вида "A12" дает ряд "A" и колонку 12.
// Места с кодами без буквенного префикса или без номера попадают в ряд
// "unknown", который всегда идет последним.
func buildRows(spaces []*domain.Space) []models.MapRow {
	grouped := make(map[string][]models.MapSpace)

	for _, space := range spaces {
		row, column := parseCode(space.Code)
		grouped[row] = append(grouped[row], models.MapSpace{
			ID:     space.ID,
			Code:   space.Code,
			Column: column,
			Type:   string(space.Type),
			State:  string(space.State),
		})
	}

	rowNames := make([]string, 0, len(grouped))
	for name := range grouped {
		rowNames = append(rowNames, name)
	}
	sort.Slice(rowNames, func(i, j int) bool {
		if rowNames[i] == unknownRow {
			return false
		}
		if rowNames[j] == unknownRow {
			return true
		}
		return rowNames[i] < rowNames[j]
	})

	rows := make([]models.MapRow, 0, len(rowNames))
	for _, name := range rowNames {
		rowSpaces := grouped[name]
		sort.Slice(rowSpaces, func(i, j int) bool {
			if rowSpaces[i].Column != rowSpaces[j].Column {
				return rowSpaces[i].Column < rowSpaces[j].Column
			}
			return rowSpaces[i].Code < rowSpaces[j].Code
		})
		rows = append(rows, models.MapRow{Row: name, Spaces: rowSpaces})
	}

	return rows
}

// parseCode разбирает код места на буквенный префикс и числовой суффикс.
// Возвращает unknownRow и нулевую колонку, если код не разбирается.
func parseCode(code string) (string, int) {
	i := 0
	for i < len(code) && isLetter(code[i]) {
		i++
	}

	letters := code[:i]
	if letters == "" || i == len(code) {
		return unknownRow, 0
	}

	column := 0
	for _, c := range code[i:] {
		if c < '0' || c > '9' {
			return unknownRow, 0
		}
		column = column*10 + int(c-'0')
	}

	return letters, column
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
