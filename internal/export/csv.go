package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/vlab/internal/lab"
)

// WriteCSV writes one series as a header row followed by one row per point.
func WriteCSV(w io.Writer, ser lab.Series) error {
	cw := csv.NewWriter(w)

	header := append([]string{ser.XName}, ser.YNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, p := range ser.Points {
		row[0] = formatFloat(p.X)
		for i := range ser.YNames {
			if i < len(p.Y) {
				row[i+1] = formatFloat(p.Y[i])
			} else {
				row[i+1] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv %s: %w", ser.Label, err)
	}
	return nil
}

// WriteCSVSet writes every series in long form with a leading series column.
func WriteCSVSet(w io.Writer, set lab.SeriesSet) error {
	cw := csv.NewWriter(w)
	width := 0
	for _, ser := range set.All() {
		width = max(width, len(ser.YNames))
	}

	header := []string{"series", "x"}
	for i := 0; i < width; i++ {
		header = append(header, "y"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, ser := range set.All() {
		for _, p := range ser.Points {
			row := make([]string, len(header))
			row[0], row[1] = ser.Label, formatFloat(p.X)
			for i, v := range p.Y {
				row[i+2] = formatFloat(v)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
