package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/vlab/internal/lab"
)

type SeriesData struct {
	Label  string      `json:"label"`
	XName  string      `json:"x"`
	YNames []string    `json:"y"`
	Points [][]float64 `json:"points"`
}

// Document is the JSON form of one experiment's current state.
type Document struct {
	Experiment string             `json:"experiment"`
	Title      string             `json:"title"`
	Time       float64            `json:"time"`
	Params     map[string]float64 `json:"params"`
	Readings   map[string]float64 `json:"readings"`
	Series     []SeriesData       `json:"series"`
}

func NewDocument(inst lab.Instance) Document {
	info := inst.Info()
	doc := Document{
		Experiment: info.ID,
		Title:      info.Title,
		Time:       inst.Time(),
		Params:     inst.Params().Values(),
		Readings:   make(map[string]float64),
	}
	for _, r := range inst.Readout() {
		// encoding/json rejects NaN and Inf
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			continue
		}
		doc.Readings[r.Label] = r.Value
	}
	for _, ser := range inst.Series().All() {
		doc.Series = append(doc.Series, seriesData(ser))
	}
	return doc
}

func seriesData(ser lab.Series) SeriesData {
	sd := SeriesData{
		Label:  ser.Label,
		XName:  ser.XName,
		YNames: ser.YNames,
		Points: make([][]float64, len(ser.Points)),
	}
	for i, p := range ser.Points {
		row := make([]float64, 0, len(p.Y)+1)
		row = append(row, p.X)
		sd.Points[i] = append(row, p.Y...)
	}
	return sd
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
