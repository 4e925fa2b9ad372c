package render

import (
	"encoding/json"
	"fmt"

	"github.com/srediag/shm-probe/pkg/probe"
)

type jsonFact struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Value *uint64 `json:"value,omitempty"`
	Text  string  `json:"text,omitempty"`
}

type jsonSection struct {
	Name  string     `json:"name"`
	Error string     `json:"error,omitempty"`
	Facts []jsonFact `json:"facts,omitempty"`
}

type jsonReport struct {
	GOOS     string        `json:"goos"`
	GOARCH   string        `json:"goarch"`
	Sections []jsonSection `json:"sections"`
}

// JSON renders the report as indented JSON with a trailing newline. The
// collection timestamp is deliberately excluded so repeated probes of one
// platform encode identically.
func JSON(report *probe.Report) ([]byte, error) {
	out := jsonReport{
		GOOS:     report.GOOS,
		GOARCH:   report.GOARCH,
		Sections: make([]jsonSection, 0, len(report.Sections)),
	}
	for _, sec := range report.Sections {
		js := jsonSection{Name: sec.Name}
		if sec.Err != nil {
			js.Error = sec.Err.Error()
		}
		for _, f := range sec.Facts {
			jf := jsonFact{Name: f.Name, Kind: f.Kind.String()}
			if f.Kind == probe.FactText {
				jf.Text = f.Str
			} else {
				v := f.Value
				jf.Value = &v
			}
			js.Facts = append(js.Facts, jf)
		}
		out.Sections = append(out.Sections, js)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return append(data, '\n'), nil
}
